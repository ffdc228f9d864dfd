package config

import "strings"

func (c *Config) normalize() error {
	logDir := strings.TrimSpace(c.Paths.LogDir)
	if logDir != "" {
		expanded, err := expandPath(logDir)
		if err != nil {
			return err
		}
		c.Paths.LogDir = expanded
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	if c.Scan.ChunkSize == 0 {
		c.Scan.ChunkSize = Default().Scan.ChunkSize
	}
	if c.Scan.Workers == 0 {
		c.Scan.Workers = defaultScanWorkers
	}
	return nil
}
