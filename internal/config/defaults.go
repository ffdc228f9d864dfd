package config

const (
	defaultLogDir        = "~/.local/share/dupescan/logs"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultScanChunkSize = 8192
	defaultScanWorkers   = 4
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Scan: Scan{
			ChunkSize: defaultScanChunkSize,
			Workers:   defaultScanWorkers,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
