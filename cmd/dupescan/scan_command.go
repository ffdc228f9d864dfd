package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"dupescan/internal/logging"
	"dupescan/internal/scanner"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var workersFlag int

	cmd := &cobra.Command{
		Use:   "scan [root]",
		Short: "Scan a directory tree for files duplicated by name and content",
		Long: "Scan walks the root directory recursively, groups regular files by base name,\n" +
			"hashes the content of files whose names collide, and reports every group that\n" +
			"shares both name and content along with an estimate of reclaimable disk space.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if workersFlag > 0 {
				cfg.Scan.Workers = workersFlag
			}

			root := ""
			if len(args) == 1 {
				root = strings.TrimSpace(args[0])
			}
			if root == "" {
				root, err = promptForRoot(cmd)
				if err != nil {
					return err
				}
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			// One scan per log directory at a time; two runs appending to the
			// same dupescan.log interleave badly.
			lock := flock.New(filepath.Join(cfg.Paths.LogDir, "dupescan.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire scan lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another scan is already using %s", cfg.Paths.LogDir)
			}
			defer func() {
				_ = lock.Unlock()
			}()

			scan := scanner.New(cfg, logger)

			var bar *progressbar.ProgressBar
			if !jsonOut && isTerminal(os.Stderr.Fd()) {
				scan.OnFile = func(_ string, done, total int) {
					if bar == nil {
						bar = progressbar.NewOptions(total,
							progressbar.OptionSetDescription("hashing"),
							progressbar.OptionSetWriter(os.Stderr),
							progressbar.OptionClearOnFinish(),
						)
					}
					_ = bar.Set(done)
				}
			}

			report, err := scan.Scan(cmd.Context(), root)
			if bar != nil {
				_ = bar.Finish()
			}
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), jsonReport(report))
			}

			out := cmd.OutOrStdout()
			renderGroups(out, report)
			renderEstimate(out, report)
			if isTerminal(os.Stdout.Fd()) {
				fmt.Fprintln(out, renderSummaryTable(report))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the report as JSON")
	cmd.Flags().IntVar(&workersFlag, "workers", 0, "Override the number of digest workers")
	return cmd
}

// promptForRoot reads the root directory from stdin when no argument is given.
func promptForRoot(cmd *cobra.Command) (string, error) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Find duplicate files!")
	fmt.Fprint(out, "Root directory: ")

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read root directory: %w", err)
	}
	root := strings.TrimSpace(line)
	if root == "" {
		return "", fmt.Errorf("no root directory given")
	}
	return root, nil
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
