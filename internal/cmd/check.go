package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harrison/xref/internal/check"
	"github.com/harrison/xref/internal/config"
	"github.com/harrison/xref/internal/logger"
)

// NewCheckCommand creates and returns the check subcommand.
func NewCheckCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Checks all the tags and references (default)",
		Long: `Scan the configured roots and run every validator:

  - Duplicate tags (a label declared more than once)
  - Dangling tag references (a reference with no matching tag)
  - Dangling file references (a path that is missing or not a regular file)
  - Dangling directory references (a path that is missing or not a directory)

All validators run to completion; every finding is reported in one pass.

Exit code: 0 if everything resolves, 1 if any finding exists`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
		SilenceUsage: true,
	}
}

// runCheck resolves configuration and executes check, writing to the
// command's configured output.
func runCheck(cmd *cobra.Command, opts *options) error {
	cfg, err := resolve(cmd, opts)
	if err != nil {
		return err
	}
	log, cleanup := newRunLogger(cmd, cfg)
	defer cleanup()
	return checkWithOutput(cfg, log, cmd.OutOrStdout())
}

// checkWithOutput runs the full validation pipeline against cfg and writes
// the success summary or the aggregated failure report to output.
func checkWithOutput(cfg *config.Config, log logger.Logger, output io.Writer) error {
	store, scanned, err := scanTree(cfg, log)
	if err != nil {
		return err
	}

	labels := store.Labels()
	report, failed := check.Report(
		check.Duplicates(store.Tags()),
		check.TagRefs(labels, store.Refs()),
		check.FileRefs(store.Files()),
		check.DirRefs(store.Dirs()),
	)
	if failed {
		fmt.Fprintln(output, color.RedString("%s", report))
		return errors.New("validation failed")
	}

	summary := check.Summary{
		Tags:         len(labels),
		Refs:         len(store.Refs()),
		FileRefs:     len(store.Files()),
		DirRefs:      len(store.Dirs()),
		FilesScanned: scanned,
	}
	fmt.Fprintln(output, color.GreenString("%s", summary))
	return nil
}
