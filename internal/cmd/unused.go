package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/xref/internal/check"
	"github.com/harrison/xref/internal/config"
	"github.com/harrison/xref/internal/directive"
	"github.com/harrison/xref/internal/logger"
)

// NewListUnusedCommand creates and returns the list-unused subcommand.
func NewListUnusedCommand(opts *options) *cobra.Command {
	var failIfAny bool

	cmd := &cobra.Command{
		Use:   "list-unused",
		Short: "Lists the tags that have no incoming references",
		Long: `List every tag directive whose label is never referenced.

An unused tag is not an error by default: the command lists it and exits
zero. With --fail-if-any, finding one makes the command exit non-zero,
which is useful in CI to keep a tree free of dead anchors.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(cmd, opts)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("fail-if-any") {
				cfg.FailIfAnyUnused = failIfAny
			}
			log, cleanup := newRunLogger(cmd, cfg)
			defer cleanup()
			return listUnusedWithOutput(cfg, log, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&failIfAny, "fail-if-any", false, "Exit non-zero when any unused tag exists")
	return cmd
}

// listUnusedWithOutput prints every tag whose label has zero incoming tag
// references. Duplicated tags count as one label; all their occurrences are
// listed when the label is unused.
func listUnusedWithOutput(cfg *config.Config, log logger.Logger, output io.Writer) error {
	store, _, err := scanTree(cfg, log)
	if err != nil {
		return err
	}

	referenced := make(map[string]bool, len(store.Refs()))
	for _, ref := range store.Refs() {
		referenced[ref.Label] = true
	}

	var unused []directive.Directive
	for label, occurrences := range store.Tags() {
		if !referenced[label] {
			unused = append(unused, occurrences...)
		}
	}
	printDirectives(output, unused)

	if cfg.FailIfAnyUnused && len(unused) > 0 {
		return fmt.Errorf("found %s", check.Count(len(unused), "unused tag"))
	}
	return nil
}
