package cmd

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harrison/xref/internal/aggregate"
	"github.com/harrison/xref/internal/config"
	"github.com/harrison/xref/internal/directive"
	"github.com/harrison/xref/internal/logger"
)

// NewListTagsCommand creates and returns the list-tags subcommand.
func NewListTagsCommand(opts *options) *cobra.Command {
	return newListCommand(opts, "list-tags", "Lists all the tags",
		func(s *aggregate.Store) []directive.Directive { return flattenTags(s.Tags()) })
}

// NewListRefsCommand creates and returns the list-refs subcommand.
func NewListRefsCommand(opts *options) *cobra.Command {
	return newListCommand(opts, "list-refs", "Lists all the tag references",
		(*aggregate.Store).Refs)
}

// NewListFilesCommand creates and returns the list-files subcommand.
func NewListFilesCommand(opts *options) *cobra.Command {
	return newListCommand(opts, "list-files", "Lists all the file references",
		(*aggregate.Store).Files)
}

// NewListDirsCommand creates and returns the list-dirs subcommand.
func NewListDirsCommand(opts *options) *cobra.Command {
	return newListCommand(opts, "list-dirs", "Lists all the directory references",
		(*aggregate.Store).Dirs)
}

// newListCommand builds an informational command that scans the tree and
// prints all directives selected by pick. List commands never fail on
// findings; they only report what exists.
func newListCommand(opts *options, use, short string, pick func(*aggregate.Store) []directive.Directive) *cobra.Command {
	return &cobra.Command{
		Use:          use,
		Short:        short,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(cmd, opts)
			if err != nil {
				return err
			}
			log, cleanup := newRunLogger(cmd, cfg)
			defer cleanup()
			return listWithOutput(cfg, log, pick, cmd.OutOrStdout())
		},
	}
}

// listWithOutput scans the tree and prints the selected directives, sorted,
// in aligned columns.
func listWithOutput(cfg *config.Config, log logger.Logger, pick func(*aggregate.Store) []directive.Directive, output io.Writer) error {
	store, _, err := scanTree(cfg, log)
	if err != nil {
		return err
	}
	printDirectives(output, pick(store))
	return nil
}

// flattenTags collapses the label-keyed tag map back into one slice.
func flattenTags(tags map[string][]directive.Directive) []directive.Directive {
	var out []directive.Directive
	for _, occurrences := range tags {
		out = append(out, occurrences...)
	}
	return out
}

// printDirectives writes one row per directive: label, then origin. Rows are
// sorted by label, then path, then line, so output is stable across runs
// despite the parallel scan.
func printDirectives(output io.Writer, directives []directive.Directive) {
	sortDirectives(directives)

	w := tabwriter.NewWriter(output, 2, 4, 2, ' ', 0)
	for _, d := range directives {
		fmt.Fprintf(w, "%s\t%s:%d\n", d.Label, d.Path, d.Line)
	}
	w.Flush()
}

func sortDirectives(directives []directive.Directive) {
	sort.Slice(directives, func(i, j int) bool {
		if directives[i].Label != directives[j].Label {
			return directives[i].Label < directives[j].Label
		}
		if directives[i].Path != directives[j].Path {
			return directives[i].Path < directives[j].Path
		}
		return directives[i].Line < directives[j].Line
	})
}
