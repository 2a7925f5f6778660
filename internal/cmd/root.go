// Package cmd wires the xref command-line interface: the root command, the
// check validator, and the list subcommands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/xref/internal/config"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// options holds the persistent flag values shared by every subcommand.
// Flags only override the config file when explicitly set, so resolution
// goes through resolve rather than reading these fields directly.
type options struct {
	configPath string
	paths      []string
	tagSigil   string
	refSigil   string
	fileSigil  string
	dirSigil   string
	jobs       int
	exclude    []string
	logLevel   string
	logDir     string
	noLogFile  bool
}

// NewRootCommand creates and returns the root cobra command for xref.
// Invoking xref with no subcommand runs check.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "xref",
		Short: "Cross-reference integrity checker for source trees",
		// Directive examples below are assembled by concatenation so that
		// running xref over its own repository doesn't extract them.
		Long: `Xref maintains cross-references embedded in arbitrary text files.
It checks the following:

  1. References actually point to tags.
  2. Tags are unique.
  3. File and directory references point to existing paths of the right kind.

The syntax for tags is ` + "[t" + "ag:label]" + ` and the syntax for references
is ` + "[r" + "ef:label]" + `; file and directory references use ` + "[fi" + "le:path]" + `
and ` + "[d" + "ir:path]" + `. Directives are matched line by line in any file,
regardless of the file's own syntax.`,
		Version: Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation behaves like "xref check".
			return runCheck(cmd, opts)
		},
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.DefaultFile, "Path to the configuration file")
	flags.StringSliceVarP(&opts.paths, "path", "p", []string{"."}, "Adds the path of a directory to scan (repeatable)")
	flags.StringVar(&opts.tagSigil, "tag-sigil", "tag", "Sets the sigil used for locating tags")
	flags.StringVar(&opts.refSigil, "ref-sigil", "ref", "Sets the sigil used for locating tag references")
	flags.StringVar(&opts.fileSigil, "file-sigil", "file", "Sets the sigil used for locating file references")
	flags.StringVar(&opts.dirSigil, "dir-sigil", "dir", "Sets the sigil used for locating directory references")
	flags.IntVar(&opts.jobs, "jobs", 0, "Number of scan workers (0 = number of CPUs)")
	flags.StringSliceVar(&opts.exclude, "exclude", nil, "Directory names to skip during traversal (repeatable)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log verbosity (trace, debug, info, warn, error)")
	flags.StringVar(&opts.logDir, "log-dir", "", "Directory for per-run log files (empty disables file logging)")
	flags.BoolVar(&opts.noLogFile, "no-log-file", false, "Disable file logging even when log-dir is configured")

	// Add subcommands
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewListTagsCommand(opts))
	cmd.AddCommand(NewListRefsCommand(opts))
	cmd.AddCommand(NewListFilesCommand(opts))
	cmd.AddCommand(NewListDirsCommand(opts))
	cmd.AddCommand(NewListUnusedCommand(opts))

	return cmd
}

// resolve layers the configuration: built-in defaults, then the config file,
// then any flag the user set explicitly.
func resolve(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("path") {
		cfg.Paths = opts.paths
	}
	if flags.Changed("tag-sigil") {
		cfg.Sigils.Tag = opts.tagSigil
	}
	if flags.Changed("ref-sigil") {
		cfg.Sigils.Ref = opts.refSigil
	}
	if flags.Changed("file-sigil") {
		cfg.Sigils.File = opts.fileSigil
	}
	if flags.Changed("dir-sigil") {
		cfg.Sigils.Dir = opts.dirSigil
	}
	if flags.Changed("jobs") {
		cfg.Jobs = opts.jobs
	}
	if flags.Changed("exclude") {
		cfg.ExcludeDirs = append(cfg.ExcludeDirs, opts.exclude...)
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-dir") {
		cfg.LogDir = opts.logDir
	}
	if opts.noLogFile {
		cfg.LogDir = ""
	}

	return cfg, nil
}
