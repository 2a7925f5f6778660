package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/xref/internal/aggregate"
	"github.com/harrison/xref/internal/check"
	"github.com/harrison/xref/internal/config"
	"github.com/harrison/xref/internal/directive"
	"github.com/harrison/xref/internal/logger"
	"github.com/harrison/xref/internal/walker"
)

// newRunLogger builds the logger for one invocation: console output on
// stderr, plus a per-run file log when a log directory is configured.
// The returned cleanup closes the file log and must always be called.
func newRunLogger(cmd *cobra.Command, cfg *config.Config) (logger.Logger, func()) {
	console := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if cfg.LogDir == "" {
		return console, func() {}
	}

	file, err := logger.NewFileLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		console.Warnf("file logging disabled: %v", err)
		return console, func() {}
	}
	return logger.NewTee(console, file), func() { _ = file.Close() }
}

// scanTree compiles the sigil matchers, walks every configured root, and
// aggregates the extracted directives. A sigil that cannot be compiled is a
// configuration error and aborts before any scanning starts; everything
// found after that point is collected without failing.
func scanTree(cfg *config.Config, log logger.Logger) (*aggregate.Store, int, error) {
	set, err := directive.CompileSet(cfg.Sigils)
	if err != nil {
		return nil, 0, err
	}

	store := aggregate.NewStore()
	log.Debugf("scanning roots: %s", strings.Join(cfg.Paths, ", "))

	scanned := walker.Walk(cfg.Paths, walker.Options{
		ExcludeDirs: cfg.ExcludeDirs,
		Jobs:        cfg.Jobs,
	}, func(path string, r io.Reader) {
		store.Merge(directive.Scan(set, path, r))
	})

	log.Debugf("scanned %s", check.Count(scanned, "file"))
	return store, scanned, nil
}
