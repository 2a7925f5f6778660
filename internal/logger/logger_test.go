package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		configured string
		logged     string
		want       bool
	}{
		{"info", "debug", false},
		{"info", "info", true},
		{"info", "error", true},
		{"debug", "debug", true},
		{"error", "warn", false},
		{"trace", "trace", true},
		// Empty and invalid levels default to info.
		{"", "info", true},
		{"bogus", "debug", false},
	}

	for _, tt := range tests {
		t.Run(tt.configured+"/"+tt.logged, func(t *testing.T) {
			var buf bytes.Buffer
			cl := NewConsoleLogger(&buf, tt.configured)

			switch tt.logged {
			case "trace":
				cl.Tracef("msg")
			case "debug":
				cl.Debugf("msg")
			case "info":
				cl.Infof("msg")
			case "warn":
				cl.Warnf("msg")
			case "error":
				cl.Errorf("msg")
			}

			if tt.want {
				assert.Contains(t, buf.String(), "msg")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestConsoleLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "info")

	cl.Infof("scanned %d files", 7)

	out := buf.String()
	assert.Regexp(t, `^\[\d{2}:\d{2}:\d{2}\] \[INFO\] scanned 7 files\n$`, out)
}

func TestConsoleLogger_NilWriter(t *testing.T) {
	cl := NewConsoleLogger(nil, "info")
	// Must not panic.
	cl.Infof("dropped")
	cl.Errorf("dropped")
}

func TestFileLogger_WritesRunLog(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	fl, err := NewFileLogger(logDir, "debug")
	require.NoError(t, err)
	assert.Len(t, fl.RunID(), 8)

	fl.Infof("checking %d roots", 2)
	fl.Debugf("worker detail")
	fl.Tracef("filtered out")
	require.NoError(t, fl.Close())

	data, err := os.ReadFile(fl.Path())
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "=== xref run "+fl.RunID())
	assert.Contains(t, content, "checking 2 roots")
	assert.Contains(t, content, "worker detail")
	assert.NotContains(t, content, "filtered out", "trace is below the debug level")
	assert.Contains(t, content, "Finished at:")
}

func TestFileLogger_LatestSymlink(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	first, err := NewFileLogger(logDir, "info")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewFileLogger(logDir, "info")
	require.NoError(t, err)
	require.NoError(t, second.Close())

	target, err := os.Readlink(filepath.Join(logDir, "latest.log"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(second.Path()), target)
}

func TestTee_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	tee := NewTee(NewConsoleLogger(&a, "info"), NewConsoleLogger(&b, "info"))

	tee.Infof("hello")

	assert.Contains(t, a.String(), "hello")
	assert.Contains(t, b.String(), "hello")
}

func TestTee_DropsNil(t *testing.T) {
	var buf bytes.Buffer
	tee := NewTee(nil, NewConsoleLogger(&buf, "info"))

	require.Len(t, tee, 1)
	tee.Warnf("only one target")
	assert.True(t, strings.Contains(buf.String(), "only one target"))
}
