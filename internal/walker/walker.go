// Package walker implements the concurrent filesystem traversal that feeds
// files to the directive scanner.
//
// The traversal is deliberately fault tolerant: files that vanish, can't be
// opened, or aren't regular files are skipped without failing the run. The
// only observable outcome of a walk is how many files were successfully
// handed to the callback.
package walker

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ScanFunc is invoked once per successfully opened regular file. It must be
// safe to call concurrently from multiple workers; there is no ordering
// guarantee between files. The reader is closed by the walker after the
// callback returns.
type ScanFunc func(path string, r io.Reader)

// Options configures a walk.
type Options struct {
	// ExcludeDirs lists directory names (not paths) to skip entirely.
	// Directories whose name starts with "." are always skipped.
	ExcludeDirs []string

	// Jobs is the number of concurrent workers. Zero or negative means
	// runtime.GOMAXPROCS(0).
	Jobs int
}

// DefaultExcludeDirs returns the directory names skipped by default:
// version-control metadata plus the usual dependency caches.
func DefaultExcludeDirs() []string {
	return []string{".git", ".hg", ".svn", "node_modules"}
}

// Walk traverses every root concurrently and invokes scan once for each
// regular file it can open. Symbolic links are never followed, so cycles
// cannot occur. Unreadable roots, directories, and files contribute nothing
// and raise no error.
//
// Walk returns only after every worker has finished; the return value is the
// number of files scan was invoked on.
func Walk(roots []string, opts Options, scan ScanFunc) int {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	exclude := make(map[string]bool, len(opts.ExcludeDirs))
	for _, name := range opts.ExcludeDirs {
		exclude[name] = true
	}

	w := &walk{exclude: exclude, scan: scan}
	w.cond = sync.NewCond(&w.mu)

	// Roots are seeded directly: a root that is itself a regular file is
	// scanned, a directory becomes the initial frontier. The exclusion
	// rules apply only to entries discovered below a root.
	for _, root := range roots {
		info, err := os.Lstat(root)
		if err != nil {
			continue
		}
		switch {
		case info.IsDir():
			w.push(root)
		case info.Mode().IsRegular():
			w.scanFile(root)
		}
	}

	var g errgroup.Group
	for i := 0; i < jobs; i++ {
		g.Go(func() error {
			w.run()
			return nil
		})
	}
	// Workers never return errors; per-file failures are absorbed.
	_ = g.Wait()

	return int(w.scanned.Load())
}

// walk is the shared traversal state. The frontier is a LIFO stack of
// directories drained cooperatively by all workers; pending counts
// directories queued or currently being expanded, so workers know when the
// traversal is exhausted rather than merely idle.
type walk struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []string
	pending int

	exclude map[string]bool
	scan    ScanFunc
	scanned atomic.Int64
}

func (w *walk) push(dir string) {
	w.mu.Lock()
	w.queue = append(w.queue, dir)
	w.pending++
	w.mu.Unlock()
	w.cond.Signal()
}

// next pops a directory from the frontier, blocking while other workers may
// still discover more. It returns false once the traversal is exhausted.
func (w *walk) next() (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for {
		if n := len(w.queue); n > 0 {
			dir := w.queue[n-1]
			w.queue = w.queue[:n-1]
			return dir, true
		}
		if w.pending == 0 {
			return "", false
		}
		w.cond.Wait()
	}
}

// done marks one directory fully expanded and wakes everyone when the
// traversal is exhausted.
func (w *walk) done() {
	w.mu.Lock()
	w.pending--
	exhausted := w.pending == 0
	w.mu.Unlock()
	if exhausted {
		w.cond.Broadcast()
	}
}

func (w *walk) run() {
	for {
		dir, ok := w.next()
		if !ok {
			return
		}
		w.expand(dir)
		w.done()
	}
}

// expand reads one directory, queues its subdirectories, and scans its
// regular files. Every failure mode is a silent skip.
func (w *walk) expand(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		// Symlinks are skipped outright, directories or not.
		if entry.Type()&fs.ModeSymlink != 0 {
			continue
		}

		if entry.IsDir() {
			if w.exclude[name] || strings.HasPrefix(name, ".") {
				continue
			}
			w.push(path)
			continue
		}

		if !entry.Type().IsRegular() {
			continue
		}
		w.scanFile(path)
	}
}

func (w *walk) scanFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		// Permissions, deletion races: not fatal, not counted.
		return
	}
	defer f.Close()

	w.scan(path, f)
	w.scanned.Add(1)
}
