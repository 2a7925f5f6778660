// Package aggregate collects the directives extracted from individual files
// into the run-wide collections the validators consume.
package aggregate

import (
	"sync"

	"github.com/harrison/xref/internal/directive"
)

// Store accumulates directives across concurrent scan workers. All mutation
// goes through Merge, which holds a single mutex for the duration of one
// file's update, so a file's directives are never partially visible.
//
// The read accessors are meant for after the traversal has fully joined;
// they return the internal collections without copying.
type Store struct {
	mu    sync.Mutex
	tags  map[string][]directive.Directive
	refs  []directive.Directive
	files []directive.Directive
	dirs  []directive.Directive
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{tags: make(map[string][]directive.Directive)}
}

// Merge folds one file's directives into the store in a single critical
// section. Tags are keyed by label so duplicates accumulate under one entry;
// the other kinds are appended in arrival order. Nothing is deduplicated:
// every occurrence is preserved for provenance in error reports.
func (s *Store) Merge(d directive.Directives) {
	if d.Empty() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tag := range d.Tags {
		s.tags[tag.Label] = append(s.tags[tag.Label], tag)
	}
	s.refs = append(s.refs, d.Refs...)
	s.files = append(s.files, d.Files...)
	s.dirs = append(s.dirs, d.Dirs...)
}

// Tags returns the label-to-directives map.
func (s *Store) Tags() map[string][]directive.Directive {
	return s.tags
}

// Labels returns the set of distinct tag labels, regardless of duplication.
// A duplicated label still resolves references: a dangling reference is a
// worse failure than a duplicate tag, so resolution uses every known label.
func (s *Store) Labels() map[string]bool {
	labels := make(map[string]bool, len(s.tags))
	for label := range s.tags {
		labels[label] = true
	}
	return labels
}

// Refs returns all tag-reference directives in arrival order.
func (s *Store) Refs() []directive.Directive {
	return s.refs
}

// Files returns all file-reference directives in arrival order.
func (s *Store) Files() []directive.Directive {
	return s.files
}

// Dirs returns all directory-reference directives in arrival order.
func (s *Store) Dirs() []directive.Directive {
	return s.dirs
}
