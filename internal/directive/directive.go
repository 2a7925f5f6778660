// Package directive defines the bracketed cross-reference annotations xref
// scans for, and provides the matchers and scanner that extract them.
//
// A directive is a bracketed annotation of the form [sigil:label] embedded in
// an arbitrary text file. Four kinds exist: tags declare a label, refs point
// at a tag's label, and file/dir directives point at filesystem paths.
package directive

import "fmt"

// Kind identifies which of the four directive forms a Directive is.
type Kind int

// The four directive kinds.
const (
	KindTag Kind = iota
	KindRef
	KindFile
	KindDir
)

// String returns the lowercase name of the kind as it appears in directives.
func (k Kind) String() string {
	switch k {
	case KindTag:
		return "tag"
	case KindRef:
		return "ref"
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	default:
		return "unknown"
	}
}

// Directive is one annotation found in a source file, together with its
// origin. Directives are created by Scan and never mutated afterwards.
type Directive struct {
	// Kind is the directive form (tag, ref, file, or dir).
	Kind Kind

	// Label is the captured text between the colon and the closing bracket,
	// trimmed of surrounding whitespace. Case is preserved.
	Label string

	// Path is the file the directive was found in, exactly as the walker
	// reported it.
	Path string

	// Line is the 1-based line number the directive appears on.
	Line int
}

// String renders the directive with its origin, e.g. "[tag:foo] @ main.go:12".
// This form is used verbatim in error reports and list output.
func (d Directive) String() string {
	return fmt.Sprintf("[%s:%s] @ %s:%d", d.Kind, d.Label, d.Path, d.Line)
}

// Directives holds all the directives extracted from a single file, one
// slice per kind, each in line order.
type Directives struct {
	Tags  []Directive
	Refs  []Directive
	Files []Directive
	Dirs  []Directive
}

// Empty reports whether the file contained no directives of any kind.
func (d Directives) Empty() bool {
	return len(d.Tags) == 0 && len(d.Refs) == 0 && len(d.Files) == 0 && len(d.Dirs) == 0
}
