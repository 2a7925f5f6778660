package directive

import (
	"fmt"
	"regexp"
)

// Matcher recognizes all occurrences of one directive kind on a line of text.
// It is safe for concurrent use once compiled.
type Matcher struct {
	kind  Kind
	sigil string
	re    *regexp.Regexp
}

// Compile builds a Matcher for the given kind from a sigil string.
//
// The pattern recognized is "[" WS* sigil WS* ":" WS* label WS* "]", matched
// case-insensitively on the sigil with any regexp metacharacters in it
// escaped. The label is everything up to the closing bracket, trimmed of
// surrounding whitespace, so labels may contain embedded spaces (which
// matters for file and directory paths). Label case is preserved.
//
// A sigil that cannot be compiled is a configuration error and is reported
// before any scanning starts.
func Compile(kind Kind, sigil string) (*Matcher, error) {
	re, err := regexp.Compile(`(?i)\[\s*` + regexp.QuoteMeta(sigil) + `\s*:\s*([^\]]*?)\s*\]`)
	if err != nil {
		return nil, fmt.Errorf("invalid %s sigil %q: %w", kind, sigil, err)
	}
	return &Matcher{kind: kind, sigil: sigil, re: re}, nil
}

// Kind returns the directive kind this matcher recognizes.
func (m *Matcher) Kind() Kind {
	return m.kind
}

// matchLine appends a Directive to out for every non-overlapping occurrence
// on the line, left to right.
func (m *Matcher) matchLine(line, path string, lineNum int, out []Directive) []Directive {
	for _, groups := range m.re.FindAllStringSubmatch(line, -1) {
		out = append(out, Directive{
			Kind:  m.kind,
			Label: groups[1],
			Path:  path,
			Line:  lineNum,
		})
	}
	return out
}

// MatcherSet bundles the four compiled matchers for one run. It is built
// once before traversal begins and shared read-only across workers.
type MatcherSet struct {
	Tag  *Matcher
	Ref  *Matcher
	File *Matcher
	Dir  *Matcher
}

// Sigils names the matcher token for each directive kind.
type Sigils struct {
	Tag  string `yaml:"tag"`
	Ref  string `yaml:"ref"`
	File string `yaml:"file"`
	Dir  string `yaml:"dir"`
}

// DefaultSigils returns the standard sigil tokens.
func DefaultSigils() Sigils {
	return Sigils{Tag: "tag", Ref: "ref", File: "file", Dir: "dir"}
}

// CompileSet compiles a matcher per kind from the given sigils. Any failure
// aborts the whole set.
func CompileSet(s Sigils) (*MatcherSet, error) {
	tag, err := Compile(KindTag, s.Tag)
	if err != nil {
		return nil, err
	}
	ref, err := Compile(KindRef, s.Ref)
	if err != nil {
		return nil, err
	}
	file, err := Compile(KindFile, s.File)
	if err != nil {
		return nil, err
	}
	dir, err := Compile(KindDir, s.Dir)
	if err != nil {
		return nil, err
	}
	return &MatcherSet{Tag: tag, Ref: ref, File: file, Dir: dir}, nil
}
