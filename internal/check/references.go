package check

import (
	"fmt"
	"os"
	"sort"

	"github.com/harrison/xref/internal/directive"
)

// TagRefs flags every reference directive whose label has no corresponding
// tag. The labels set must contain every distinct tag label, including
// duplicated ones: duplication is reported separately and does not make a
// label unresolvable.
func TagRefs(labels map[string]bool, refs []directive.Directive) []string {
	var findings []string
	for _, ref := range refs {
		if !labels[ref.Label] {
			findings = append(findings, fmt.Sprintf("No tag found for %s.", ref))
		}
	}
	sort.Strings(findings)
	return findings
}

// FileRefs flags every file-reference directive whose label, interpreted as
// a path, does not exist or is not a regular file. Lookup failures surface
// the underlying error text.
func FileRefs(refs []directive.Directive) []string {
	var findings []string
	for _, ref := range refs {
		info, err := os.Stat(ref.Label)
		switch {
		case err != nil:
			findings = append(findings, fmt.Sprintf("Error when validating %s: %v", ref, err))
		case !info.Mode().IsRegular():
			findings = append(findings, fmt.Sprintf("%s does not point to a file.", ref))
		}
	}
	sort.Strings(findings)
	return findings
}

// DirRefs flags every directory-reference directive whose label does not
// exist or is not a directory.
func DirRefs(refs []directive.Directive) []string {
	var findings []string
	for _, ref := range refs {
		info, err := os.Stat(ref.Label)
		switch {
		case err != nil:
			findings = append(findings, fmt.Sprintf("Error when validating %s: %v", ref, err))
		case !info.IsDir():
			findings = append(findings, fmt.Sprintf("%s does not point to a directory.", ref))
		}
	}
	sort.Strings(findings)
	return findings
}
