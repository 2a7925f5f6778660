package check

import (
	"fmt"
	"strings"
)

// Summary describes a fully successful validation run.
type Summary struct {
	// Tags is the number of distinct tag labels.
	Tags int

	// Refs, FileRefs, and DirRefs count the directives of each reference
	// kind that were validated.
	Refs     int
	FileRefs int
	DirRefs  int

	// FilesScanned is the number of files the walker handed to the scanner.
	FilesScanned int
}

// String renders the one-line success message, e.g.
// "2 tags, 3 references, 1 file reference, and 0 directory references
// validated in 14 files.".
func (s Summary) String() string {
	return fmt.Sprintf("%s, %s, %s, and %s validated in %s.",
		Count(s.Tags, "tag"),
		Count(s.Refs, "reference"),
		Count(s.FileRefs, "file reference"),
		Count(s.DirRefs, "directory reference"),
		Count(s.FilesScanned, "file"),
	)
}

// Count renders n with a pluralized noun ("1 tag", "2 tags"). Nouns here
// pluralize with a plain "s".
func Count(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// Report merges the validators' findings into one failure text, in a fixed
// category order: duplicates, then tag references, then file references,
// then directory references. It returns the joined text and whether any
// findings exist. Validation never stops at the first failing category;
// every problem is surfaced in one pass.
func Report(duplicates, tagRefs, fileRefs, dirRefs []string) (string, bool) {
	var all []string
	all = append(all, duplicates...)
	all = append(all, tagRefs...)
	all = append(all, fileRefs...)
	all = append(all, dirRefs...)
	if len(all) == 0 {
		return "", false
	}
	return strings.Join(all, "\n"), true
}
