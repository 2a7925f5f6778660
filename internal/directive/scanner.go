package directive

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// maxLineSize caps the longest line the scanner will buffer. Lines beyond
// this (minified bundles, binary blobs that happen to contain newlines) end
// the scan of that file early rather than failing the run.
const maxLineSize = 1024 * 1024

// Scan reads the stream line by line and extracts every directive recognized
// by the matcher set, recording the given path and the 1-based line number
// on each. It performs no I/O of its own beyond reading r.
//
// Lines that are not valid UTF-8 are skipped: binary files routinely survive
// the walker's regular-file filter, and aborting on them would make the whole
// run fragile. A read error mid-file likewise just ends that file's scan;
// everything extracted up to that point is kept.
func Scan(set *MatcherSet, path string, r io.Reader) Directives {
	var out Directives

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if !utf8.ValidString(text) {
			continue
		}
		out.Tags = set.Tag.matchLine(text, path, line, out.Tags)
		out.Refs = set.Ref.matchLine(text, path, line, out.Refs)
		out.Files = set.File.matchLine(text, path, line, out.Files)
		out.Dirs = set.Dir.matchLine(text, path, line, out.Dirs)
	}

	// scanner.Err() is deliberately ignored: per-file read failures are
	// absorbed, never surfaced (see package walker for the same policy on
	// open failures).
	return out
}
