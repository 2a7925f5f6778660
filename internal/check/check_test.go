package check

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/xref/internal/directive"
)

func tag(label, path string, line int) directive.Directive {
	return directive.Directive{Kind: directive.KindTag, Label: label, Path: path, Line: line}
}

func ref(kind directive.Kind, label, path string, line int) directive.Directive {
	return directive.Directive{Kind: kind, Label: label, Path: path, Line: line}
}

func TestDuplicates_Empty(t *testing.T) {
	assert.Empty(t, Duplicates(map[string][]directive.Directive{}))
}

func TestDuplicates_NoDupes(t *testing.T) {
	tags := map[string][]directive.Directive{
		"a": {tag("a", "one.go", 1)},
		"b": {tag("b", "two.go", 2)},
	}
	assert.Empty(t, Duplicates(tags))
}

func TestDuplicates_ReportsEveryOccurrence(t *testing.T) {
	tags := map[string][]directive.Directive{
		"a": {tag("a", "two.go", 9), tag("a", "one.go", 1)},
		"b": {tag("b", "two.go", 2)},
	}

	findings := Duplicates(tags)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0], "Duplicate tags found for label `a`:")
	assert.Contains(t, findings[0], "one.go:1")
	assert.Contains(t, findings[0], "two.go:9")
	assert.Less(t, strings.Index(findings[0], "one.go"), strings.Index(findings[0], "two.go"),
		"occurrences must be sorted by path for stable output")
}

func TestDuplicates_SortedByLabel(t *testing.T) {
	tags := map[string][]directive.Directive{
		"zz": {tag("zz", "a.go", 1), tag("zz", "a.go", 2)},
		"aa": {tag("aa", "b.go", 1), tag("aa", "b.go", 2)},
	}

	findings := Duplicates(tags)
	require.Len(t, findings, 2)
	assert.Contains(t, findings[0], "`aa`")
	assert.Contains(t, findings[1], "`zz`")
}

func TestTagRefs_AllResolve(t *testing.T) {
	labels := map[string]bool{"a": true}
	refs := []directive.Directive{ref(directive.KindRef, "a", "f.go", 1)}

	assert.Empty(t, TagRefs(labels, refs))
}

func TestTagRefs_Dangling(t *testing.T) {
	labels := map[string]bool{"a": true}
	refs := []directive.Directive{
		ref(directive.KindRef, "a", "f.go", 1),
		ref(directive.KindRef, "missing", "g.go", 2),
	}

	findings := TagRefs(labels, refs)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0], "No tag found for")
	assert.Contains(t, findings[0], "missing")
	assert.Contains(t, findings[0], "g.go:2")
}

func TestTagRefs_LabelCaseSignificant(t *testing.T) {
	labels := map[string]bool{"Label": true}
	refs := []directive.Directive{ref(directive.KindRef, "label", "f.go", 1)}

	assert.Len(t, TagRefs(labels, refs), 1)
}

func TestFileRefs(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "exists.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	tests := []struct {
		name     string
		target   string
		wantHit  bool
		wantText string
	}{
		{"existing file", file, false, ""},
		{"missing path", filepath.Join(dir, "nope.txt"), true, "Error when validating"},
		{"directory not file", dir, true, "does not point to a file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := FileRefs([]directive.Directive{ref(directive.KindFile, tt.target, "f.go", 3)})
			if !tt.wantHit {
				assert.Empty(t, findings)
				return
			}
			require.Len(t, findings, 1)
			assert.Contains(t, findings[0], tt.wantText)
			assert.Contains(t, findings[0], "f.go:3")
		})
	}
}

func TestDirRefs(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	tests := []struct {
		name     string
		target   string
		wantHit  bool
		wantText string
	}{
		{"existing directory", dir, false, ""},
		{"missing path", filepath.Join(dir, "nope"), true, "Error when validating"},
		{"file not directory", file, true, "does not point to a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := DirRefs([]directive.Directive{ref(directive.KindDir, tt.target, "f.go", 4)})
			if !tt.wantHit {
				assert.Empty(t, findings)
				return
			}
			require.Len(t, findings, 1)
			assert.Contains(t, findings[0], tt.wantText)
		})
	}
}

func TestReport_Empty(t *testing.T) {
	text, failed := Report(nil, nil, nil, nil)
	assert.False(t, failed)
	assert.Empty(t, text)
}

func TestReport_StableCategoryOrder(t *testing.T) {
	text, failed := Report(
		[]string{"dup finding"},
		[]string{"tag-ref finding"},
		[]string{"fileref finding"},
		[]string{"dirref finding"},
	)

	require.True(t, failed)
	order := []string{"dup finding", "tag-ref finding", "fileref finding", "dirref finding"}
	last := -1
	for _, part := range order {
		idx := strings.Index(text, part)
		require.GreaterOrEqual(t, idx, 0, part)
		assert.Greater(t, idx, last, "categories must appear in fixed order")
		last = idx
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, "0 tags", Count(0, "tag"))
	assert.Equal(t, "1 tag", Count(1, "tag"))
	assert.Equal(t, "2 tags", Count(2, "tag"))
}

func TestSummary_String(t *testing.T) {
	s := Summary{Tags: 2, Refs: 3, FileRefs: 1, DirRefs: 0, FilesScanned: 14}
	assert.Equal(t,
		"2 tags, 3 references, 1 file reference, and 0 directory references validated in 14 files.",
		s.String())
}
