// Package check implements the three validators run over the aggregated
// directives, and the report that merges their findings.
//
// Validators return human-readable finding strings rather than errors: a
// finding never stops the other checks, and the report builder decides at
// the end whether the run failed.
package check

import (
	"fmt"
	"sort"
	"strings"

	"github.com/harrison/xref/internal/directive"
)

// Duplicates flags every label declared by more than one tag directive. Each
// finding is one paragraph naming the label and every occurrence's origin.
//
// Output is sorted by label, and occurrences within a label by path then
// line, so repeated runs over an unchanged tree produce identical text even
// though the scan itself is parallel.
func Duplicates(tags map[string][]directive.Directive) []string {
	labels := make([]string, 0, len(tags))
	for label, occurrences := range tags {
		if len(occurrences) > 1 {
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)

	findings := make([]string, 0, len(labels))
	for _, label := range labels {
		occurrences := append([]directive.Directive(nil), tags[label]...)
		sort.Slice(occurrences, func(i, j int) bool {
			if occurrences[i].Path != occurrences[j].Path {
				return occurrences[i].Path < occurrences[j].Path
			}
			return occurrences[i].Line < occurrences[j].Line
		})

		var b strings.Builder
		fmt.Fprintf(&b, "Duplicate tags found for label `%s`:", label)
		for _, occ := range occurrences {
			fmt.Fprintf(&b, "\n  %s", occ)
		}
		findings = append(findings, b.String())
	}
	return findings
}
