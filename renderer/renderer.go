// Package renderer turns computed inventory views into markdown for the
// terminal. It contains no business logic: it only consumes plain values
// prepared by the ledger engine.
package renderer

import (
	"fmt"
	"strings"
)

// table is a minimal markdown table builder.
type table struct {
	b    strings.Builder
	cols int
}

func newTable(headers ...string) *table {
	t := &table{cols: len(headers)}
	t.row(headers...)
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	t.row(sep...)
	return t
}

func (t *table) row(cells ...string) {
	t.b.WriteString("| ")
	t.b.WriteString(strings.Join(cells, " | "))
	t.b.WriteString(" |\n")
}

func (t *table) String() string { return t.b.String() }

// quantity formats a stock quantity without trailing zero noise.
func quantity(v float64) string { return fmt.Sprintf("%g", v) }
