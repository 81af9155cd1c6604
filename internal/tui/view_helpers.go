package tui

import (
	"strings"

	"github.com/MKhiriev/go-doc-vault/models"
)

// renderDiff prints a unified-style line diff in span order, the order
// the diff engine emits.
func renderDiff(d models.Diff) string {
	var b strings.Builder
	for _, span := range d.Spans {
		for _, line := range span.Lines {
			text := span.Op.String() + " " + line
			switch span.Op {
			case models.DiffInsert:
				text = diffInsertStyle.Render(text)
			case models.DiffDelete:
				text = diffDeleteStyle.Render(text)
			}
			b.WriteString(text)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
