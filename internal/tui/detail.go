package tui

import (
	"fmt"

	"github.com/MKhiriev/go-doc-vault/models"
)

type detailModel struct {
	entry   models.IndexEntry
	doc     models.Document
	title   string
	content string
	status  string
}

func (m detailModel) View() string {
	out := titleStyle.Render(m.title) + fmt.Sprintf("  %s v%d\n\n", roleIcon(m.entry.Role), m.doc.Version)

	out += m.content
	if m.content == "" {
		out += "(пусто)"
	}
	out += "\n\n"

	out += "Доступ:\n"
	for _, g := range m.doc.Grants {
		out += fmt.Sprintf("  %s %s\n", roleIcon(g.Role), g.GranteeID)
	}

	out += "\n" + helpStyle.Render("e черновик  b ветки  g поделиться  v отозвать  d удалить  c копир.  esc назад")

	if m.status != "" {
		out += "\n\n" + m.status
	}

	return out
}
