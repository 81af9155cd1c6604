package tui

import (
	"fmt"

	"github.com/MKhiriev/go-doc-vault/models"
	"github.com/charmbracelet/bubbles/spinner"
)

type listModel struct {
	entries []models.IndexEntry
	idx     int
	loading bool
	syncing bool
	spinner spinner.Model
	status  string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.IndexEntry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.IndexEntry{}, false
	}
	return m.entries[m.idx], true
}

func roleIcon(r models.Role) string {
	switch r {
	case models.RoleOwner:
		return "[O]"
	case models.RoleWrite:
		return "[W]"
	case models.RoleRead:
		return "[R]"
	default:
		return "[?]"
	}
}

func (m listModel) View() string {
	header := titleStyle.Render("GoDocVault")
	if m.syncing {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	if m.loading {
		out += "Загрузка...\n"
	} else if len(m.entries) == 0 {
		out += "Нет документов\n"
	} else {
		for i, entry := range m.entries {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s %s\n", cursor, roleIcon(entry.Role), fitText(entry.Title, 60))
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("n новый  s синхр.  q выход  enter открыть")
	return out
}
