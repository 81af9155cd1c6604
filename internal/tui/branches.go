package tui

import (
	"fmt"

	"github.com/MKhiriev/go-doc-vault/models"
)

type branchListModel struct {
	branches []models.Branch
	idx      int
	loading  bool
}

func (m branchListModel) current() (models.Branch, bool) {
	if len(m.branches) == 0 || m.idx < 0 || m.idx >= len(m.branches) {
		return models.Branch{}, false
	}
	return m.branches[m.idx], true
}

func statusIcon(s models.BranchStatus) string {
	switch s {
	case models.BranchCreated:
		return "[~]"
	case models.BranchSubmitted:
		return "[>]"
	case models.BranchMerged:
		return "[+]"
	case models.BranchRejected:
		return "[x]"
	default:
		return "[?]"
	}
}

func (m branchListModel) View() string {
	out := titleStyle.Render("Ветки") + "\n\n"

	if m.loading {
		out += "Загрузка...\n"
	} else if len(m.branches) == 0 {
		out += "Нет веток\n"
	} else {
		for i, b := range m.branches {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			desc := b.Description
			if desc == "" {
				desc = b.ID
			}
			out += fmt.Sprintf("%s%s %s (v%d, %s)\n", cursor, statusIcon(b.Status), desc, b.ParentVersion, b.AuthorID)
		}
	}

	out += "\n" + helpStyle.Render("enter открыть  esc назад")
	return out
}
