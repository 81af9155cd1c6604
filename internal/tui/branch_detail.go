package tui

import (
	"fmt"

	"github.com/MKhiriev/go-doc-vault/models"
)

type branchDetailModel struct {
	branch  models.Branch
	content string
	diff    models.Diff
	status  string
}

func (m branchDetailModel) View() string {
	desc := m.branch.Description
	if desc == "" {
		desc = m.branch.ID
	}
	out := titleStyle.Render(desc) + fmt.Sprintf("  %s %s\n", statusIcon(m.branch.Status), m.branch.Status)
	out += fmt.Sprintf("Автор: %s  от v%d\n", m.branch.AuthorID, m.branch.ParentVersion)
	if m.branch.Status == models.BranchRejected && m.branch.Reason != "" {
		out += "Причина: " + m.branch.Reason + "\n"
	}
	out += "\n"

	if m.diff.Changed() {
		inserted, deleted := m.diff.Stats()
		out += fmt.Sprintf("Изменения (+%d -%d):\n", inserted, deleted)
		out += renderDiff(m.diff)
	} else {
		out += "Нет изменений относительно документа\n"
	}

	out += "\n" + helpStyle.Render(branchHelp(m.branch.Status))

	if m.status != "" {
		out += "\n\n" + m.status
	}

	return out
}

func branchHelp(s models.BranchStatus) string {
	switch s {
	case models.BranchCreated:
		return "e редакт.  s отправить  x отклонить  esc назад"
	case models.BranchSubmitted:
		return "m слить  x отклонить  r перебазировать  esc назад"
	default:
		return "esc назад"
	}
}
