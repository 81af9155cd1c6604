package tui

import (
	"strings"

	"github.com/MKhiriev/go-doc-vault/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type formGrantModel struct {
	inputs     []textinput.Model
	focus      int
	revoking   bool
	submitting bool
}

func newFormGrantModel(revoking bool) formGrantModel {
	count := 2
	if revoking {
		count = 1
	}

	inputs := make([]textinput.Model, count)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[0].Focus()
	if !revoking {
		inputs[1].SetValue(models.RoleRead.String())
	}

	return formGrantModel{inputs: inputs, revoking: revoking}
}

func (m formGrantModel) granteeID() string {
	return strings.TrimSpace(m.inputs[0].Value())
}

func (m formGrantModel) role() (models.Role, bool) {
	switch strings.ToLower(strings.TrimSpace(m.inputs[1].Value())) {
	case models.RoleRead.String():
		return models.RoleRead, true
	case models.RoleWrite.String():
		return models.RoleWrite, true
	default:
		return 0, false
	}
}

func (m formGrantModel) View() string {
	if m.revoking {
		out := titleStyle.Render("Отозвать доступ") + "\n\n"
		out += "Пользователь: [" + m.inputs[0].View() + "]\n\n"
		out += helpStyle.Render("esc отмена  enter отозвать")
		return out
	}

	out := titleStyle.Render("Поделиться документом") + "\n\n"
	out += "Пользователь:      [" + m.inputs[0].View() + "]\n"
	out += "Роль (read/write): [" + m.inputs[1].View() + "]\n\n"
	out += helpStyle.Render("esc отмена  tab следующее поле  enter выдать доступ")
	return out
}
