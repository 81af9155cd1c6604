package tui

import (
	"github.com/MKhiriev/go-doc-vault/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type formDocModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newFormDocModel() formDocModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 60
	}
	inputs[0].Focus()

	return formDocModel{inputs: inputs}
}

func (m formDocModel) toDraft() models.DocumentDraft {
	return models.DocumentDraft{
		Title:   m.inputs[0].Value(),
		Content: m.inputs[1].Value(),
	}
}

func (m formDocModel) View() string {
	out := titleStyle.Render("Новый документ") + "\n\n"
	out += "Название:   [" + m.inputs[0].View() + "]\n"
	out += "Содержимое: [" + m.inputs[1].View() + "]\n\n"
	out += helpStyle.Render("esc отмена  tab следующее поле  enter сохранить")
	return out
}
