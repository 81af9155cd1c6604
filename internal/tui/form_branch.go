package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// formBranchModel edits a draft. Creating makes a new branch from the
// document's current content; editing replaces an existing draft body.
type formBranchModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	branchID   string
	submitting bool
}

func newFormBranchModel(content string) formBranchModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 60
	}
	inputs[0].Focus()
	inputs[1].SetValue(content)

	return formBranchModel{inputs: inputs}
}

func newFormBranchEditModel(branchID, content string) formBranchModel {
	m := newFormBranchModel(content)
	m.editing = true
	m.branchID = branchID
	m.inputs[0].Blur()
	m.inputs[1].Focus()
	m.focus = 1
	return m
}

func (m formBranchModel) View() string {
	title := "Новый черновик"
	if m.editing {
		title = "Редактирование черновика"
	}

	out := titleStyle.Render(title) + "\n\n"
	if !m.editing {
		out += "Описание:   [" + m.inputs[0].View() + "]\n"
	}
	out += "Содержимое: [" + m.inputs[1].View() + "]\n\n"
	out += helpStyle.Render("esc отмена  tab следующее поле  enter сохранить")
	return out
}
