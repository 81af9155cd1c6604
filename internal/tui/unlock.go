package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type unlockModel struct {
	input      textinput.Model
	passphrase string
	quitByUser bool
}

func newUnlockModel() unlockModel {
	input := textinput.New()
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.Focus()
	return unlockModel{input: input}
}

func (m unlockModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m unlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit) && keyMsg.String() == "ctrl+c":
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			pass := m.input.Value()
			if strings.TrimSpace(pass) == "" {
				return m, nil
			}
			m.passphrase = pass
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m unlockModel) View() string {
	out := titleStyle.Render("GoDocVault") + "\n\n"
	out += "Парольная фраза: [" + m.input.View() + "]\n\n"
	out += helpStyle.Render("enter продолжить  esc выход")
	return appStyle.Render(out)
}
