package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-doc-vault/internal/access"
	"github.com/MKhiriev/go-doc-vault/internal/branch"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	acl access.AccessControl
	eng branch.Engine
}

func New(acl access.AccessControl, eng branch.Engine, _ *logger.Logger) (*TUI, error) {
	return &TUI{acl: acl, eng: eng}, nil
}

// UnlockFlow asks for the identity passphrase. Runs as its own program
// so the identity can be derived before any store traffic happens.
func (t *TUI) UnlockFlow(ctx context.Context) (passphrase string, err error) {
	finalModel, runErr := tea.NewProgram(newUnlockModel(), tea.WithAltScreen()).Run()
	if runErr != nil {
		return "", runErr
	}

	result, ok := finalModel.(unlockModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser {
		return "", ErrUserQuit
	}

	return result.passphrase, nil
}

// MainLoop runs the document screens until the user quits.
func (t *TUI) MainLoop(ctx context.Context, sess *access.Session) error {
	model := newAppModel(ctx, t.acl, t.eng, sess)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	return result.err
}
