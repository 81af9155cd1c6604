package tui

// errorOverlayModel shows a dismissable error box over whatever screen
// raised it.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render("Ошибка\n\n" + m.message + "\n\nenter / esc закрыть")
}
