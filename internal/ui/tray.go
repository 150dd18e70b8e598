package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/tempo/internal/tray"
)

// AttachTray builds the tray surface and registers it as a status observer
// on the timer session, so it mirrors every state change and tick. Actions
// the tray emits are wrapped as TrayActionMsg and handed to send, which
// must marshal onto the program's event loop (tea.Program.Send does).
func AttachTray(m *RootModel, send func(tea.Msg)) *tray.Tray {
	t := tray.New(func(a tray.Action) {
		send(TrayActionMsg{Action: a})
	})
	m.session.AddObserver(t)
	return t
}
