package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/servihogar/internal/nav"
)

// toastMsg shows a transient notification in the status bar.
type toastMsg struct {
	Text  string
	IsErr bool
}

type toastExpiredMsg struct {
	seq int
}

type navigateMsg struct {
	View nav.View
}

type logoutMsg struct{}

type pushScreenMsg struct {
	Screen Screen
}

func toastCmd(text string) tea.Cmd {
	return func() tea.Msg { return toastMsg{Text: text} }
}

func errorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return toastMsg{}
		}
		return toastMsg{Text: err.Error(), IsErr: true}
	}
}

func expireToast(ttl time.Duration, seq int) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg { return toastExpiredMsg{seq: seq} })
}
