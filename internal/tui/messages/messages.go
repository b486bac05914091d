package messages

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ToastExpiredMsg is sent when a toast has been on screen long enough
type ToastExpiredMsg struct {
	ID int
}

// ExpireToast schedules a ToastExpiredMsg for the toast with the given id.
func ExpireToast(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}
