package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/dayly/internal/store"
)

// Messages shared between the screens and the root model.
// (Defined here to avoid a circular import with the ui package.)

// SnapshotMsg carries the newest task list published by the store
type SnapshotMsg struct {
	Snapshot store.Snapshot
}

// OpenHomeMsg asks the root to show the home screen
type OpenHomeMsg struct{}

// OpenCreateMsg asks the root to show a fresh create form
type OpenCreateMsg struct{}

// OpenEditMsg asks the root to show the edit form for a task
type OpenEditMsg struct {
	TaskID string
}

// PickedMsg is sent when a day is chosen in the month picker
type PickedMsg struct {
	Day time.Time
}

// PickCanceledMsg is sent when the month picker is dismissed
type PickCanceledMsg struct{}

// StatusMsg contains a status message to display
type StatusMsg struct {
	Message string
}

// ErrorMsg contains an error to display
type ErrorMsg struct {
	Err error
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func status(message string) tea.Cmd {
	return emit(StatusMsg{Message: message})
}
