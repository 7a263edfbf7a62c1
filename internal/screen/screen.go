package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/sam/aiquiz/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// ProgressProvider is an optional interface for screens that track how
// many of their items are done. The header shows it as a progress bar.
type ProgressProvider interface {
	Progress() (done, total int)
}

// NotifyMsg asks the application to show a transient notification.
type NotifyMsg struct {
	Text string
}

// Notify returns a command that emits a NotifyMsg.
func Notify(text string) tea.Cmd {
	return func() tea.Msg { return NotifyMsg{Text: text} }
}
