package components

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// ToastExpiredMsg hides the toast shown with the same sequence number.
type ToastExpiredMsg struct {
	Seq int
}

// Toast is a transient one-line notification.
type Toast struct {
	text    string
	seq     int
	visible bool
}

// Show displays text for d. A newer toast replaces an older one; the older
// one's expiry is ignored.
func (t Toast) Show(text string, d time.Duration) (Toast, tea.Cmd) {
	t.seq++
	t.text = text
	t.visible = true

	seq := t.seq
	return t, tea.Tick(d, func(time.Time) tea.Msg {
		return ToastExpiredMsg{Seq: seq}
	})
}

// Update hides the toast when its expiry arrives.
func (t Toast) Update(msg tea.Msg) (Toast, tea.Cmd) {
	if m, ok := msg.(ToastExpiredMsg); ok && m.Seq == t.seq {
		t.visible = false
	}
	return t, nil
}

// Visible reports whether the toast is showing.
func (t Toast) Visible() bool {
	return t.visible
}

// Text returns the current notification.
func (t Toast) Text() string {
	return t.text
}
