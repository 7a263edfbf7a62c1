package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/sam/aiquiz/internal/quiz"
	"github.com/sam/aiquiz/internal/ui/theme"
)

// TextInput wraps bubbles/textinput and mirrors every edit into a
// free-response handle.
type TextInput struct {
	Model    textinput.Model
	Response *quiz.TextResponse
}

// NewTextInput creates an unfocused text input bound to r.
func NewTextInput(placeholder string, limit int, r *quiz.TextResponse) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if limit > 0 {
		ti.CharLimit = limit
	}
	ti.SetValue(r.Text())

	return TextInput{
		Model:    ti,
		Response: r,
	}
}

// Focus gives the input the cursor.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes the cursor.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Update forwards msg to the input and stores the resulting text.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	t.Response.SetText(t.Model.Value())
	return t, cmd
}

// Sync reloads the input from the response, e.g. after a reset.
func (t *TextInput) Sync() {
	t.Model.SetValue(t.Response.Text())
}

// View renders the text input with a focus pointer.
func (t TextInput) View() string {
	if t.Model.Focused() {
		return theme.Focused.Render("▸") + " " + t.Model.View()
	}
	return "  " + t.Model.View()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}
