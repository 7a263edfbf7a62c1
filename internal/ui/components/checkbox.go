package components

import (
	"strings"

	"github.com/sam/aiquiz/internal/quiz"
	"github.com/sam/aiquiz/internal/ui/theme"
)

// CheckboxGroup shows the options of a multi-select question as
// independent checkboxes.
type CheckboxGroup struct {
	Options  []string
	Response *quiz.CheckResponse

	// Cursor is the focused row, or -1 when the group is not focused.
	Cursor int
}

// NewCheckboxGroup creates a checkbox group bound to r.
func NewCheckboxGroup(options []string, r *quiz.CheckResponse) CheckboxGroup {
	return CheckboxGroup{
		Options:  options,
		Response: r,
		Cursor:   -1,
	}
}

// Len returns the number of rows.
func (g CheckboxGroup) Len() int {
	return len(g.Options)
}

// Toggle flips the checkbox at row.
func (g CheckboxGroup) Toggle(row int) {
	if row < 0 || row >= len(g.Options) {
		return
	}
	g.Response.Toggle(g.Options[row])
}

// View renders one line per option.
func (g CheckboxGroup) View() string {
	lines := make([]string, len(g.Options))
	for i, opt := range g.Options {
		mark := "[ ]"
		if g.Response.Checked(opt) {
			mark = theme.Marked.Render("[x]")
		}
		lines[i] = row(i == g.Cursor, mark, opt)
	}
	return strings.Join(lines, "\n")
}
