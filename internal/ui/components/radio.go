package components

import (
	"fmt"
	"strings"

	"github.com/sam/aiquiz/internal/quiz"
	"github.com/sam/aiquiz/internal/ui/theme"
)

// RadioGroup shows the options of a single-choice question as radio
// buttons. The chosen option lives in the bound response.
type RadioGroup struct {
	Options  []string
	Response *quiz.ChoiceResponse

	// Cursor is the focused row, or -1 when the group is not focused.
	Cursor int
}

// NewRadioGroup creates a radio group bound to r.
func NewRadioGroup(options []string, r *quiz.ChoiceResponse) RadioGroup {
	return RadioGroup{
		Options:  options,
		Response: r,
		Cursor:   -1,
	}
}

// Len returns the number of rows.
func (g RadioGroup) Len() int {
	return len(g.Options)
}

// Choose selects the option at row, dropping any earlier choice.
func (g RadioGroup) Choose(row int) {
	g.Response.Select(row)
}

// View renders one line per option.
func (g RadioGroup) View() string {
	chosen, ok := g.Response.Selected()

	lines := make([]string, len(g.Options))
	for i, opt := range g.Options {
		mark := "( )"
		if ok && i == chosen {
			mark = theme.Marked.Render("(•)")
		}
		lines[i] = row(i == g.Cursor, mark, opt)
	}
	return strings.Join(lines, "\n")
}

// row renders one selectable line with a focus pointer.
func row(focused bool, mark, label string) string {
	if focused {
		return fmt.Sprintf("%s %s %s", theme.Focused.Render("▸"), mark, theme.Focused.Render(label))
	}
	return fmt.Sprintf("  %s %s", mark, theme.Unfocused.Render(label))
}
