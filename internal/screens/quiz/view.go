package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/sam/aiquiz/internal/quiz"
	"github.com/sam/aiquiz/internal/ui/theme"
)

var kindHints = map[qz.Kind]string{
	qz.KindSingleChoice: "Choose one",
	qz.KindFreeResponse: "Type your answer",
	qz.KindMultiSelect:  "Choose all that apply",
}

// View renders the question list in a viewport scrolled to keep the
// focused row visible.
func (s *QuizScreen) View(width, height int) string {
	content, top, bottom := s.renderList(width)

	s.offset = scrollTo(s.offset, top, bottom, height)

	s.vp.SetWidth(width)
	s.vp.SetHeight(height)
	s.vp.SetContent(content)
	s.vp.SetYOffset(s.offset)
	return s.vp.View()
}

// renderList renders every field and the Submit button. top and bottom
// are the first and last content lines that must be visible for the
// focused stop.
func (s *QuizScreen) renderList(width int) (content string, top, bottom int) {
	var b strings.Builder
	line := func() int { return strings.Count(b.String(), "\n") }

	focused := s.stops[s.focus]
	inner := max(width-4, 10)

	promptStyle := theme.Prompt.Width(inner)
	divider := theme.Divider.Render(strings.Repeat("─", inner))

	for i, f := range s.fields {
		headTop := line()
		b.WriteString(promptStyle.Render(fmt.Sprintf("%d. %s", f.number, f.question.Prompt())))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(kindHints[f.question.Kind()]))
		b.WriteString("\n")
		b.WriteString(divider)
		b.WriteString("\n")

		cursor := -1
		if focused.field == i {
			cursor = focused.row
			top, bottom = line()+cursor, line()+cursor
			if cursor == 0 {
				top = headTop
			}
		}

		switch f.question.Kind() {
		case qz.KindSingleChoice:
			f.radio.Cursor = cursor
			b.WriteString(f.radio.View())
		case qz.KindMultiSelect:
			f.checks.Cursor = cursor
			b.WriteString(f.checks.View())
		case qz.KindFreeResponse:
			b.WriteString(f.input.View())
		}
		b.WriteString("\n\n")
	}

	button := s.submit.View()
	if focused.field < 0 {
		top = line()
		bottom = top + lipgloss.Height(button) - 1
	}
	b.WriteString(button)

	return b.String(), top, bottom
}

// scrollTo returns the smallest change to offset that shows lines top
// through bottom in a window of height lines.
func scrollTo(offset, top, bottom, height int) int {
	if height <= 0 {
		return 0
	}
	if bottom >= offset+height {
		offset = bottom - height + 1
	}
	if top < offset {
		offset = top
	}
	return max(offset, 0)
}
