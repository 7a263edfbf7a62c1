package components

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sam/aiquiz/internal/quiz"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestRadioGroup_ChooseReplaces(t *testing.T) {
	q, err := quiz.NewSingleChoice(quiz.NewRandomizer(1), "Pick", "a", "b", "c")
	require.NoError(t, err)
	r := q.NewResponse().(*quiz.ChoiceResponse)
	g := NewRadioGroup(q.Options(), r)

	assert.Equal(t, 3, g.Len())
	assert.Equal(t, -1, g.Cursor)
	assert.NotContains(t, g.View(), "(•)")

	g.Choose(0)
	g.Choose(2)
	idx, ok := r.Selected()
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	view := g.View()
	assert.Equal(t, 1, strings.Count(view, "(•)"))
	assert.Equal(t, 3, strings.Count(view, "\n")+1)
}

func TestRadioGroup_CursorMarksRow(t *testing.T) {
	r := (&quiz.ChoiceResponse{})
	g := NewRadioGroup([]string{"x", "y"}, r)
	g.Cursor = 1

	lines := strings.Split(g.View(), "\n")
	require.Len(t, lines, 2)
	assert.NotContains(t, lines[0], "▸")
	assert.Contains(t, lines[1], "▸")
}

func TestCheckboxGroup_Toggle(t *testing.T) {
	q, err := quiz.NewMultiSelect(quiz.NewRandomizer(1), "Pick", []string{"a", "b"}, []string{"c"})
	require.NoError(t, err)
	r := q.NewResponse().(*quiz.CheckResponse)
	g := NewCheckboxGroup(q.Options(), r)

	g.Toggle(0)
	g.Toggle(1)
	g.Toggle(1)
	g.Toggle(7)

	assert.Equal(t, []string{q.Options()[0]}, r.CheckedOptions())
	assert.Equal(t, 1, strings.Count(g.View(), "[x]"))
	assert.Equal(t, 2, strings.Count(g.View(), "[ ]"))
}

func TestTextInput_MirrorsResponse(t *testing.T) {
	r := &quiz.TextResponse{}
	in := NewTextInput("Type your answer...", 40, r)
	in.Focus()

	in, _ = in.Update(keyPress('a'))
	in, _ = in.Update(keyPress('l'))
	assert.Equal(t, "al", in.Value())
	assert.Equal(t, "al", r.Text())

	r.Clear()
	in.Sync()
	assert.Equal(t, "", in.Value())
}

func TestTextInput_FocusPointer(t *testing.T) {
	in := NewTextInput("", 0, &quiz.TextResponse{})
	assert.NotContains(t, in.View(), "▸")
	in.Focus()
	assert.Contains(t, in.View(), "▸")
	in.Blur()
	assert.NotContains(t, in.View(), "▸")
}

func TestButton_PressOnlyWhenFocused(t *testing.T) {
	pressed := 0
	b := NewButton("Submit", func() tea.Cmd {
		pressed++
		return nil
	})

	enter := tea.KeyPressMsg{Code: tea.KeyEnter}
	b, _ = b.Update(enter)
	assert.Equal(t, 0, pressed)

	b.Focused = true
	b, _ = b.Update(enter)
	b, _ = b.Update(keyPress('x'))
	assert.Equal(t, 1, pressed)
	assert.Contains(t, b.View(), "Submit")
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 6, 0},
		{3, 6, 0.5},
		{6, 6, 1},
		{9, 6, 1},
		{1, 0, 0},
	}
	for _, tt := range tests {
		p := NewProgressBar("Answered", tt.done, tt.total, 30)
		assert.InDelta(t, tt.want, p.Fraction(), 1e-9)
	}

	view := NewProgressBar("Answered", 2, 6, 30).View()
	assert.Contains(t, view, "Answered")
	assert.Contains(t, view, "2/6")
}

func TestToast_Expiry(t *testing.T) {
	var toast Toast
	assert.False(t, toast.Visible())

	toast, cmd := toast.Show("1/3 correct.", time.Millisecond)
	require.NotNil(t, cmd)
	assert.True(t, toast.Visible())
	assert.Equal(t, "1/3 correct.", toast.Text())

	msg := cmd()
	expired, ok := msg.(ToastExpiredMsg)
	require.True(t, ok)

	toast, _ = toast.Show("2/3 correct.", time.Millisecond)
	toast, _ = toast.Update(expired)
	assert.True(t, toast.Visible(), "stale expiry must not hide a newer toast")

	toast, _ = toast.Update(ToastExpiredMsg{Seq: toast.seq})
	assert.False(t, toast.Visible())
}
