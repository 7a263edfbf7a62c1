package quiz

// Response is the mutable answer cell of one question. The zero state of
// every handle is "unanswered".
type Response interface {
	// Kind returns the variant of question this handle answers.
	Kind() Kind

	// Answered reports whether the handle holds a non-empty answer.
	Answered() bool

	// Clear returns the handle to its unanswered state.
	Clear()
}

// ChoiceResponse holds the selected option of a single-choice question.
type ChoiceResponse struct {
	size     int
	index    int
	selected bool
}

func (c *ChoiceResponse) Kind() Kind     { return KindSingleChoice }
func (c *ChoiceResponse) Answered() bool { return c.selected }

// Select marks the option at index as chosen. Out-of-range indexes are
// ignored.
func (c *ChoiceResponse) Select(index int) {
	if index < 0 || index >= c.size {
		return
	}
	c.index = index
	c.selected = true
}

// Selected returns the chosen option index; ok is false when nothing is
// selected.
func (c *ChoiceResponse) Selected() (index int, ok bool) {
	if !c.selected {
		return -1, false
	}
	return c.index, true
}

func (c *ChoiceResponse) Clear() {
	c.index = 0
	c.selected = false
}

// TextResponse holds the typed answer of a free-response question.
type TextResponse struct {
	text string
}

func (t *TextResponse) Kind() Kind          { return KindFreeResponse }
func (t *TextResponse) Answered() bool      { return t.text != "" }
func (t *TextResponse) Text() string        { return t.text }
func (t *TextResponse) SetText(text string) { t.text = text }
func (t *TextResponse) Clear()              { t.text = "" }

// CheckResponse holds the checked state of every option of a multi-select
// question, keyed by option text.
type CheckResponse struct {
	options []string
	checked map[string]bool
}

func newCheckResponse(options []string) *CheckResponse {
	c := &CheckResponse{
		options: copyStrings(options),
		checked: make(map[string]bool, len(options)),
	}
	for _, o := range options {
		c.checked[o] = false
	}
	return c
}

func (c *CheckResponse) Kind() Kind { return KindMultiSelect }

func (c *CheckResponse) Answered() bool {
	for _, on := range c.checked {
		if on {
			return true
		}
	}
	return false
}

// Set checks or unchecks option. Texts that are not options are ignored.
func (c *CheckResponse) Set(option string, on bool) {
	if _, ok := c.checked[option]; !ok {
		return
	}
	c.checked[option] = on
}

// Toggle flips the checked state of option.
func (c *CheckResponse) Toggle(option string) {
	c.Set(option, !c.checked[option])
}

// Checked reports whether option is checked.
func (c *CheckResponse) Checked(option string) bool {
	return c.checked[option]
}

// CheckedOptions returns the checked options in display order.
func (c *CheckResponse) CheckedOptions() []string {
	var out []string
	for _, o := range c.options {
		if c.checked[o] {
			out = append(out, o)
		}
	}
	return out
}

func (c *CheckResponse) Clear() {
	for o := range c.checked {
		c.checked[o] = false
	}
}
