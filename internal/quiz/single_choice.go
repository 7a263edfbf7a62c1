package quiz

// SingleChoice is a question with exactly one correct option among
// distractors. Correctness is tracked by option identity, so two options
// with the same text are still distinct.
type SingleChoice struct {
	prompt  string
	options []string
	correct int
}

var _ Question = (*SingleChoice)(nil)

// NewSingleChoice builds a single-choice question. The correct option and
// distractors are shuffled together by rnd. Zero distractors is allowed.
func NewSingleChoice(rnd *Randomizer, prompt, correct string, distractors ...string) (*SingleChoice, error) {
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}
	if correct == "" {
		return nil, ErrEmptyAnswer
	}
	for _, d := range distractors {
		if d == "" {
			return nil, ErrEmptyOption
		}
	}

	// pool[0] is the correct option.
	pool := make([]string, 0, len(distractors)+1)
	pool = append(pool, correct)
	pool = append(pool, distractors...)

	q := &SingleChoice{
		prompt:  prompt,
		options: make([]string, len(pool)),
	}
	for pos, src := range rnd.Perm(len(pool)) {
		q.options[pos] = pool[src]
		if src == 0 {
			q.correct = pos
		}
	}
	return q, nil
}

func (q *SingleChoice) Kind() Kind        { return KindSingleChoice }
func (q *SingleChoice) Prompt() string    { return q.prompt }
func (q *SingleChoice) Options() []string { return copyStrings(q.options) }
func (q *SingleChoice) sealed()           {}

// NewResponse returns an empty *ChoiceResponse sized to the options.
func (q *SingleChoice) NewResponse() Response {
	return &ChoiceResponse{size: len(q.options)}
}

// GradeOption reports whether the option at index is the correct one.
// ok is false when nothing is selected.
func (q *SingleChoice) GradeOption(index int, ok bool) bool {
	return ok && index == q.correct
}

// GradeText compares text with the correct option, case-sensitively.
func (q *SingleChoice) GradeText(text string) bool {
	return text == q.options[q.correct]
}

func (q *SingleChoice) Grade(r Response) bool {
	c, ok := r.(*ChoiceResponse)
	if !ok || c == nil {
		return false
	}
	return q.GradeOption(c.Selected())
}
