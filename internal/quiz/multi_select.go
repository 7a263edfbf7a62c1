package quiz

import "fmt"

// MultiSelect is a question where every correct option must be checked and
// no distractor may be. There is no partial credit.
type MultiSelect struct {
	prompt  string
	options []string
	correct map[string]bool
}

var _ Question = (*MultiSelect)(nil)

// NewMultiSelect builds a multi-select question. correct and distractors
// must be disjoint and free of duplicates; both are shuffled together by
// rnd.
func NewMultiSelect(rnd *Randomizer, prompt string, correct, distractors []string) (*MultiSelect, error) {
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}
	if len(correct) == 0 {
		return nil, ErrNoCorrectOptions
	}

	q := &MultiSelect{
		prompt:  prompt,
		correct: make(map[string]bool, len(correct)),
	}

	seen := make(map[string]bool, len(correct)+len(distractors))
	pool := make([]string, 0, len(correct)+len(distractors))
	for i, text := range append(copyStrings(correct), distractors...) {
		if text == "" {
			return nil, ErrEmptyOption
		}
		if seen[text] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateOption, text)
		}
		seen[text] = true
		pool = append(pool, text)
		if i < len(correct) {
			q.correct[text] = true
		}
	}

	q.options = make([]string, len(pool))
	for pos, src := range rnd.Perm(len(pool)) {
		q.options[pos] = pool[src]
	}
	return q, nil
}

func (q *MultiSelect) Kind() Kind        { return KindMultiSelect }
func (q *MultiSelect) Prompt() string    { return q.prompt }
func (q *MultiSelect) Options() []string { return copyStrings(q.options) }
func (q *MultiSelect) sealed()           {}

// NewResponse returns a *CheckResponse with every option unchecked.
func (q *MultiSelect) NewResponse() Response {
	return newCheckResponse(q.options)
}

// GradeSet reports whether the options marked true in checked are exactly
// the correct options.
func (q *MultiSelect) GradeSet(checked map[string]bool) bool {
	n := 0
	for text, on := range checked {
		if !on {
			continue
		}
		if !q.correct[text] {
			return false
		}
		n++
	}
	return n == len(q.correct)
}

func (q *MultiSelect) Grade(r Response) bool {
	c, ok := r.(*CheckResponse)
	if !ok || c == nil {
		return q.GradeSet(nil)
	}
	return q.GradeSet(c.checked)
}
