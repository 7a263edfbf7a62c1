package quiz

import (
	"fmt"
	"strings"
)

// AnswerPolicy controls whitespace handling when free-response answers are
// compared.
type AnswerPolicy string

const (
	// PolicyExact compares the typed text as-is, apart from case.
	PolicyExact AnswerPolicy = "exact"

	// PolicyTrim strips leading and trailing whitespace before comparing.
	PolicyTrim AnswerPolicy = "trim"
)

// ParseAnswerPolicy parses "exact" or "trim". The empty string maps to
// PolicyExact.
func ParseAnswerPolicy(s string) (AnswerPolicy, error) {
	switch AnswerPolicy(strings.ToLower(s)) {
	case "", PolicyExact:
		return PolicyExact, nil
	case PolicyTrim:
		return PolicyTrim, nil
	}
	return "", fmt.Errorf("unknown answer policy %q: must be exact or trim", s)
}

// FreeResponse is a question answered by typing text.
type FreeResponse struct {
	prompt string
	answer string
	policy AnswerPolicy
}

var _ Question = (*FreeResponse)(nil)

// NewFreeResponse builds a free-response question graded under policy.
func NewFreeResponse(prompt, answer string, policy AnswerPolicy) (*FreeResponse, error) {
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}
	if answer == "" {
		return nil, ErrEmptyAnswer
	}
	if policy == "" {
		policy = PolicyExact
	}
	return &FreeResponse{prompt: prompt, answer: answer, policy: policy}, nil
}

func (q *FreeResponse) Kind() Kind            { return KindFreeResponse }
func (q *FreeResponse) Prompt() string        { return q.prompt }
func (q *FreeResponse) Options() []string     { return nil }
func (q *FreeResponse) Policy() AnswerPolicy  { return q.policy }
func (q *FreeResponse) NewResponse() Response { return &TextResponse{} }
func (q *FreeResponse) sealed()               {}

// GradeText reports whether text matches the answer, ignoring case.
func (q *FreeResponse) GradeText(text string) bool {
	answer := q.answer
	if q.policy == PolicyTrim {
		text = strings.TrimSpace(text)
		answer = strings.TrimSpace(answer)
	}
	return strings.EqualFold(text, answer)
}

func (q *FreeResponse) Grade(r Response) bool {
	t, ok := r.(*TextResponse)
	if !ok || t == nil {
		return false
	}
	return q.GradeText(t.Text())
}
