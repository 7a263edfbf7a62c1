package quiz

import (
	"fmt"

	"github.com/google/uuid"
)

// ID identifies the response handle of one rendered question.
type ID = uuid.UUID

// Renderer materializes questions into something a user can answer and
// owns the resulting response handles.
type Renderer interface {
	// Render materializes q as the number-th question (1-based) and returns
	// the identifier of its response handle.
	Render(number int, q Question) ID

	// Response looks up a handle previously returned by Render.
	Response(id ID) (Response, bool)
}

// Entry is one registered question.
type Entry struct {
	Number   int
	Question Question
	ID       ID
}

// InvariantError reports a registered question whose response handle the
// renderer cannot find. It is raised as a panic: it only happens when
// construction and scoring disagree on the question set.
type InvariantError struct {
	Number int
	ID     ID
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("quiz: no response bound to question %d (id %s)", e.Number, e.ID)
}

// Result is the outcome of grading a session.
type Result struct {
	Correct int
	Total   int

	// Questions holds the per-question outcome in registration order.
	Questions []bool
}

// Summary returns the user-facing score line.
func (r Result) Summary() string {
	return FormatSummary(r.Correct, r.Total)
}

// FormatSummary formats a score as "<correct>/<total> correct.".
func FormatSummary(correct, total int) string {
	return fmt.Sprintf("%d/%d correct.", correct, total)
}

// Session owns the ordered question registry and grades the responses the
// renderer holds for it. A session is always live: it can be scored or
// reset at any time.
type Session struct {
	renderer Renderer
	entries  []Entry
}

// NewSession creates a session over r and registers questions in order.
func NewSession(r Renderer, questions ...Question) *Session {
	s := &Session{
		renderer: r,
		entries:  make([]Entry, 0, len(questions)),
	}
	for _, q := range questions {
		s.Register(q)
	}
	return s
}

// Register renders q as the next question and records its identifier.
func (s *Session) Register(q Question) Entry {
	number := len(s.entries) + 1
	e := Entry{
		Number:   number,
		Question: q,
		ID:       s.renderer.Render(number, q),
	}
	s.entries = append(s.entries, e)
	return e
}

// Entries returns the registered questions in order.
func (s *Session) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Total returns the number of registered questions.
func (s *Session) Total() int {
	return len(s.entries)
}

// ResponseFor returns the handle bound to e. It panics with an
// *InvariantError if the renderer has no handle for it.
func (s *Session) ResponseFor(e Entry) Response {
	r, ok := s.renderer.Response(e.ID)
	if !ok || r == nil {
		panic(&InvariantError{Number: e.Number, ID: e.ID})
	}
	return r
}

// Grade grades every question against its current response.
func (s *Session) Grade() Result {
	res := Result{
		Total:     len(s.entries),
		Questions: make([]bool, len(s.entries)),
	}
	for i, e := range s.entries {
		if e.Question.Grade(s.ResponseFor(e)) {
			res.Correct++
			res.Questions[i] = true
		}
	}
	return res
}

// Score returns the number of correctly answered questions.
func (s *Session) Score() int {
	return s.Grade().Correct
}

// Answered returns the number of questions with a non-empty response.
func (s *Session) Answered() int {
	n := 0
	for _, e := range s.entries {
		if s.ResponseFor(e).Answered() {
			n++
		}
	}
	return n
}

// Reset clears every response back to unanswered. Questions and their
// identifiers are kept.
func (s *Session) Reset() {
	for _, e := range s.entries {
		s.ResponseFor(e).Clear()
	}
}
