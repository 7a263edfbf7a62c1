package quiz

import (
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	qz "github.com/sam/aiquiz/internal/quiz"
	"github.com/sam/aiquiz/internal/screen"
	"github.com/sam/aiquiz/internal/ui/components"
	"github.com/sam/aiquiz/internal/ui/layout"
)

// answerLimit caps free-response input length.
const answerLimit = 120

// QuizScreen shows every question of a session on one scrolling page,
// followed by a Submit button. It is the session's renderer: it owns the
// response handle of each question and the widget bound to it.
type QuizScreen struct {
	session *qz.Session
	fields  []*field
	byID    map[qz.ID]int
	stops   []stop
	focus   int
	submit  components.Button
	vp      viewport.Model
	offset  int
	log     *zap.Logger
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.ProgressProvider = (*QuizScreen)(nil)
var _ qz.Renderer = (*QuizScreen)(nil)

// field is one rendered question. Only the widget matching the question
// kind is set.
type field struct {
	number   int
	question qz.Question
	response qz.Response
	radio    components.RadioGroup
	checks   components.CheckboxGroup
	input    components.TextInput
}

func (f *field) rows() int {
	switch f.question.Kind() {
	case qz.KindSingleChoice:
		return f.radio.Len()
	case qz.KindMultiSelect:
		return f.checks.Len()
	}
	return 1
}

// stop is one focusable row. field is -1 for the Submit button.
type stop struct {
	field int
	row   int
}

// New creates the screen and a session over questions. A nil logger
// disables logging.
func New(questions []qz.Question, log *zap.Logger) *QuizScreen {
	if log == nil {
		log = zap.NewNop()
	}
	s := &QuizScreen{
		byID: make(map[qz.ID]int, len(questions)),
		vp:   viewport.New(),
		log:  log,
	}
	s.submit = components.NewButton("Submit", s.submitAnswers)
	s.session = qz.NewSession(s, questions...)
	s.stops = append(s.stops, stop{field: -1})
	return s
}

// Render materializes q as a widget and returns the id of its response.
func (s *QuizScreen) Render(number int, q qz.Question) qz.ID {
	f := &field{
		number:   number,
		question: q,
		response: q.NewResponse(),
	}
	switch r := f.response.(type) {
	case *qz.ChoiceResponse:
		f.radio = components.NewRadioGroup(q.Options(), r)
	case *qz.CheckResponse:
		f.checks = components.NewCheckboxGroup(q.Options(), r)
	case *qz.TextResponse:
		f.input = components.NewTextInput("Type your answer...", answerLimit, r)
	}

	id := uuid.New()
	idx := len(s.fields)
	s.byID[id] = idx
	s.fields = append(s.fields, f)
	for row := range f.rows() {
		s.stops = append(s.stops, stop{field: idx, row: row})
	}

	s.log.Debug("question rendered",
		zap.Int("number", number),
		zap.String("kind", string(q.Kind())),
		zap.Stringer("id", id),
	)
	return id
}

// Response returns the handle created by Render for id.
func (s *QuizScreen) Response(id qz.ID) (qz.Response, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return s.fields[idx].response, true
}

// Session returns the session the screen renders.
func (s *QuizScreen) Session() *qz.Session {
	return s.session
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.setFocus(0)
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Progress() (done, total int) {
	return s.session.Answered(), s.session.Total()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	out := hints(keys.Next, keys.Prev)
	f := s.focusedField()
	switch {
	case f == nil:
		out = append(out, layout.KeyHint{Key: keys.Enter.Help().Key, Description: "Submit"})
	case f.question.Kind() == qz.KindFreeResponse:
		out = append(out, layout.KeyHint{Key: keys.Enter.Help().Key, Description: "Next"})
	default:
		out = append(out, hints(keys.Choose)...)
	}
	return append(out, hints(keys.Reset, keys.Quit)...)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		return s.handleKey(kmsg)
	}

	// Cursor blinks and similar go to the focused input.
	if f := s.focusedField(); f != nil && f.question.Kind() == qz.KindFreeResponse {
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Reset):
		s.reset()
		return s, nil
	case key.Matches(msg, keys.Next):
		return s, s.setFocus(s.focus + 1)
	case key.Matches(msg, keys.Prev):
		return s, s.setFocus(s.focus - 1)
	}

	st := s.stops[s.focus]
	if st.field < 0 {
		var cmd tea.Cmd
		s.submit, cmd = s.submit.Update(msg)
		return s, cmd
	}

	f := s.fields[st.field]
	pick := key.Matches(msg, keys.Choose, keys.Enter)
	switch f.question.Kind() {
	case qz.KindSingleChoice:
		if pick {
			f.radio.Choose(st.row)
		}
	case qz.KindMultiSelect:
		if pick {
			f.checks.Toggle(st.row)
		}
	case qz.KindFreeResponse:
		if key.Matches(msg, keys.Enter) {
			return s, s.setFocus(s.focus + 1)
		}
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// setFocus moves focus to stop n, wrapping around at either end.
func (s *QuizScreen) setFocus(n int) tea.Cmd {
	if f := s.focusedField(); f != nil && f.question.Kind() == qz.KindFreeResponse {
		f.input.Blur()
	}

	count := len(s.stops)
	s.focus = ((n % count) + count) % count
	s.submit.Focused = s.stops[s.focus].field < 0

	if f := s.focusedField(); f != nil && f.question.Kind() == qz.KindFreeResponse {
		return f.input.Focus()
	}
	return nil
}

// focusedField returns the field holding focus, or nil on Submit.
func (s *QuizScreen) focusedField() *field {
	st := s.stops[s.focus]
	if st.field < 0 {
		return nil
	}
	return s.fields[st.field]
}

// submitAnswers scores the session, clears every answer and reports the
// score as a notification.
func (s *QuizScreen) submitAnswers() tea.Cmd {
	res := s.session.Grade()
	s.log.Info("quiz submitted",
		zap.Int("correct", res.Correct),
		zap.Int("total", res.Total),
		zap.Bools("questions", res.Questions),
	)
	s.reset()
	return screen.Notify(res.Summary())
}

// reset clears every response and the text inputs showing them.
func (s *QuizScreen) reset() {
	s.session.Reset()
	for _, f := range s.fields {
		if f.question.Kind() == qz.KindFreeResponse {
			f.input.Sync()
		}
	}
	s.log.Debug("responses reset")
}
