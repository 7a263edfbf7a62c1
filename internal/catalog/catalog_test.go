package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sam/aiquiz/internal/quiz"
)

func TestBuild(t *testing.T) {
	questions, err := Build(quiz.NewRandomizer(1), quiz.PolicyExact)
	require.NoError(t, err)
	require.Len(t, questions, Len())

	for i, q := range questions {
		d := definitions[i]
		assert.Equal(t, d.kind, q.Kind(), "question %d", i+1)
		assert.Equal(t, d.prompt, q.Prompt(), "question %d", i+1)
		if d.kind != quiz.KindFreeResponse {
			assert.ElementsMatch(t, append(append([]string{}, d.answers...), d.distractors...), q.Options(),
				"question %d", i+1)
		}
	}
}

func TestBuild_AppliesPolicy(t *testing.T) {
	questions, err := Build(quiz.NewRandomizer(1), quiz.PolicyTrim)
	require.NoError(t, err)

	first, ok := questions[0].(*quiz.FreeResponse)
	require.True(t, ok, "first question is free-response")
	assert.Equal(t, quiz.PolicyTrim, first.Policy())
	assert.True(t, first.GradeText(" Alan "))
}

func TestBuild_SeedDeterminesOrder(t *testing.T) {
	a, err := Build(quiz.NewRandomizer(8), quiz.PolicyExact)
	require.NoError(t, err)
	b, err := Build(quiz.NewRandomizer(8), quiz.PolicyExact)
	require.NoError(t, err)

	for i := range a {
		assert.Equal(t, a[i].Options(), b[i].Options(), "question %d", i+1)
	}
}

func TestBuild_InvalidDefinitions(t *testing.T) {
	tests := []struct {
		name string
		def  definition
	}{
		{"single choice without answer", definition{kind: quiz.KindSingleChoice, prompt: "Q"}},
		{"free response with two answers", definition{kind: quiz.KindFreeResponse, prompt: "Q", answers: []string{"a", "b"}}},
		{"overlapping multi select", definition{kind: quiz.KindMultiSelect, prompt: "Q", answers: []string{"a"}, distractors: []string{"a"}}},
		{"unknown kind", definition{kind: "essay", prompt: "Q", answers: []string{"a"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := build([]definition{tt.def}, quiz.NewRandomizer(1), quiz.PolicyExact)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "question 1")
		})
	}
}

func TestBuiltinQuizAllCorrect(t *testing.T) {
	questions, err := Build(quiz.NewRandomizer(3), quiz.PolicyExact)
	require.NoError(t, err)
	s := quiz.NewSession(quiz.NewHandles(), questions...)

	for i, e := range s.Entries() {
		d := definitions[i]
		switch r := s.ResponseFor(e).(type) {
		case *quiz.ChoiceResponse:
			for j, opt := range e.Question.Options() {
				if opt == d.answers[0] {
					r.Select(j)
				}
			}
		case *quiz.TextResponse:
			r.SetText(d.answers[0])
		case *quiz.CheckResponse:
			for _, a := range d.answers {
				r.Set(a, true)
			}
		}
	}

	assert.Equal(t, "6/6 correct.", s.Grade().Summary())
	s.Reset()
	assert.Equal(t, "0/6 correct.", s.Grade().Summary())
}
