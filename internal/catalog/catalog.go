// Package catalog holds the built-in quiz questions.
package catalog

import (
	"fmt"

	"github.com/sam/aiquiz/internal/quiz"
)

// definition is the source form of one question. For single-choice
// questions answers holds exactly one entry.
type definition struct {
	kind        quiz.Kind
	prompt      string
	answers     []string
	distractors []string
}

// definitions lists the questions in display order.
var definitions = []definition{
	{
		kind:    quiz.KindFreeResponse,
		prompt:  "What is the first name of the creator of the Turing Test?",
		answers: []string{"alan"},
	},
	{
		kind:        quiz.KindSingleChoice,
		prompt:      "Which of the following games has AI not beaten the best human player?",
		answers:     []string{"Nothing"},
		distractors: []string{"Chess", "Checkers", "Go"},
	},
	{
		kind:        quiz.KindMultiSelect,
		prompt:      "Which of the following companies formed a non-profit partnership together focusing on AI?",
		answers:     []string{"Amazon", "Google", "Facebook", "IBM", "Microsoft"},
		distractors: []string{"Dell", "Apple", "Intel"},
	},
	{
		kind:        quiz.KindSingleChoice,
		prompt:      "Which of the following books features an AI named HAL-9000?",
		answers:     []string{"2001: A Space Odyssey"},
		distractors: []string{"Do Androids Dream of Electric Sheep?", "Robot", "There Will Come Soft Rains"},
	},
	{
		kind:    quiz.KindFreeResponse,
		prompt:  "What is the name of the AI that beat the No. 1 ranked Go player of all time?",
		answers: []string{"AlphaGo"},
	},
	{
		kind:        quiz.KindMultiSelect,
		prompt:      "Who in the following has expressed their concern for an AI future?",
		answers:     []string{"Barack Obama", "Elon Musk", "Bill Gates"},
		distractors: []string{"Mark Zuckerberg", "John Cena"},
	},
}

// Len returns the number of built-in questions.
func Len() int {
	return len(definitions)
}

// Build constructs the built-in questions in display order. Option order
// is drawn from rnd; free-response answers are compared under policy.
func Build(rnd *quiz.Randomizer, policy quiz.AnswerPolicy) ([]quiz.Question, error) {
	return build(definitions, rnd, policy)
}

func build(defs []definition, rnd *quiz.Randomizer, policy quiz.AnswerPolicy) ([]quiz.Question, error) {
	questions := make([]quiz.Question, 0, len(defs))
	for i, d := range defs {
		q, err := d.question(rnd, policy)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (d definition) question(rnd *quiz.Randomizer, policy quiz.AnswerPolicy) (quiz.Question, error) {
	switch d.kind {
	case quiz.KindSingleChoice:
		if len(d.answers) != 1 {
			return nil, fmt.Errorf("single-choice question needs exactly one answer, got %d", len(d.answers))
		}
		return quiz.NewSingleChoice(rnd, d.prompt, d.answers[0], d.distractors...)
	case quiz.KindFreeResponse:
		if len(d.answers) != 1 {
			return nil, fmt.Errorf("free-response question needs exactly one answer, got %d", len(d.answers))
		}
		return quiz.NewFreeResponse(d.prompt, d.answers[0], policy)
	case quiz.KindMultiSelect:
		return quiz.NewMultiSelect(rnd, d.prompt, d.answers, d.distractors)
	}
	return nil, fmt.Errorf("unknown question kind %q", d.kind)
}
