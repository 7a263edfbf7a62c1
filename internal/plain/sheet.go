package plain

import (
	"fmt"
	"io"

	"github.com/sam/aiquiz/internal/quiz"
)

// hints tell the player how to answer each kind of question.
var hints = map[quiz.Kind]string{
	quiz.KindSingleChoice: "(pick one number)",
	quiz.KindFreeResponse: "(type your answer)",
	quiz.KindMultiSelect:  "(pick all that apply, e.g. 1,3)",
}

// WriteQuestion prints one numbered question with its options.
func WriteQuestion(w io.Writer, e quiz.Entry) {
	fmt.Fprintf(w, "%d. %s %s\n", e.Number, e.Question.Prompt(), hints[e.Question.Kind()])
	for i, opt := range e.Question.Options() {
		fmt.Fprintf(w, "   %d) %s\n", i+1, opt)
	}
}

// WriteSheet prints every question of s, separated by blank lines.
func WriteSheet(w io.Writer, s *quiz.Session) {
	for i, e := range s.Entries() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		WriteQuestion(w, e)
	}
}
