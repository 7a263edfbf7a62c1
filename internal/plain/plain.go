// Package plain runs a quiz over line-oriented text streams.
package plain

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sam/aiquiz/internal/quiz"
)

// Renderer keeps response handles in memory; questions are drawn when the
// quiz is played.
type Renderer struct {
	*quiz.Handles
}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{Handles: quiz.NewHandles()}
}

// Runner plays a session over a reader and writer.
type Runner struct {
	session *quiz.Session
	scanner *bufio.Scanner
	out     io.Writer
	log     *zap.Logger
}

// NewRunner creates a Runner. A nil logger disables logging.
func NewRunner(s *quiz.Session, in io.Reader, out io.Writer, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		session: s,
		scanner: bufio.NewScanner(in),
		out:     out,
		log:     log,
	}
}

// Run asks every question, prints the score line, resets the session and
// offers another round. It returns the result of the last round played.
// End of input finishes the current round.
func (r *Runner) Run() (quiz.Result, error) {
	var last quiz.Result
	for {
		eof, err := r.round()
		if err != nil {
			return last, err
		}

		last = r.session.Grade()
		r.log.Info("quiz submitted",
			zap.Int("correct", last.Correct),
			zap.Int("total", last.Total),
			zap.Bools("questions", last.Questions),
		)
		fmt.Fprintln(r.out, last.Summary())
		r.session.Reset()

		if eof {
			return last, nil
		}
		fmt.Fprint(r.out, "Play again? (y/N) ")
		line, ok := r.readLine()
		if !ok || !strings.EqualFold(strings.TrimSpace(line), "y") {
			return last, nil
		}
		fmt.Fprintln(r.out)
	}
}

// round asks each question once. eof reports that input ran out.
func (r *Runner) round() (eof bool, err error) {
	for _, e := range r.session.Entries() {
		WriteQuestion(r.out, e)
		resp := r.session.ResponseFor(e)
		for {
			fmt.Fprint(r.out, "> ")
			line, ok := r.readLine()
			if !ok {
				fmt.Fprintln(r.out)
				return true, r.scanner.Err()
			}
			if msg := apply(e.Question, resp, line); msg != "" {
				fmt.Fprintln(r.out, msg)
				continue
			}
			break
		}
		fmt.Fprintln(r.out)
	}
	return false, nil
}

func (r *Runner) readLine() (string, bool) {
	if !r.scanner.Scan() {
		return "", false
	}
	return strings.TrimSuffix(r.scanner.Text(), "\r"), true
}

// apply records line as the answer to q. It returns a retry message when
// the line cannot be understood. A blank line leaves a choice question
// unanswered.
func apply(q quiz.Question, resp quiz.Response, line string) string {
	switch r := resp.(type) {
	case *quiz.TextResponse:
		r.SetText(line)
		return ""

	case *quiz.ChoiceResponse:
		if strings.TrimSpace(line) == "" {
			return ""
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 1 || n > len(q.Options()) {
			return fmt.Sprintf("Enter a number from 1 to %d.", len(q.Options()))
		}
		r.Select(n - 1)
		return ""

	case *quiz.CheckResponse:
		opts := q.Options()
		picked := make([]int, 0, len(opts))
		for _, f := range strings.FieldsFunc(line, func(c rune) bool { return c == ',' || c == ' ' }) {
			n, err := strconv.Atoi(f)
			if err != nil || n < 1 || n > len(opts) {
				return fmt.Sprintf("Enter numbers from 1 to %d, separated by commas.", len(opts))
			}
			picked = append(picked, n-1)
		}
		r.Clear()
		for _, i := range picked {
			r.Set(opts[i], true)
		}
		return ""
	}
	return fmt.Sprintf("unsupported response %T", resp)
}
