package quiz

import "errors"

// Kind identifies a question variant.
type Kind string

const (
	KindSingleChoice Kind = "single_choice"
	KindFreeResponse Kind = "free_response"
	KindMultiSelect  Kind = "multi_select"
)

// Construction errors.
var (
	ErrEmptyPrompt      = errors.New("question prompt is empty")
	ErrEmptyAnswer      = errors.New("correct answer is empty")
	ErrEmptyOption      = errors.New("option text is empty")
	ErrNoCorrectOptions = errors.New("no correct options given")
	ErrDuplicateOption  = errors.New("duplicate option")
)

// Question is an immutable quiz question together with its grading rule.
//
// The set of implementations is closed: *SingleChoice, *FreeResponse and
// *MultiSelect.
type Question interface {
	// Kind returns the variant tag.
	Kind() Kind

	// Prompt returns the question text, without numbering.
	Prompt() string

	// Options returns the displayable options in their shuffled display
	// order. Free-response questions have none.
	Options() []string

	// NewResponse returns an unanswered response handle shaped for this
	// question. Renderers own the handles they create.
	NewResponse() Response

	// Grade reports whether r holds a correct answer. A nil handle, or a
	// handle of another variant, grades as unanswered.
	Grade(r Response) bool

	sealed()
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
