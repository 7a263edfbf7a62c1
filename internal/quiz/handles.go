package quiz

import "github.com/google/uuid"

// Handles is a Renderer that keeps response handles in memory without
// drawing anything. Text-mode renderers embed it.
type Handles struct {
	byID map[ID]Response
}

var _ Renderer = (*Handles)(nil)

// NewHandles creates an empty handle set.
func NewHandles() *Handles {
	return &Handles{byID: make(map[ID]Response)}
}

// Render allocates a fresh identifier and an unanswered handle for q.
func (h *Handles) Render(_ int, q Question) ID {
	id := uuid.New()
	h.byID[id] = q.NewResponse()
	return id
}

func (h *Handles) Response(id ID) (Response, bool) {
	r, ok := h.byID[id]
	return r, ok
}
