package quiz

import (
	"charm.land/bubbles/v2/key"

	"github.com/sam/aiquiz/internal/ui/layout"
)

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Choose key.Binding
	Enter  key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("Tab/↓", "Next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("⇧Tab/↑", "Back"),
	),
	Choose: key.NewBinding(
		key.WithKeys("space", " "),
		key.WithHelp("Space", "Pick"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Pick/Submit"),
	),
	Reset: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("Ctrl+R", "Reset"),
	),
	// Quit is handled by the app model; listed for the footer.
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+C", "Quit"),
	),
}

func hints(bindings ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return out
}
