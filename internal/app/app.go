package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/sam/aiquiz/internal/screen"
	"github.com/sam/aiquiz/internal/ui/components"
	"github.com/sam/aiquiz/internal/ui/layout"
)

// progressWidth is the width of the header's progress bar.
const progressWidth = 28

// Options configures the program.
type Options struct {
	Screen        screen.Screen
	ToastDuration time.Duration
	Logger        *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	screen        screen.Screen
	toast         components.Toast
	toastDuration time.Duration
	log           *zap.Logger
	width         int
	height        int
}

// newAppModel creates a new AppModel around the given screen.
func newAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return AppModel{
		screen:        opts.Screen,
		toastDuration: opts.ToastDuration,
		log:           log,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.screen.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case screen.NotifyMsg:
		m.log.Debug("notify", zap.String("text", msg.Text))
		var cmd tea.Cmd
		m.toast, cmd = m.toast.Show(msg.Text, m.toastDuration)
		return m, cmd

	case components.ToastExpiredMsg:
		m.toast, _ = m.toast.Update(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.screen, cmd = m.screen.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.screen.Title(), m.progress(), m.width)
	footer := m.footer()

	content := m.screen.View(m.width, layout.ContentHeight(header, footer, m.height))
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) progress() string {
	p, ok := m.screen.(screen.ProgressProvider)
	if !ok {
		return ""
	}
	done, total := p.Progress()
	return components.NewProgressBar("Answered", done, total, progressWidth).View()
}

func (m AppModel) footer() string {
	if m.toast.Visible() {
		return layout.RenderToast(m.toast.Text(), m.width)
	}

	hints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if p, ok := m.screen.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	}
	return layout.RenderFooter(hints, m.width)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
