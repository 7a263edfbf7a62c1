package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sam/aiquiz/internal/app"
	quizscreen "github.com/sam/aiquiz/internal/screens/quiz"
)

// runApp builds the quiz screen and launches the TUI.
func runApp(cmd *cobra.Command) error {
	s, err := loadSetup(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	return app.Run(app.Options{
		Screen:        quizscreen.New(s.questions, s.log),
		ToastDuration: s.cfg.ToastDuration,
		Logger:        s.log,
	})
}
