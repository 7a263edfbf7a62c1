package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sam/aiquiz/internal/plain"
	"github.com/sam/aiquiz/internal/quiz"
)

var plainCmd = &cobra.Command{
	Use:   "plain",
	Short: "Take the quiz line by line on stdin/stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSetup(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		session := quiz.NewSession(plain.NewRenderer(), s.questions...)
		_, err = plain.NewRunner(session, cmd.InOrStdin(), cmd.OutOrStdout(), s.log).Run()
		return err
	},
}

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the question sheet and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSetup(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		session := quiz.NewSession(plain.NewRenderer(), s.questions...)
		plain.WriteSheet(cmd.OutOrStdout(), session)
		return nil
	},
}
