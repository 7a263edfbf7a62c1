package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:   "aiquiz",
	Short: "AI trivia quiz",
	Long:  "aiquiz runs a single-page terminal quiz about artificial intelligence.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addConfigFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(plainCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
}

// addConfigFlags registers the flags that override config values.
func addConfigFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "Path to a YAML config file (overrides AIQUIZ_CONFIG env var)")
	flags.Uint64("seed", 0, "Seed for option shuffling; 0 picks one from the clock")
	flags.String("answers", "", "Free-response matching: exact or trim")
	flags.String("log-file", "", "Write logs to this file")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
}
