package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sam/aiquiz/internal/catalog"
	"github.com/sam/aiquiz/internal/config"
	"github.com/sam/aiquiz/internal/logging"
	"github.com/sam/aiquiz/internal/quiz"
)

// setup is what every command needs before it can show a quiz.
type setup struct {
	cfg       config.Config
	log       *zap.Logger
	questions []quiz.Question
}

// loadSetup resolves configuration (defaults, file, env, flags), opens the
// logger and builds the question set.
func loadSetup(cmd *cobra.Command) (*setup, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	seed := cfg.EffectiveSeed(time.Now())
	questions, err := catalog.Build(quiz.NewRandomizer(seed), cfg.Answers)
	if err != nil {
		return nil, fmt.Errorf("build questions: %w", err)
	}

	log.Info("starting",
		zap.String("command", cmd.Name()),
		zap.Uint64("seed", seed),
		zap.String("answers", string(cfg.Answers)),
		zap.Int("questions", len(questions)),
	)

	return &setup{
		cfg:       cfg,
		log:       log,
		questions: questions,
	}, nil
}

// resolveConfig loads the config file named by --config (or
// AIQUIZ_CONFIG), applies flags set on the command line and validates the
// result.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	if path == "" {
		path = config.PathFromEnv()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("answers") {
		a, _ := flags.GetString("answers")
		cfg.Answers = quiz.AnswerPolicy(a)
	}
	if flags.Changed("log-file") {
		cfg.Log.File, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (s *setup) close() {
	_ = s.log.Sync()
}
