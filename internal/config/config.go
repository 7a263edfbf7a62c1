package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/sam/aiquiz/internal/quiz"
)

// DefaultToastDuration matches a long platform toast.
const DefaultToastDuration = 3500 * time.Millisecond

// Config holds all application settings.
type Config struct {
	// Seed seeds option shuffling. Zero means a time-based seed.
	Seed uint64

	// Answers is the whitespace policy for free-response answers.
	// Default: exact.
	Answers quiz.AnswerPolicy

	// ToastDuration is how long the score notification stays visible.
	ToastDuration time.Duration

	Log LogConfig
}

// LogConfig configures the file logger.
type LogConfig struct {
	// File is the log file path. Empty disables logging; the terminal UI
	// owns stdout and stderr.
	File string

	// Level is one of debug, info, warn, error. Default: info.
	Level string
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Answers:       quiz.PolicyExact,
		ToastDuration: DefaultToastDuration,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path and then
// with environment variables. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := applyFile(&cfg, data); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// PathFromEnv returns the config file named by AIQUIZ_CONFIG, if any.
func PathFromEnv() string {
	return os.Getenv("AIQUIZ_CONFIG")
}

// ApplyEnv overrides fields from AIQUIZ_* environment variables.
func (c *Config) ApplyEnv() error {
	if s := os.Getenv("AIQUIZ_SEED"); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("AIQUIZ_SEED: %w", err)
		}
		c.Seed = seed
	}
	if a := os.Getenv("AIQUIZ_ANSWERS"); a != "" {
		c.Answers = quiz.AnswerPolicy(a)
	}
	if d := os.Getenv("AIQUIZ_TOAST"); d != "" {
		dur, err := time.ParseDuration(d)
		if err != nil {
			return fmt.Errorf("AIQUIZ_TOAST: %w", err)
		}
		c.ToastDuration = dur
	}
	if f := os.Getenv("AIQUIZ_LOG_FILE"); f != "" {
		c.Log.File = f
	}
	if l := os.Getenv("AIQUIZ_LOG_LEVEL"); l != "" {
		c.Log.Level = l
	}
	return nil
}

// Validate checks field values and normalizes the answer policy.
func (c *Config) Validate() error {
	var errs []error

	policy, err := quiz.ParseAnswerPolicy(string(c.Answers))
	if err != nil {
		errs = append(errs, err)
	} else {
		c.Answers = policy
	}

	if c.ToastDuration <= 0 {
		errs = append(errs, fmt.Errorf("toast duration must be positive, got %s", c.ToastDuration))
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}

	return errors.Join(errs...)
}

// EffectiveSeed returns Seed, or a seed derived from now when Seed is zero.
func (c Config) EffectiveSeed(now time.Time) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(now.UnixNano())
}
