package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sam/aiquiz/internal/quiz"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aiquiz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, quiz.PolicyExact, cfg.Answers)
	assert.Equal(t, 3500*time.Millisecond, cfg.ToastDuration)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	require.NoError(t, cfg.Validate())
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
seed: 42
answers: trim
toast: 2s
log:
  file: /tmp/aiquiz.log
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, quiz.PolicyTrim, cfg.Answers)
	assert.Equal(t, 2*time.Second, cfg.ToastDuration)
	assert.Equal(t, "/tmp/aiquiz.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "answers: trim\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, quiz.PolicyTrim, cfg.Answers)
	assert.Equal(t, DefaultToastDuration, cfg.ToastDuration)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "colour: red\n"},
		{"unknown policy", "answers: fuzzy\n"},
		{"negative seed", "seed: -1\n"},
		{"seed as string", "seed: abc\n"},
		{"unknown log key", "log:\n  path: x\n"},
		{"bad log level", "log:\n  level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestLoad_BadToastDuration(t *testing.T) {
	_, err := Load(writeConfig(t, "toast: soon\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "toast")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("AIQUIZ_SEED", "7")
	t.Setenv("AIQUIZ_ANSWERS", "trim")
	t.Setenv("AIQUIZ_TOAST", "1500ms")
	t.Setenv("AIQUIZ_LOG_FILE", "quiz.log")
	t.Setenv("AIQUIZ_LOG_LEVEL", "warn")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, quiz.PolicyTrim, cfg.Answers)
	assert.Equal(t, 1500*time.Millisecond, cfg.ToastDuration)
	assert.Equal(t, "quiz.log", cfg.Log.File)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestApplyEnv_OverridesFile(t *testing.T) {
	t.Setenv("AIQUIZ_SEED", "9")
	cfg, err := Load(writeConfig(t, "seed: 42\n"))
	require.NoError(t, err)
	assert.Equal(t, uint64(9), cfg.Seed)
}

func TestApplyEnv_Invalid(t *testing.T) {
	t.Setenv("AIQUIZ_SEED", "minus one")
	cfg := Default()
	assert.Error(t, cfg.ApplyEnv())

	t.Setenv("AIQUIZ_SEED", "")
	t.Setenv("AIQUIZ_TOAST", "forever")
	assert.Error(t, cfg.ApplyEnv())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"upper-case policy is normalized", func(c *Config) { c.Answers = "TRIM" }, ""},
		{"unknown policy", func(c *Config) { c.Answers = "fuzzy" }, "answer policy"},
		{"zero toast", func(c *Config) { c.ToastDuration = 0 }, "toast duration"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	cfg := Default()
	cfg.Answers = "TRIM"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, quiz.PolicyTrim, cfg.Answers)
}

func TestEffectiveSeed(t *testing.T) {
	now := time.Unix(0, 123456789)

	cfg := Default()
	assert.Equal(t, uint64(123456789), cfg.EffectiveSeed(now))

	cfg.Seed = 5
	assert.Equal(t, uint64(5), cfg.EffectiveSeed(now))
}
