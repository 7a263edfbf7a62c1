package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/sam/aiquiz/internal/quiz"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://aiquiz-config.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// fileConfig is the YAML form of Config. Pointer fields distinguish unset
// from zero.
type fileConfig struct {
	Seed    *uint64 `yaml:"seed"`
	Answers string  `yaml:"answers"`
	Toast   string  `yaml:"toast"`
	Log     struct {
		File  string `yaml:"file"`
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// applyFile validates data against the config schema and overlays the
// fields it sets onto cfg.
func applyFile(cfg *Config, data []byte) error {
	if err := validateDocument(data); err != nil {
		return err
	}

	var fc fileConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parse config: %w", err)
	}

	if fc.Seed != nil {
		cfg.Seed = *fc.Seed
	}
	if fc.Answers != "" {
		cfg.Answers = quiz.AnswerPolicy(fc.Answers)
	}
	if fc.Toast != "" {
		d, err := time.ParseDuration(fc.Toast)
		if err != nil {
			return fmt.Errorf("toast: %w", err)
		}
		cfg.ToastDuration = d
	}
	if fc.Log.File != "" {
		cfg.Log.File = fc.Log.File
	}
	if fc.Log.Level != "" {
		cfg.Log.Level = fc.Log.Level
	}
	return nil
}

// validateDocument checks a YAML document against the embedded JSON Schema.
func validateDocument(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if doc == nil {
		return nil
	}

	// The validator expects JSON values, so round-trip the YAML tree.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("convert config: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("convert config: %w", err)
	}

	schema, err := configSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func configSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(schemaJSON, &def); err != nil {
			schemaErr = fmt.Errorf("parse config schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add config schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
