package config

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
)

const (
	HoverMarkdown  = "markdown"
	HoverPlainText = "plaintext"
)

type Config struct {
	// MaxNumberOfProblems caps the diagnostics published per document; zero or
	// less disables the cap.
	MaxNumberOfProblems int      `json:"maxNumberOfProblems"`
	HoverFormat         string   `json:"hoverFormat"`
	FileExtensions      []string `json:"fileExtensions"` // only for check!
}

var defaultConfig = Config{
	MaxNumberOfProblems: 1000,
	HoverFormat:         HoverMarkdown,
	FileExtensions:      []string{".cycle"},
}

// Default returns a copy of the built-in configuration.
func Default() Config {
	cfg := defaultConfig
	cfg.FileExtensions = slices.Clone(defaultConfig.FileExtensions)
	return cfg
}

// Load overlays v, typically the LSP initializationOptions, on the defaults.
func Load(v any) (Config, error) {
	cfg := Default()

	data, err := json.Marshal(v)
	if err != nil {
		return Config{}, fmt.Errorf("failed to marshal source: %w", err)
	}

	// only fields present in src will overwrite.
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal into Config: %w", err)
	}

	return cfg, cfg.validate()
}

// LoadFromJSON reads JSON from r into a Config.
func LoadFromJSON(r io.Reader) (Config, error) {
	cfg := Default()

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.HoverFormat {
	case HoverMarkdown, HoverPlainText:
	default:
		return fmt.Errorf("unsupported hoverFormat %q", c.HoverFormat)
	}
	return nil
}
