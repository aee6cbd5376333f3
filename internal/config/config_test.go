package config_test

import (
	"strings"
	"testing"

	"cyclels/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		options  any
		expected config.Config
		wantErr  bool
	}{
		{
			name:     "nil options keep defaults",
			options:  nil,
			expected: config.Default(),
		},
		{
			name:    "partial overlay",
			options: map[string]any{"maxNumberOfProblems": 10},
			expected: config.Config{
				MaxNumberOfProblems: 10,
				HoverFormat:         config.HoverMarkdown,
				FileExtensions:      []string{".cycle"},
			},
		},
		{
			name: "full overlay",
			options: map[string]any{
				"maxNumberOfProblems": 0,
				"hoverFormat":         "plaintext",
				"fileExtensions":      []string{".cyc", ".txt"},
			},
			expected: config.Config{
				MaxNumberOfProblems: 0,
				HoverFormat:         config.HoverPlainText,
				FileExtensions:      []string{".cyc", ".txt"},
			},
		},
		{
			name:    "wrong type",
			options: map[string]any{"maxNumberOfProblems": "many"},
			wantErr: true,
		},
		{
			name:    "unknown hover format",
			options: map[string]any{"hoverFormat": "html"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load(tt.options)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestLoadFromJSON(t *testing.T) {
	cfg, err := config.LoadFromJSON(strings.NewReader(`{"fileExtensions": [".route"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{".route"}, cfg.FileExtensions)
	assert.Equal(t, 1000, cfg.MaxNumberOfProblems)

	_, err = config.LoadFromJSON(strings.NewReader(`{`))
	assert.Error(t, err)
}

func TestDefaultIsACopy(t *testing.T) {
	cfg := config.Default()
	cfg.FileExtensions[0] = ".changed"
	assert.Equal(t, []string{".cycle"}, config.Default().FileExtensions)
}
