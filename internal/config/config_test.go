package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kk-code-lab/rmark/internal/markup"
	"github.com/kk-code-lab/rmark/internal/textutil"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
	require.Equal(t, textutil.DefaultTabWidth, cfg.TabWidth)
	require.Equal(t, markup.PreserveBlankLines, cfg.BlankLinePolicy())

	down, up, quit := cfg.KeyRunes()
	require.Equal(t, 'j', down)
	require.Equal(t, 'k', up)
	require.Equal(t, 'q', quit)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
blank_lines: drop
tab_width: 8
normalize: false
keys:
  down: n
  up: p
`)
	cfg, err := Load(New(), path)
	require.NoError(t, err)
	require.Equal(t, markup.DropBlankLines, cfg.BlankLinePolicy())
	require.Equal(t, 8, cfg.TabWidth)
	require.False(t, cfg.Normalize)
	require.Equal(t, KeysConfig{Down: "n", Up: "p", Quit: "q"}, cfg.Keys)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("RMARK_TAB_WIDTH", "2")
	t.Setenv("RMARK_KEYS_QUIT", "x")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	require.Equal(t, 2, cfg.TabWidth)
	require.Equal(t, "x", cfg.Keys.Quit)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown blank line policy", func(c *Config) { c.BlankLines = "squash" }},
		{"negative tab width", func(c *Config) { c.TabWidth = -1 }},
		{"multi-character key", func(c *Config) { c.Keys.Down = "dd" }},
		{"empty key", func(c *Config) { c.Keys.Up = "" }},
		{"duplicate binding", func(c *Config) { c.Keys.Up = "j" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := writeConfig(t, "tab_width: -3\n")
	_, err := Load(New(), path)
	require.ErrorContains(t, err, "tab_width")
}

func TestYAMLRoundTrip(t *testing.T) {
	out, err := Defaults().YAML()
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Equal(t, Defaults(), decoded)
	require.Contains(t, out, "blank_lines: preserve")
}
