// Package config provides configuration types, defaults and loading for rmark.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/kk-code-lab/rmark/internal/markup"
	"github.com/kk-code-lab/rmark/internal/textutil"
)

// KeysConfig binds the three pager commands to runes.
type KeysConfig struct {
	Down string `mapstructure:"down" yaml:"down"`
	Up   string `mapstructure:"up" yaml:"up"`
	Quit string `mapstructure:"quit" yaml:"quit"`
}

// Config holds all configuration options for rmark.
type Config struct {
	BlankLines string     `mapstructure:"blank_lines" yaml:"blank_lines"` // "preserve" (default) or "drop"
	TabWidth   int        `mapstructure:"tab_width" yaml:"tab_width"`
	Normalize  bool       `mapstructure:"normalize" yaml:"normalize"` // NFC-normalize documents on load
	Watch      bool       `mapstructure:"watch" yaml:"watch"`         // reload when the file changes
	LogFile    string     `mapstructure:"log_file" yaml:"log_file"`
	Keys       KeysConfig `mapstructure:"keys" yaml:"keys"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		BlankLines: markup.PreserveBlankLines.String(),
		TabWidth:   textutil.DefaultTabWidth,
		Normalize:  true,
		Keys: KeysConfig{
			Down: "j",
			Up:   "k",
			Quit: "q",
		},
	}
}

// EnvPrefix is the prefix of environment overrides, e.g. RMARK_TAB_WIDTH.
const EnvPrefix = "RMARK"

// New returns a viper instance seeded with defaults and environment lookup.
func New() *viper.Viper {
	v := viper.New()
	d := Defaults()
	v.SetDefault("blank_lines", d.BlankLines)
	v.SetDefault("tab_width", d.TabWidth)
	v.SetDefault("normalize", d.Normalize)
	v.SetDefault("watch", d.Watch)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("keys.down", d.Keys.Down)
	v.SetDefault("keys.up", d.Keys.Up)
	v.SetDefault("keys.quit", d.Keys.Quit)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// DefaultPath is the user config location: $XDG_CONFIG_HOME/rmark/config.yaml
// or ~/.config/rmark/config.yaml.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "rmark", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "rmark", "config.yaml")
}

// Load reads the config file into v and decodes the result. An explicit path
// must exist; when path is empty a missing default file is not an error.
func Load(v *viper.Viper, path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
			if explicit || !missing {
				return Config{}, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and key bindings.
func (c Config) Validate() error {
	if _, err := markup.ParseBlankLinePolicy(c.BlankLines); err != nil {
		return fmt.Errorf("invalid blank_lines: %w", err)
	}
	if c.TabWidth < 0 {
		return fmt.Errorf("invalid tab_width %d: must not be negative", c.TabWidth)
	}
	seen := map[rune]string{}
	for name, key := range map[string]string{"down": c.Keys.Down, "up": c.Keys.Up, "quit": c.Keys.Quit} {
		r, err := keyRune(key)
		if err != nil {
			return fmt.Errorf("invalid keys.%s: %w", name, err)
		}
		if other, dup := seen[r]; dup {
			return fmt.Errorf("keys.%s and keys.%s are both bound to %q", name, other, key)
		}
		seen[r] = name
	}
	return nil
}

// BlankLinePolicy returns the parsed blank_lines value.
func (c Config) BlankLinePolicy() markup.BlankLinePolicy {
	policy, _ := markup.ParseBlankLinePolicy(c.BlankLines)
	return policy
}

// KeyRunes returns the bound runes for down, up and quit.
func (c Config) KeyRunes() (down, up, quit rune) {
	down, _ = keyRune(c.Keys.Down)
	up, _ = keyRune(c.Keys.Up)
	quit, _ = keyRune(c.Keys.Quit)
	return down, up, quit
}

func keyRune(key string) (rune, error) {
	if utf8.RuneCountInString(key) != 1 {
		return 0, fmt.Errorf("binding %q must be a single character", key)
	}
	r, _ := utf8.DecodeRuneInString(key)
	return r, nil
}

// YAML renders the configuration as a YAML document.
func (c Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
