package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// JWTINSPECT_THEME or JWTINSPECT_KEYS_FOCUS_HEADER.
const EnvPrefix = "JWTINSPECT"

// Config is the TUI configuration.
//
// File location: ~/.config/jwtinspect/config.yml (or $XDG_CONFIG_HOME/jwtinspect/config.yml)
type Config struct {
	Theme    string     `mapstructure:"theme" validate:"omitempty,oneof=default github-dark github-dark-high-contrast terminal"`
	Mouse    bool       `mapstructure:"mouse"`
	LogLevel string     `mapstructure:"log_level" default:"INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	LogFile  string     `mapstructure:"log_file"`
	Keys     KeysConfig `mapstructure:"keys"`
}

// KeysConfig holds the rebindable global commands. Values use bubbletea key
// names ("ctrl+h", "f5", ...).
type KeysConfig struct {
	FocusHeader    string `mapstructure:"focus_header" default:"ctrl+h" validate:"required"`
	FocusClaims    string `mapstructure:"focus_claims" default:"ctrl+b" validate:"required"`
	FocusSignature string `mapstructure:"focus_signature" default:"ctrl+d" validate:"required"`
	MarkValid      string `mapstructure:"mark_valid" default:"ctrl+v" validate:"required"`
	MarkInvalid    string `mapstructure:"mark_invalid" default:"ctrl+x" validate:"required"`
}

func Default() Config {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		panic("config: struct defaults: " + err.Error())
	}
	return cfg
}

func Path() (string, error) {
	base := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME"))
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "jwtinspect", "config.yml"), nil
}

// Load reads config.yml if present and applies JWTINSPECT_* overrides.
// If the file is missing, returns Default() (plus env) with nil error. On any
// other failure it returns Default() and the error so callers can warn and
// carry on.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return loadFrom(path)
}

func loadFrom(path string) (Config, error) {
	v := newViper(path)

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}

	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Default(), fmt.Errorf("decode %s: %w", path, err)
	}
	cfg.normalize()

	if err := Validate(cfg); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func newFileViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	return v
}

func newViper(path string) *viper.Viper {
	v := newFileViper(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only sees keys viper already knows about.
	def := Default()
	v.SetDefault("theme", def.Theme)
	v.SetDefault("mouse", def.Mouse)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("keys.focus_header", def.Keys.FocusHeader)
	v.SetDefault("keys.focus_claims", def.Keys.FocusClaims)
	v.SetDefault("keys.focus_signature", def.Keys.FocusSignature)
	v.SetDefault("keys.mark_valid", def.Keys.MarkValid)
	v.SetDefault("keys.mark_invalid", def.Keys.MarkInvalid)
	return v
}

func isNotExist(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &nf)
}

func (c *Config) normalize() {
	c.Theme = strings.TrimSpace(c.Theme)
	c.LogLevel = strings.ToUpper(strings.TrimSpace(c.LogLevel))
	c.LogFile = expandHome(strings.TrimSpace(c.LogFile))
	c.Keys.FocusHeader = strings.TrimSpace(c.Keys.FocusHeader)
	c.Keys.FocusClaims = strings.TrimSpace(c.Keys.FocusClaims)
	c.Keys.FocusSignature = strings.TrimSpace(c.Keys.FocusSignature)
	c.Keys.MarkValid = strings.TrimSpace(c.Keys.MarkValid)
	c.Keys.MarkInvalid = strings.TrimSpace(c.Keys.MarkInvalid)
}

// reservedKeys are the fixed global keys. The UI matches them before any
// configurable binding, so rebinding one of them would never fire.
var reservedKeys = map[string]string{
	"esc":       "quit",
	"ctrl+c":    "quit",
	"tab":       "next pane",
	"shift+tab": "previous pane",
	"f1":        "help",
	"f2":        "theme",
	"f3":        "save theme",
}

// Validate checks field constraints and that no two commands share a key.
func Validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return err
	}

	seen := map[string]string{}
	for _, b := range []struct{ name, key string }{
		{"focus_header", cfg.Keys.FocusHeader},
		{"focus_claims", cfg.Keys.FocusClaims},
		{"focus_signature", cfg.Keys.FocusSignature},
		{"mark_valid", cfg.Keys.MarkValid},
		{"mark_invalid", cfg.Keys.MarkInvalid},
	} {
		if cmd, ok := reservedKeys[b.key]; ok {
			return fmt.Errorf("keys.%s: %q is reserved for %s", b.name, b.key, cmd)
		}
		if prev, ok := seen[b.key]; ok {
			return fmt.Errorf("keys.%s and keys.%s are both bound to %q", prev, b.name, b.key)
		}
		seen[b.key] = b.name
	}
	return nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
