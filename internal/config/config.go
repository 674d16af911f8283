// Package config loads themewalker settings from file, environment, and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/themewalker/themewalker/internal/sddm"
	"github.com/themewalker/themewalker/internal/theme"
)

// DefaultThemesDir is where distributions install SDDM themes.
const DefaultThemesDir = "/usr/share/sddm/themes"

// EnvPrefix is prepended to every environment override (THEMEWALKER_THEMES_DIR, ...).
const EnvPrefix = "THEMEWALKER"

// Config is the resolved application configuration.
type Config struct {
	ThemesDir    string           `mapstructure:"themes_dir"`
	MetadataFile string           `mapstructure:"metadata_file"`
	SDDM         SDDMConfig       `mapstructure:"sddm"`
	Escalation   EscalationConfig `mapstructure:"escalation"`
	UI           UIConfig         `mapstructure:"ui"`
	Logging      LoggingConfig    `mapstructure:"logging"`
}

// SDDMConfig points at the display manager configuration sources.
type SDDMConfig struct {
	Config       string `mapstructure:"config"`
	ConfigDir    string `mapstructure:"config_dir"`
	// CreateDropIn creates config_dir/theme.conf instead of config when
	// neither holds any configuration yet.
	CreateDropIn bool   `mapstructure:"create_drop_in"`
}

// EscalationConfig selects the helper used when the config file is not writable.
type EscalationConfig struct {
	Helper string `mapstructure:"helper"`
}

// UIConfig tunes the interactive picker.
type UIConfig struct {
	Wrap    bool   `mapstructure:"wrap"`
	Palette string `mapstructure:"palette"`
}

// LoggingConfig controls the zerolog output.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	paths := sddm.DefaultPaths()
	return &Config{
		ThemesDir:    DefaultThemesDir,
		MetadataFile: theme.DefaultMetadataFile,
		SDDM: SDDMConfig{
			Config:    paths.Legacy,
			ConfigDir: paths.DropInDir,
		},
		Escalation: EscalationConfig{
			Helper: "sudo",
		},
		UI: UIConfig{
			Wrap:    true,
			Palette: "default",
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// DefaultPath returns the config file location under the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ""
	}
	return filepath.Join(dir, "themewalker", "config.yaml")
}

// NewViper returns a viper instance seeded with defaults and env bindings.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v, DefaultConfig())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("themes_dir", cfg.ThemesDir)
	v.SetDefault("metadata_file", cfg.MetadataFile)
	v.SetDefault("sddm.config", cfg.SDDM.Config)
	v.SetDefault("sddm.config_dir", cfg.SDDM.ConfigDir)
	v.SetDefault("sddm.create_drop_in", cfg.SDDM.CreateDropIn)
	v.SetDefault("escalation.helper", cfg.Escalation.Helper)
	v.SetDefault("ui.wrap", cfg.UI.Wrap)
	v.SetDefault("ui.palette", cfg.UI.Palette)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.file", cfg.Logging.File)
}

// Load reads the config file at path (if any) into v and decodes the result.
// A missing file at the default location is not an error; a missing file that
// was explicitly requested is.
func Load(v *viper.Viper, path string, explicit bool) (*Config, error) {
	if v == nil {
		v = NewViper()
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
			if explicit || !missing {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ThemesDir) == "" {
		return errors.New("themes_dir is required")
	}
	if strings.TrimSpace(c.MetadataFile) == "" {
		return errors.New("metadata_file is required")
	}
	if strings.TrimSpace(c.SDDM.Config) == "" {
		return errors.New("sddm.config is required")
	}
	if strings.TrimSpace(c.Escalation.Helper) == "" {
		return errors.New("escalation.helper is required")
	}
	return nil
}
