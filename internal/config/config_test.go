package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(NewViper(), filepath.Join(t.TempDir(), "missing.yaml"), false)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
	require.Equal(t, "/etc/sddm.conf", cfg.SDDM.Config)
	require.Equal(t, "metadata.desktop", cfg.MetadataFile)
	require.False(t, cfg.SDDM.CreateDropIn)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "missing.yaml"), true)
	require.Error(t, err)
}

func TestLoadFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `themes_dir: /opt/themes
sddm:
  config: /tmp/sddm.conf
  create_drop_in: true
escalation:
  helper: doas
ui:
  wrap: false
  palette: high-contrast
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(NewViper(), path, true)
	require.NoError(t, err)
	require.Equal(t, "/opt/themes", cfg.ThemesDir)
	require.Equal(t, "/tmp/sddm.conf", cfg.SDDM.Config)
	require.Equal(t, "/etc/sddm.conf.d", cfg.SDDM.ConfigDir)
	require.True(t, cfg.SDDM.CreateDropIn)
	require.Equal(t, "doas", cfg.Escalation.Helper)
	require.False(t, cfg.UI.Wrap)
	require.Equal(t, "high-contrast", cfg.UI.Palette)
	require.Equal(t, "metadata.desktop", cfg.MetadataFile)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("THEMEWALKER_THEMES_DIR", "/env/themes")
	t.Setenv("THEMEWALKER_ESCALATION_HELPER", "pkexec")

	cfg, err := Load(NewViper(), "", false)
	require.NoError(t, err)
	require.Equal(t, "/env/themes", cfg.ThemesDir)
	require.Equal(t, "pkexec", cfg.Escalation.Helper)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"themes dir", func(c *Config) { c.ThemesDir = " " }},
		{"metadata file", func(c *Config) { c.MetadataFile = "" }},
		{"sddm config", func(c *Config) { c.SDDM.Config = "" }},
		{"helper", func(c *Config) { c.Escalation.Helper = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("Validate() expected error")
			}
		})
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}
