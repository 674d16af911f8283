// Package cli implements the themewalker command line.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/themewalker/themewalker/internal/config"
	"github.com/themewalker/themewalker/internal/logging"
)

var (
	cfgFile        string
	jsonOutput     bool
	nonInteractive bool

	v         = config.NewViper()
	appConfig *config.Config
	logger    = zerolog.Nop()
	closeLog  = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "themewalker",
	Short: "Pick the SDDM login theme from a terminal UI",
	Long: `themewalker lists the SDDM themes installed on this machine, lets you
pick one, and writes it to [Theme] Current= in the SDDM configuration.

When the configuration file is not writable, the change is written through a
privilege helper (sudo by default) after the interface has closed.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPicker(cmd.Context())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/themewalker/config.yaml)")
	flags.BoolVar(&jsonOutput, "json", false, "output JSON where supported")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never start the interactive picker")
	flags.String("themes-dir", "", "directory containing SDDM themes")
	flags.String("sddm-config", "", "legacy SDDM config file")
	flags.String("sddm-config-dir", "", "SDDM drop-in config directory")
	flags.String("helper", "", "privilege helper used when the config is not writable")
	flags.String("palette", "", "UI palette (default, high-contrast)")
	flags.Bool("no-wrap", false, "stop the cursor at the ends of the list")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "write JSON logs to this file instead of stderr")

	bindFlag("themes_dir", "themes-dir")
	bindFlag("sddm.config", "sddm-config")
	bindFlag("sddm.config_dir", "sddm-config-dir")
	bindFlag("escalation.helper", "helper")
	bindFlag("ui.palette", "palette")
	bindFlag("logging.level", "log-level")
	bindFlag("logging.file", "log-file")
}

func bindFlag(key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", flag, err))
	}
}

// Execute runs the root command.
func Execute() error {
	defer func() { _ = closeLog() }()
	return rootCmd.Execute()
}

func initApp(cmd *cobra.Command, args []string) error {
	path, explicit := cfgFile, cfgFile != ""
	if !explicit {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(v, path, explicit)
	if err != nil {
		return err
	}
	if noWrap, _ := cmd.Flags().GetBool("no-wrap"); noWrap {
		cfg.UI.Wrap = false
	}

	log, closer, err := logging.New(logging.Options{Level: cfg.Logging.Level, File: cfg.Logging.File})
	if err != nil {
		return err
	}

	appConfig = cfg
	logger = log
	closeLog = closer
	logger.Debug().Str("config", path).Str("themes_dir", cfg.ThemesDir).Msg("configuration loaded")
	return nil
}

// GetConfig returns the loaded configuration, or defaults before load.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}
