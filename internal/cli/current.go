package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(currentCmd)
}

type currentTheme struct {
	Theme      string   `json:"theme"`
	Set        bool     `json:"set"`
	Installed  bool     `json:"installed"`
	ConfigPath string   `json:"config_path"`
	Exists     bool     `json:"config_exists"`
	Sources    []string `json:"sources"`
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the active SDDM theme and where it is set",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(GetConfig(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		id, set := sess.source.Current()
		_, installed := sess.catalog.Lookup(id)
		status := currentTheme{
			Theme:      id,
			Set:        set,
			Installed:  set && installed,
			ConfigPath: sess.source.Path,
			Exists:     sess.source.Exists,
			Sources:    sess.source.Candidates,
		}
		if status.Sources == nil {
			status.Sources = []string{}
		}

		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), status)
		}

		out := cmd.OutOrStdout()
		if !set {
			fmt.Fprintln(out, "Theme:  (none)")
		} else {
			fmt.Fprintf(out, "Theme:  %s\n", id)
		}
		fmt.Fprintf(out, "Config: %s\n", sess.source.Path)
		if !sess.source.Exists {
			fmt.Fprintln(out, formatWarning("config file does not exist yet"))
		}
		if set && !installed {
			fmt.Fprintln(out, formatWarning(fmt.Sprintf("theme '%s' is not installed in %s", id, sess.cfg.ThemesDir)))
		}
		return nil
	},
}
