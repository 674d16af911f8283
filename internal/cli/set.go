package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var setForce bool

func init() {
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().BoolVarP(&setForce, "force", "f", false, "write the theme even if it is not installed")
}

var setCmd = &cobra.Command{
	Use:   "set <theme>",
	Short: "Apply an SDDM theme without the picker",
	Long: `Write [Theme] Current=<theme> to the SDDM configuration.

The theme must be installed in the themes directory unless --force is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		sess, err := openSession(cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		id := args[0]
		if _, ok := sess.catalog.Lookup(id); !ok && !setForce {
			return &PreflightError{
				Message:  fmt.Sprintf("theme %q is not installed in %s", id, cfg.ThemesDir),
				Hint:     "Pick one of the installed themes, or pass --force to write it anyway",
				NextStep: "themewalker list",
			}
		}

		report := cmd.OutOrStdout()
		if IsJSONOutput() {
			report = io.Discard
		}
		res, err := applyTheme(cmd.Context(), report, newStore(cfg, cmd.ErrOrStderr()), sess.source, id)
		if err != nil {
			return err
		}
		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), res)
		}
		return nil
	},
}
