package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

type themeListing struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Author      string `json:"author,omitempty"`
	Path        string `json:"path"`
	Active      bool   `json:"active"`
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List installed SDDM themes",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(GetConfig(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		current := sess.current()
		listings := make([]themeListing, 0, len(sess.catalog))
		for _, t := range sess.catalog {
			listings = append(listings, themeListing{
				ID:          t.ID,
				Name:        t.DisplayName(),
				Description: t.Description,
				Author:      t.Author,
				Path:        t.Path,
				Active:      t.ID == current,
			})
		}

		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), listings)
		}

		out := cmd.OutOrStdout()
		if len(listings) == 0 {
			fmt.Fprintf(out, "No themes found in %s\n", sess.cfg.ThemesDir)
			return nil
		}

		rows := make([][]string, 0, len(listings))
		for _, l := range listings {
			rows = append(rows, []string{l.ID, l.Name, l.Author, formatYesNo(l.Active)})
		}
		return writeTable(out, []string{"ID", "NAME", "AUTHOR", "ACTIVE"}, rows)
	},
}
