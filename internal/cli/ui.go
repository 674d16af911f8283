package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/themewalker/themewalker/internal/sddm"
	"github.com/themewalker/themewalker/internal/tui"
)

// runPicker is the default command: load, pick, tear the UI down, then apply.
// The apply runs in normal terminal mode so an escalation helper can prompt.
func runPicker(ctx context.Context) error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "the theme picker requires an interactive terminal",
			Hint:     "Run from a terminal without --non-interactive, or apply a theme directly",
			NextStep: "themewalker set <theme>",
		}
	}

	cfg := GetConfig()
	sess, err := openSession(cfg, os.Stderr)
	if err != nil {
		return err
	}

	result, err := tui.Run(ctx, tui.Options{
		Catalog:    sess.catalog,
		Current:    sess.current(),
		ConfigPath: sess.source.Path,
		ThemesDir:  cfg.ThemesDir,
		Wrap:       cfg.UI.Wrap,
		Palette:    cfg.UI.Palette,
	})
	if err != nil {
		return fmt.Errorf("theme picker failed: %w", err)
	}
	if !result.Selected() {
		logger.Debug().Msg("picker closed without a selection")
		return nil
	}

	_, err = applyTheme(ctx, os.Stdout, newStore(cfg, os.Stderr), sess.source, result.Theme.ID)
	return err
}

// applyTheme writes id to src and prints the status report to out.
func applyTheme(ctx context.Context, out io.Writer, store *sddm.Store, src *sddm.Source, id string) (sddm.WriteResult, error) {
	fmt.Fprintf(out, "Applying theme '%s'…\n", id)
	fmt.Fprintf(out, "Config path: %s\n", src.Path)

	res, err := store.WriteTheme(ctx, src, id)
	if err != nil {
		return res, err
	}

	fmt.Fprintln(out, formatApplyStatus(res))
	if res.Unchanged {
		fmt.Fprintln(out, "No changes made.")
		return res, nil
	}
	fmt.Fprintln(out, "Done. Restart SDDM (or log out) for the change to take effect.")
	return res, nil
}
