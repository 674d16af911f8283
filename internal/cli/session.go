package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/themewalker/themewalker/internal/config"
	"github.com/themewalker/themewalker/internal/sddm"
	"github.com/themewalker/themewalker/internal/theme"
)

// session is everything a command needs before it touches the terminal.
type session struct {
	cfg     *config.Config
	source  *sddm.Source
	catalog theme.Catalog
}

func (s *session) current() string {
	id, _ := s.source.Current()
	return id
}

func sddmPaths(cfg *config.Config) sddm.Paths {
	return sddm.Paths{
		Legacy:         cfg.SDDM.Config,
		DropInDir:      cfg.SDDM.ConfigDir,
		CreateInDropIn: cfg.SDDM.CreateDropIn,
	}
}

// openSession locates the SDDM config and scans the themes directory.
// Unreadable candidates are skipped with a warning. When no config exists
// and none can be created yet, the session starts from an empty document at
// the legacy path; any other config error is fatal.
func openSession(cfg *config.Config, warn io.Writer) (*session, error) {
	paths := sddmPaths(cfg)
	src, err := sddm.Locate(paths)
	switch {
	case err == nil:
	case errors.Is(err, sddm.ErrConfigNotFound):
		logger.Warn().Err(err).Msg("sddm config unavailable")
		fmt.Fprintln(warn, formatWarning(fmt.Sprintf("could not find SDDM config (%v); starting with empty state", err)))
		src = &sddm.Source{Path: paths.Legacy, Document: sddm.ParseDocument("")}
	default:
		return nil, &PreflightError{
			Message:  fmt.Sprintf("cannot use SDDM config: %v", err),
			Hint:     "Make the file readable, or point sddm.config at a readable file",
			NextStep: "themewalker --sddm-config <file> current",
		}
	}
	for _, skipped := range src.Skipped {
		logger.Warn().Str("path", skipped.Path).Err(skipped.Err).Msg("skipping unreadable sddm config")
		fmt.Fprintln(warn, formatWarning(fmt.Sprintf("skipping %s: %v", skipped.Path, skipped.Err)))
	}

	result, err := theme.DiscoverWithOptions(cfg.ThemesDir, theme.Options{MetadataFile: cfg.MetadataFile})
	if err != nil {
		var discErr *theme.DiscoveryError
		if errors.As(err, &discErr) {
			return nil, &PreflightError{
				Message:  fmt.Sprintf("failed to scan theme directory: %v", err),
				Hint:     "Install an SDDM theme or point themes_dir at the directory that holds them",
				NextStep: "themewalker --themes-dir <dir> list",
			}
		}
		return nil, err
	}
	for _, w := range result.Warnings {
		logger.Warn().Str("theme", w.ThemeID).Str("path", w.Path).Err(w.Err).Msg("ignoring theme metadata")
	}

	logger.Debug().
		Str("config", src.Path).
		Bool("exists", src.Exists).
		Int("themes", len(result.Catalog)).
		Msg("session ready")

	return &session{cfg: cfg, source: src, catalog: result.Catalog}, nil
}

// newStore builds the writer used for applies, escalating through the
// configured helper.
func newStore(cfg *config.Config, stderr io.Writer) *sddm.Store {
	esc := sddm.NewCommandEscalator(cfg.Escalation.Helper)
	esc.Stderr = stderr
	return sddm.NewStore(logger, sddm.WithEscalator(esc))
}
