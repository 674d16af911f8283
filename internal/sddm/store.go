package sddm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

// WriteError reports a failed apply. Nothing is partially written.
type WriteError struct {
	Path      string
	Escalated bool
	Err       error
}

func (e *WriteError) Error() string {
	if e.Escalated {
		return fmt.Sprintf("privileged write to %s failed: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("write to %s failed: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// WriteResult describes what WriteTheme did.
type WriteResult struct {
	Path      string `json:"path"`
	Theme     string `json:"theme"`
	Created   bool   `json:"created"`
	Escalated bool   `json:"escalated"`
	Unchanged bool   `json:"unchanged"`
}

// Store owns the write path for a Source.
type Store struct {
	logger    zerolog.Logger
	escalator Escalator
	canWrite  func(path string) bool
}

// Option customizes a Store.
type Option func(*Store)

// WithEscalator sets the privileged writer.
func WithEscalator(e Escalator) Option {
	return func(s *Store) {
		s.escalator = e
	}
}

// WithWriteCheck replaces the effective-user writability probe.
func WithWriteCheck(fn func(path string) bool) Option {
	return func(s *Store) {
		s.canWrite = fn
	}
}

// NewStore creates a store. Without WithEscalator, unwritable targets fail.
func NewStore(logger zerolog.Logger, opts ...Option) *Store {
	s := &Store{
		logger:   logger,
		canWrite: effectiveWritable,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WriteTheme sets [Theme] Current=id in src's file. The whole new content is
// rendered first and written in one operation, directly when the effective
// user may write the file and through the escalator otherwise, including when
// a direct write is denied. A source that was not read is never written over
// an existing file. On success src reflects the new content.
func (s *Store) WriteTheme(ctx context.Context, src *Source, id string) (WriteResult, error) {
	if src == nil || src.Path == "" {
		return WriteResult{}, errors.New("config source is required")
	}
	if id == "" {
		return WriteResult{}, errors.New("theme id is required")
	}

	doc := ParseDocument("")
	if src.Document != nil {
		doc = src.Document.Clone()
	}
	before := doc.String()
	doc.SetCurrent(id)
	content := doc.String()

	result := WriteResult{Path: src.Path, Theme: id, Created: !src.Exists}
	if src.Exists && content == before {
		s.logger.Debug().Str("path", src.Path).Str("theme", id).Msg("theme already set")
		result.Unchanged = true
		return result, nil
	}
	if !src.Exists {
		if _, err := os.Lstat(src.Path); err == nil {
			return WriteResult{}, &WriteError{Path: src.Path, Err: ErrConfigUnreadable}
		}
	}

	target := resolveTarget(src.Path)
	escalate := !s.canWrite(target)
	if !escalate {
		s.logger.Debug().Str("path", target).Msg("writing sddm config directly")
		err := writeAtomic(target, []byte(content))
		switch {
		case err == nil:
		case errors.Is(err, os.ErrPermission) && s.escalator != nil:
			s.logger.Info().Err(err).Str("path", target).Msg("direct write denied, escalating")
			escalate = true
		default:
			return WriteResult{}, &WriteError{Path: src.Path, Err: err}
		}
	}

	if escalate {
		if s.escalator == nil {
			return WriteResult{}, &WriteError{Path: src.Path, Err: os.ErrPermission}
		}
		s.logger.Info().Str("path", src.Path).Msg("config not writable, escalating")
		if err := s.escalator.WriteFile(ctx, src.Path, []byte(content)); err != nil {
			return WriteResult{}, &WriteError{Path: src.Path, Escalated: true, Err: err}
		}
		result.Escalated = true
	}

	src.Document = doc
	src.Exists = true
	s.logger.Info().Str("path", src.Path).Str("theme", id).Bool("escalated", result.Escalated).Msg("sddm theme updated")
	return result, nil
}

// effectiveWritable checks that the effective user can do what writeAtomic
// does: create and rename a file in the parent directory and, for an
// existing file, write it.
func effectiveWritable(path string) bool {
	dir := filepath.Dir(path)
	if unix.Faccessat(unix.AT_FDCWD, dir, unix.W_OK|unix.X_OK, unix.AT_EACCESS) != nil {
		return false
	}
	if _, err := os.Stat(path); err == nil {
		return unix.Faccessat(unix.AT_FDCWD, path, unix.W_OK, unix.AT_EACCESS) == nil
	}
	return true
}

// resolveTarget follows symlinks so the rename replaces the file a link
// points at, not the link. Unresolvable paths are returned unchanged.
func resolveTarget(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return resolved
}

// writeAtomic replaces path with content via a temp file in the same directory.
func writeAtomic(path string, content []byte) (err error) {
	mode := os.FileMode(0o644)
	if fi, statErr := os.Stat(path); statErr == nil {
		mode = fi.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
