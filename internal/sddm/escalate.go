package sddm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// Escalator writes a file through an elevated-privilege channel.
type Escalator interface {
	WriteFile(ctx context.Context, path string, content []byte) error
}

// EscalatorFunc adapts a function to Escalator.
type EscalatorFunc func(ctx context.Context, path string, content []byte) error

// WriteFile calls f.
func (f EscalatorFunc) WriteFile(ctx context.Context, path string, content []byte) error {
	return f(ctx, path, content)
}

// CommandEscalator pipes content into "<helper> tee <path>". The helper's own
// prompts reach the controlling terminal, so it must run after any UI exits.
type CommandEscalator struct {
	Helper string
	// Stderr receives helper diagnostics. Defaults to os.Stderr.
	Stderr io.Writer
}

// NewCommandEscalator returns an escalator for sudo, doas, pkexec or similar.
func NewCommandEscalator(helper string) *CommandEscalator {
	return &CommandEscalator{Helper: helper}
}

// WriteFile creates the parent directory if needed, then streams content to tee.
func (e *CommandEscalator) WriteFile(ctx context.Context, path string, content []byte) error {
	if e.Helper == "" {
		return errors.New("escalation helper is not configured")
	}
	helper, err := exec.LookPath(e.Helper)
	if err != nil {
		return fmt.Errorf("escalation helper %q not available: %w", e.Helper, err)
	}

	dir := filepath.Dir(path)
	if !isDir(dir) {
		if err := e.run(ctx, helper, nil, "mkdir", "-p", dir); err != nil {
			return err
		}
	}
	return e.run(ctx, helper, bytes.NewReader(content), "tee", path)
}

func (e *CommandEscalator) run(ctx context.Context, helper string, stdin io.Reader, args ...string) error {
	cmd := exec.CommandContext(ctx, helper, args...)
	if stdin != nil {
		cmd.Stdin = stdin
	} else {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = io.Discard
	cmd.Stderr = e.stderr()
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %v failed: %w", e.Helper, args, err)
	}
	return nil
}

func (e *CommandEscalator) stderr() io.Writer {
	if e.Stderr != nil {
		return e.Stderr
	}
	return os.Stderr
}
