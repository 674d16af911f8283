package sddm

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrConfigNotFound means no candidate exists and no new file can be created.
var ErrConfigNotFound = errors.New("sddm config not found")

// ErrConfigUnreadable means the only possible target exists but cannot be read,
// so writing it would discard content.
var ErrConfigUnreadable = errors.New("sddm config exists but is unreadable")

// ReadError is a candidate that exists but could not be read or listed.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read sddm config %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

const (
	// DefaultLegacyPath is the single-file configuration.
	DefaultLegacyPath = "/etc/sddm.conf"
	// DefaultDropInDir holds fragment files applied in filename order.
	DefaultDropInDir = "/etc/sddm.conf.d"
	// DropInFile is created in the drop-in directory when no config exists
	// and Paths.CreateInDropIn is set.
	DropInFile = "theme.conf"
)

// Paths are the configuration candidates.
type Paths struct {
	Legacy    string
	DropInDir string
	// CreateInDropIn creates DropInDir/DropInFile instead of the legacy file
	// when no candidate exists and the drop-in directory does.
	CreateInDropIn bool
}

// DefaultPaths returns the stock SDDM locations.
func DefaultPaths() Paths {
	return Paths{Legacy: DefaultLegacyPath, DropInDir: DefaultDropInDir}
}

// Source is the file that holds, or will hold, the active theme setting.
type Source struct {
	Path     string
	Exists   bool
	Document *Document
	// Candidates lists every existing file that was read, in precedence order.
	Candidates []string
	// Skipped lists candidates that exist but could not be read.
	Skipped []*ReadError
}

// Current returns the effective theme, if one is set.
func (s *Source) Current() (string, bool) {
	if s == nil || s.Document == nil {
		return "", false
	}
	value, ok := s.Document.Current()
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// HasCurrent reports whether a Current= line already exists in the target.
func (s *Source) HasCurrent() bool {
	if s == nil || s.Document == nil {
		return false
	}
	_, ok := s.Document.Current()
	return ok
}

// ReadCurrentTheme returns the theme the source currently selects.
func ReadCurrentTheme(src *Source) (string, bool) {
	return src.Current()
}

// Candidates returns existing configuration files in precedence order: the
// legacy file first, then *.conf drop-in files sorted by name. Later entries override
// earlier ones. When the drop-in directory cannot be listed, the legacy
// candidate is still returned together with a *ReadError.
func (p Paths) Candidates() ([]string, error) {
	var out []string
	if p.Legacy != "" {
		if isRegularFile(p.Legacy) {
			out = append(out, p.Legacy)
		}
	}
	if p.DropInDir == "" {
		return out, nil
	}

	entries, err := os.ReadDir(p.DropInDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return out, nil
		}
		return out, &ReadError{Path: p.DropInDir, Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") || filepath.Ext(name) != ".conf" {
			continue
		}
		if isRegularFile(filepath.Join(p.DropInDir, name)) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		out = append(out, filepath.Join(p.DropInDir, name))
	}
	return out, nil
}

// Locate reads every candidate and picks the write target: the file holding
// the last Current= assignment in precedence order, else the first readable
// candidate, else a new file (see createTarget). Unreadable candidates are
// skipped and reported in Source.Skipped.
func Locate(p Paths) (*Source, error) {
	var skipped []*ReadError
	candidates, err := p.Candidates()
	if err != nil {
		var readErr *ReadError
		if !errors.As(err, &readErr) {
			return nil, err
		}
		skipped = append(skipped, readErr)
	}

	var first, winner *Source
	read := make([]string, 0, len(candidates))
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			skipped = append(skipped, &ReadError{Path: path, Err: err})
			continue
		}
		read = append(read, path)
		src := &Source{Path: path, Exists: true, Document: ParseDocument(string(data))}
		if first == nil {
			first = src
		}
		if src.HasCurrent() {
			winner = src
		}
	}

	target := winner
	if target == nil {
		target = first
	}
	if target == nil {
		path, err := p.createTarget()
		if err != nil {
			return nil, err
		}
		target = &Source{Path: path, Document: ParseDocument("")}
	}
	target.Candidates = read
	target.Skipped = skipped
	return target, nil
}

// createTarget picks the file to create when no candidate could be read: the
// legacy path, or DropInDir/DropInFile with CreateInDropIn. A path that
// already exists is never picked.
func (p Paths) createTarget() (string, error) {
	var path string
	switch {
	case p.CreateInDropIn && p.DropInDir != "" && isDir(p.DropInDir):
		path = filepath.Join(p.DropInDir, DropInFile)
	case p.Legacy != "" && isDir(filepath.Dir(p.Legacy)):
		path = p.Legacy
	default:
		return "", fmt.Errorf("%w: no file in %s or %s and cannot create %s",
			ErrConfigNotFound, p.Legacy, p.DropInDir, p.Legacy)
	}
	if _, err := os.Lstat(path); err == nil {
		return "", fmt.Errorf("%w: %s", ErrConfigUnreadable, path)
	}
	return path, nil
}

func isRegularFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
