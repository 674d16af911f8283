package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DiscoveryError reports an unreadable themes root.
type DiscoveryError struct {
	Root string
	Err  error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("failed to scan themes in %s: %v", e.Root, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// MetadataError records a metadata file that could not be read. The theme it
// belongs to is still part of the catalog.
type MetadataError struct {
	ThemeID string
	Path    string
	Err     error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("theme %s: metadata %s: %v", e.ThemeID, e.Path, e.Err)
}

func (e *MetadataError) Unwrap() error { return e.Err }

// Options tune discovery.
type Options struct {
	// MetadataFile is looked up inside each theme directory.
	MetadataFile string
	// AllowMissingRoot returns an empty catalog when the root does not exist.
	AllowMissingRoot bool
}

// Result is a catalog plus the per-theme metadata problems met on the way.
type Result struct {
	Catalog  Catalog
	Warnings []*MetadataError
}

// Discover scans root with default options.
func Discover(root string) (Catalog, error) {
	res, err := DiscoverWithOptions(root, Options{})
	if err != nil {
		return nil, err
	}
	return res.Catalog, nil
}

// DiscoverWithOptions lists the immediate subdirectories of root as themes.
// Order follows the directory listing.
func DiscoverWithOptions(root string, opts Options) (Result, error) {
	if opts.MetadataFile == "" {
		opts.MetadataFile = DefaultMetadataFile
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		if opts.AllowMissingRoot && errors.Is(err, os.ErrNotExist) {
			return Result{Catalog: Catalog{}}, nil
		}
		return Result{}, &DiscoveryError{Root: root, Err: err}
	}

	res := Result{Catalog: make(Catalog, 0, len(entries))}
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !dirEntryIsDir(root, e) {
			continue
		}

		dir := filepath.Join(root, name)
		t := Theme{ID: name, Path: dir}

		metaPath := filepath.Join(dir, opts.MetadataFile)
		meta, err := readMetadata(metaPath)
		if err != nil {
			res.Warnings = append(res.Warnings, &MetadataError{ThemeID: name, Path: metaPath, Err: err})
		} else {
			t.Name = meta.name
			t.Description = meta.description
			t.Author = meta.author
			t.Version = meta.version
		}
		res.Catalog = append(res.Catalog, t)
	}
	return res, nil
}

// dirEntryIsDir is true for directories and for symlinks that resolve to one.
func dirEntryIsDir(parent string, e os.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(filepath.Join(parent, e.Name()))
	if err != nil {
		return false
	}
	return fi.IsDir()
}
