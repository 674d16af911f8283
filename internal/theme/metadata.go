package theme

import (
	"gopkg.in/ini.v1"
)

type metadata struct {
	name        string
	description string
	author      string
	version     string
}

var metadataLoadOptions = ini.LoadOptions{
	Loose:                   true,
	SkipUnrecognizableLines: true,
	IgnoreInlineComment:     true,
	KeyValueDelimiters:      "=",
	AllowShadows:            false,
}

// readMetadata parses Key=Value pairs from a desktop-style file. Keys are
// matched in any section; the first occurrence wins. A missing file yields
// empty metadata.
func readMetadata(path string) (metadata, error) {
	f, err := ini.LoadSources(metadataLoadOptions, path)
	if err != nil {
		return metadata{}, err
	}
	return metadata{
		name:        lookupKey(f, "Name"),
		description: lookupKey(f, "Description"),
		author:      lookupKey(f, "Author"),
		version:     lookupKey(f, "Version"),
	}, nil
}

func lookupKey(f *ini.File, key string) string {
	for _, sec := range f.Sections() {
		if sec.HasKey(key) {
			return sec.Key(key).String()
		}
	}
	return ""
}
