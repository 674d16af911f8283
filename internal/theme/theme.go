// Package theme discovers installed SDDM themes on disk.
package theme

// DefaultMetadataFile is the per-theme metadata file SDDM themes ship.
const DefaultMetadataFile = "metadata.desktop"

// Theme is one installed theme directory.
type Theme struct {
	// ID is the directory name and the literal value written to Current=.
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Author      string `json:"author,omitempty"`
	Version     string `json:"version,omitempty"`
	Path        string `json:"path"`
}

// Label returns "name — description", or just the name.
func (t Theme) Label() string {
	if t.Description == "" {
		return t.DisplayName()
	}
	return t.DisplayName() + " — " + t.Description
}

// DisplayName falls back to the ID when metadata has no name.
func (t Theme) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.ID
}

// Catalog is the ordered list of discovered themes.
type Catalog []Theme

// Index returns the position of the theme with the given ID, or -1.
func (c Catalog) Index(id string) int {
	for i, t := range c {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Lookup returns the theme with the given ID.
func (c Catalog) Lookup(id string) (Theme, bool) {
	if i := c.Index(id); i >= 0 {
		return c[i], true
	}
	return Theme{}, false
}

// IDs lists theme identifiers in catalog order.
func (c Catalog) IDs() []string {
	ids := make([]string, 0, len(c))
	for _, t := range c {
		ids = append(ids, t.ID)
	}
	return ids
}
