// Package sddm reads and writes the theme selection in SDDM configuration files.
package sddm

import "strings"

const (
	// ThemeSection is the INI section holding the theme selection.
	ThemeSection = "Theme"
	// CurrentKey is the key inside ThemeSection naming the active theme.
	CurrentKey = "Current"
)

// LineKind classifies a configuration line.
type LineKind int

const (
	// LineOpaque is anything not interpreted: comments, blanks, other keys, malformed text.
	LineOpaque LineKind = iota
	// LineSection is a "[Name]" header.
	LineSection
	// LineCurrent is a Current= assignment inside [Theme].
	LineCurrent
)

// Line is one line of the file, kept byte-for-byte including its terminator.
type Line struct {
	Kind    LineKind
	Raw     string
	Section string // header name for LineSection

	// value bounds inside Raw for LineCurrent
	valueStart int
	valueEnd   int
}

// Value returns the trimmed value of a Current= line.
func (l Line) Value() string {
	if l.Kind != LineCurrent {
		return ""
	}
	return l.Raw[l.valueStart:l.valueEnd]
}

// Document is an ordered sequence of lines. Writes touch only the lines they
// must; everything else renders back unchanged.
type Document struct {
	lines []Line
}

// ParseDocument splits text into classified lines.
func ParseDocument(text string) *Document {
	doc := &Document{}
	if text == "" {
		return doc
	}

	section := ""
	for _, raw := range strings.SplitAfter(text, "\n") {
		if raw == "" {
			continue
		}
		line := classify(raw, section)
		if line.Kind == LineSection {
			section = line.Section
		}
		doc.lines = append(doc.lines, line)
	}
	return doc
}

func classify(raw, section string) Line {
	body := strings.TrimRight(raw, "\r\n")
	trimmed := strings.TrimSpace(body)

	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") && len(trimmed) >= 2 {
		return Line{Kind: LineSection, Raw: raw, Section: strings.TrimSpace(trimmed[1 : len(trimmed)-1])}
	}
	if section != ThemeSection || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";") {
		return Line{Kind: LineOpaque, Raw: raw}
	}

	eq := strings.IndexByte(body, '=')
	if eq < 0 || strings.TrimSpace(body[:eq]) != CurrentKey {
		return Line{Kind: LineOpaque, Raw: raw}
	}

	start, end := eq+1, len(body)
	for start < end && isSpace(body[start]) {
		start++
	}
	for end > start && isSpace(body[end-1]) {
		end--
	}
	return Line{Kind: LineCurrent, Raw: raw, valueStart: start, valueEnd: end}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// Lines returns a copy of the parsed lines.
func (d *Document) Lines() []Line {
	out := make([]Line, len(d.lines))
	copy(out, d.lines)
	return out
}

// Clone returns an independent copy.
func (d *Document) Clone() *Document {
	return &Document{lines: d.Lines()}
}

// Current returns the last Current= value inside any [Theme] section.
func (d *Document) Current() (string, bool) {
	value, found := "", false
	for _, l := range d.lines {
		if l.Kind == LineCurrent {
			value, found = l.Value(), true
		}
	}
	return value, found
}

func (d *Document) themeHeader() int {
	for i, l := range d.lines {
		if l.Kind == LineSection && l.Section == ThemeSection {
			return i
		}
	}
	return -1
}

// SetCurrent sets [Theme] Current=id. Existing assignments are rewritten in
// place; otherwise the key goes right after the [Theme] header, or a new
// section is appended at the end.
func (d *Document) SetCurrent(id string) {
	replaced := false
	for i, l := range d.lines {
		if l.Kind != LineCurrent {
			continue
		}
		raw := l.Raw[:l.valueStart] + id + l.Raw[l.valueEnd:]
		d.lines[i] = Line{Kind: LineCurrent, Raw: raw, valueStart: l.valueStart, valueEnd: l.valueStart + len(id)}
		replaced = true
	}
	if replaced {
		return
	}

	nl := d.newline()
	if header := d.themeHeader(); header >= 0 {
		d.terminate(header, nl)
		inserted := newCurrentLine(id, nl)
		d.lines = append(d.lines[:header+1], append([]Line{inserted}, d.lines[header+1:]...)...)
		return
	}

	if n := len(d.lines); n > 0 {
		d.terminate(n-1, nl)
		if strings.TrimSpace(d.lines[n-1].Raw) != "" {
			d.lines = append(d.lines, Line{Kind: LineOpaque, Raw: nl})
		}
	}
	d.lines = append(d.lines,
		Line{Kind: LineSection, Raw: "[" + ThemeSection + "]" + nl, Section: ThemeSection},
		newCurrentLine(id, nl),
	)
}

func newCurrentLine(id, nl string) Line {
	prefix := CurrentKey + "="
	return Line{Kind: LineCurrent, Raw: prefix + id + nl, valueStart: len(prefix), valueEnd: len(prefix) + len(id)}
}

// terminate adds a line ending to line i when it is the unterminated last line.
func (d *Document) terminate(i int, nl string) {
	if !strings.HasSuffix(d.lines[i].Raw, "\n") {
		d.lines[i].Raw += nl
	}
}

// newline follows the file's first line ending, defaulting to "\n".
func (d *Document) newline() string {
	for _, l := range d.lines {
		if strings.HasSuffix(l.Raw, "\r\n") {
			return "\r\n"
		}
		if strings.HasSuffix(l.Raw, "\n") {
			return "\n"
		}
	}
	return "\n"
}

// String renders the document back to text.
func (d *Document) String() string {
	var b strings.Builder
	for _, l := range d.lines {
		b.WriteString(l.Raw)
	}
	return b.String()
}
