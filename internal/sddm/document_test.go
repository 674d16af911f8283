package sddm

import (
	"strings"
	"testing"
)

func TestDocumentCurrent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		found   bool
	}{
		{"theme section", "[General]\nFoo=bar\n\n[Theme]\nCurrent=breeze\n", "breeze", true},
		{"first section", "[Theme]\nCurrent=maya\n\n[Users]\nMinimumUid=1000\n", "maya", true},
		{"trimmed", "[Theme]\n  Current =  sugar-candy  \n", "sugar-candy", true},
		{"no theme section", "[General]\nFoo=bar\n", "", false},
		{"no current key", "[Theme]\nFontSize=12\n", "", false},
		{"outside theme section", "[General]\nCurrent=breeze\n[Theme]\n", "", false},
		{"case sensitive section", "[theme]\nCurrent=breeze\n", "", false},
		{"commented", "[Theme]\n#Current=breeze\n", "", false},
		{"last wins", "[Theme]\nCurrent=a\n[Theme]\nCurrent=b\n", "b", true},
		{"no trailing newline", "[Theme]\nCurrent=eos", "eos", true},
		{"crlf", "[Theme]\r\nCurrent=win\r\n", "win", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ParseDocument(tt.content).Current()
			if got != tt.want || found != tt.found {
				t.Fatalf("Current() = (%q, %v), want (%q, %v)", got, found, tt.want, tt.found)
			}
		})
	}
}

func TestDocumentRoundTripUnmodified(t *testing.T) {
	inputs := []string{
		"",
		"[General]\nNumlock=on\n",
		"# comment\n\n[Theme]\nCurrent=x\n; other\nbroken line\n[Users",
		"[Theme]\r\nCurrent=a\r\n",
	}
	for _, in := range inputs {
		if got := ParseDocument(in).String(); got != in {
			t.Fatalf("String() = %q, want %q", got, in)
		}
	}
}

func TestSetCurrentReplacesInPlace(t *testing.T) {
	in := "# SDDM config\n[General]\nNumlock=on\n\n[Theme]\nCurrent=old\nFontSize=12\n\n[Users]\nMinimumUid=1000\n"
	doc := ParseDocument(in)
	doc.SetCurrent("new")

	want := strings.Replace(in, "Current=old", "Current=new", 1)
	if got := doc.String(); got != want {
		t.Fatalf("SetCurrent() = %q, want %q", got, want)
	}
}

func TestSetCurrentKeepsSpacing(t *testing.T) {
	doc := ParseDocument("[Theme]\n  Current = old  \n")
	doc.SetCurrent("maya")
	if got, want := doc.String(), "[Theme]\n  Current = maya  \n"; got != want {
		t.Fatalf("SetCurrent() = %q, want %q", got, want)
	}
}

func TestSetCurrentInsertsAfterHeader(t *testing.T) {
	doc := ParseDocument("[Theme]\nFontSize=12\n\n[General]\nFoo=bar\n")
	doc.SetCurrent("breeze")
	want := "[Theme]\nCurrent=breeze\nFontSize=12\n\n[General]\nFoo=bar\n"
	if got := doc.String(); got != want {
		t.Fatalf("SetCurrent() = %q, want %q", got, want)
	}
}

func TestSetCurrentInsertsAfterUnterminatedHeader(t *testing.T) {
	doc := ParseDocument("[General]\nFoo=bar\n[Theme]")
	doc.SetCurrent("breeze")
	want := "[General]\nFoo=bar\n[Theme]\nCurrent=breeze\n"
	if got := doc.String(); got != want {
		t.Fatalf("SetCurrent() = %q, want %q", got, want)
	}
}

func TestSetCurrentAppendsSection(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "[Theme]\nCurrent=aerial\n"},
		{"existing content", "[General]\nHaltCommand=/usr/bin/systemctl poweroff\n",
			"[General]\nHaltCommand=/usr/bin/systemctl poweroff\n\n[Theme]\nCurrent=aerial\n"},
		{"trailing blank", "[General]\nA=1\n\n", "[General]\nA=1\n\n[Theme]\nCurrent=aerial\n"},
		{"no trailing newline", "[General]\nA=1", "[General]\nA=1\n\n[Theme]\nCurrent=aerial\n"},
		{"crlf", "[General]\r\nA=1\r\n", "[General]\r\nA=1\r\n\r\n[Theme]\r\nCurrent=aerial\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := ParseDocument(tt.in)
			doc.SetCurrent("aerial")
			if got := doc.String(); got != tt.want {
				t.Fatalf("SetCurrent() = %q, want %q", got, tt.want)
			}
			if !strings.HasPrefix(doc.String(), tt.in) {
				t.Fatalf("existing content altered: %q", doc.String())
			}
		})
	}
}

func TestSetCurrentRoundTripAndIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"[Theme]\nCurrent=Y\n",
		"[Theme]\n",
		"[General]\nNumlock=on\n",
		"# only a comment",
		"[Theme]\nCurrent=\n",
		"[Theme]\nCurrent=a\n[X]\n[Theme]\nCurrent=b\n",
	}

	for _, in := range inputs {
		once := ParseDocument(in)
		once.SetCurrent("X")
		got, ok := ParseDocument(once.String()).Current()
		if !ok || got != "X" {
			t.Fatalf("input %q: re-read Current() = (%q, %v), want X", in, got, ok)
		}

		twice := ParseDocument(once.String())
		twice.SetCurrent("X")
		if twice.String() != once.String() {
			t.Fatalf("input %q: second write changed file: %q vs %q", in, twice.String(), once.String())
		}
	}
}

func TestDocumentCloneIsIndependent(t *testing.T) {
	doc := ParseDocument("[Theme]\nCurrent=a\n")
	clone := doc.Clone()
	clone.SetCurrent("b")

	if got, _ := doc.Current(); got != "a" {
		t.Fatalf("original changed to %q", got)
	}
	if got, _ := clone.Current(); got != "b" {
		t.Fatalf("clone Current() = %q, want b", got)
	}
}
