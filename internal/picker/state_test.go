package picker

import (
	"testing"

	"github.com/themewalker/themewalker/internal/theme"
)

func catalog(ids ...string) theme.Catalog {
	out := make(theme.Catalog, 0, len(ids))
	for _, id := range ids {
		out = append(out, theme.Theme{ID: id})
	}
	return out
}

func TestNewStartsOnCurrentTheme(t *testing.T) {
	s := New(catalog("alpha", "beta", "gamma"), "beta", Options{})
	if s.Index() != 1 {
		t.Fatalf("Index() = %d, want 1", s.Index())
	}
	if s.Mode() != ModeBrowsing {
		t.Fatalf("Mode() = %v, want browsing", s.Mode())
	}
	if s.Result().Outcome != OutcomeNone {
		t.Fatalf("Outcome = %v before exit, want none", s.Result().Outcome)
	}

	s = New(catalog("alpha", "beta"), "missing", Options{})
	if s.Index() != 0 {
		t.Fatalf("Index() = %d, want 0", s.Index())
	}
}

func TestMoveClamped(t *testing.T) {
	s := New(catalog("a", "b", "c"), "", Options{Wrap: false})

	for i := 0; i < 5; i++ {
		s.MoveDown()
	}
	if s.Index() != 2 {
		t.Fatalf("Index() after repeated MoveDown = %d, want 2", s.Index())
	}

	for i := 0; i < 5; i++ {
		s.MoveUp()
	}
	if s.Index() != 0 {
		t.Fatalf("Index() after repeated MoveUp = %d, want 0", s.Index())
	}
}

func TestMoveWraps(t *testing.T) {
	s := New(catalog("a", "b", "c"), "c", Options{Wrap: true})

	s.MoveDown()
	if s.Index() != 0 {
		t.Fatalf("MoveDown from last = %d, want 0", s.Index())
	}
	s.MoveUp()
	if s.Index() != 2 {
		t.Fatalf("MoveUp from first = %d, want 2", s.Index())
	}
}

func TestTopBottom(t *testing.T) {
	s := New(catalog("a", "b", "c", "d"), "b", Options{})
	s.Bottom()
	if s.Index() != 3 {
		t.Fatalf("Bottom() = %d, want 3", s.Index())
	}
	s.Top()
	if s.Index() != 0 {
		t.Fatalf("Top() = %d, want 0", s.Index())
	}
}

func TestSelectConfirmCarriesPendingTheme(t *testing.T) {
	s := New(catalog("a", "b", "c"), "", Options{Wrap: true})
	s.MoveDown()
	s.Select()

	if s.Mode() != ModeConfirming {
		t.Fatalf("Mode() = %v, want confirming", s.Mode())
	}
	pending, ok := s.Pending()
	if !ok || pending.ID != "b" {
		t.Fatalf("Pending() = (%v, %v), want b", pending, ok)
	}

	// Movement is ignored while confirming.
	s.MoveDown()
	s.MoveDown()
	s.Confirm()

	if !s.Done() {
		t.Fatalf("expected exiting mode, got %v", s.Mode())
	}
	res := s.Result()
	if !res.Selected() || res.Theme.ID != "b" {
		t.Fatalf("Result() = %+v, want selected b", res)
	}
}

func TestCancelReturnsToBrowsing(t *testing.T) {
	s := New(catalog("a", "b", "c"), "c", Options{})
	s.Select()
	s.Cancel()

	if s.Mode() != ModeBrowsing {
		t.Fatalf("Mode() = %v, want browsing", s.Mode())
	}
	if s.Index() != 2 {
		t.Fatalf("Index() = %d, want selection unchanged at 2", s.Index())
	}
	if _, ok := s.Pending(); ok {
		t.Fatalf("Pending() should be empty after cancel")
	}
}

func TestQuit(t *testing.T) {
	s := New(catalog("a"), "", Options{})
	s.Quit()
	if !s.Done() {
		t.Fatalf("expected exiting mode")
	}
	if s.Result().Outcome != OutcomeCancelled {
		t.Fatalf("Outcome = %v, want cancelled", s.Result().Outcome)
	}
}

func TestQuitWhileConfirming(t *testing.T) {
	s := New(catalog("a"), "", Options{})
	s.Select()
	s.Quit()
	if s.Result().Outcome != OutcomeCancelled {
		t.Fatalf("Outcome = %v, want cancelled", s.Result().Outcome)
	}
}

func TestExitingIsTerminal(t *testing.T) {
	s := New(catalog("a", "b"), "", Options{})
	s.Select()
	s.Confirm()

	for _, a := range []Action{ActionUp, ActionDown, ActionSelect, ActionCancel, ActionQuit, ActionConfirm} {
		s.Apply(a)
	}
	if s.Result().Theme.ID != "a" || !s.Result().Selected() {
		t.Fatalf("Result() changed after exit: %+v", s.Result())
	}
}

func TestEmptyCatalog(t *testing.T) {
	s := New(theme.Catalog{}, "breeze", Options{Wrap: true})
	if s.Index() != -1 {
		t.Fatalf("Index() = %d, want -1", s.Index())
	}

	s.MoveDown()
	s.MoveUp()
	s.Bottom()
	s.Select()

	if s.Mode() != ModeBrowsing {
		t.Fatalf("Mode() = %v, want browsing", s.Mode())
	}
	if _, ok := s.Pending(); ok {
		t.Fatalf("empty catalog must not have a pending theme")
	}
	if _, ok := s.Highlighted(); ok {
		t.Fatalf("empty catalog must not have a highlighted theme")
	}

	s.Confirm()
	if s.Done() {
		t.Fatalf("Confirm() without pending theme must not exit")
	}
}

func TestConfirmOutsideConfirmingIsNoop(t *testing.T) {
	s := New(catalog("a"), "", Options{})
	s.Confirm()
	s.Cancel()
	if s.Mode() != ModeBrowsing {
		t.Fatalf("Mode() = %v, want browsing", s.Mode())
	}
}
