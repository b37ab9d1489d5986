package task

import "testing"

func TestNew(t *testing.T) {
	i := New("buy milk")
	if i.Done || i.Description != "buy milk" {
		t.Errorf("unexpected item %+v", i)
	}
}

func TestToggled(t *testing.T) {
	i := New("x")
	done := i.Toggled()

	if i.Done {
		t.Error("Toggled must not modify the receiver")
	}
	if !done.Done || done.Description != "x" {
		t.Errorf("expected done copy, got %+v", done)
	}
	if done.Toggled() != i {
		t.Error("toggling twice should restore the item")
	}
}

func TestGlyph(t *testing.T) {
	if got := New("x").Glyph(); got != "☐" {
		t.Errorf("expected open box, got %q", got)
	}
	if got := New("x").Toggled().Glyph(); got != "✓" {
		t.Errorf("expected check mark, got %q", got)
	}
}
