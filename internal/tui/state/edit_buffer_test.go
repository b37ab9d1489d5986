package state

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestEditBufferTyping(t *testing.T) {
	b := NewEditBuffer()

	b.HandleKey(runes("h"))
	b.HandleKey(runes("i"))
	b.HandleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	b.HandleKey(runes("yo"))

	if b.Value() != "hi yo" {
		t.Errorf("expected %q, got %q", "hi yo", b.Value())
	}
	if b.Cursor() != 5 {
		t.Errorf("expected cursor 5, got %d", b.Cursor())
	}
}

func TestEditBufferEditingKeys(t *testing.T) {
	tests := []struct {
		name       string
		start      string
		keys       []tea.KeyMsg
		want       string
		wantCursor int
	}{
		{
			name:       "backspace at end",
			start:      "abc",
			keys:       []tea.KeyMsg{{Type: tea.KeyBackspace}},
			want:       "ab",
			wantCursor: 2,
		},
		{
			name:       "backspace at start is noop",
			start:      "abc",
			keys:       []tea.KeyMsg{{Type: tea.KeyHome}, {Type: tea.KeyBackspace}},
			want:       "abc",
			wantCursor: 0,
		},
		{
			name:       "delete forward",
			start:      "abc",
			keys:       []tea.KeyMsg{{Type: tea.KeyHome}, {Type: tea.KeyDelete}},
			want:       "bc",
			wantCursor: 0,
		},
		{
			name:       "insert in the middle",
			start:      "ac",
			keys:       []tea.KeyMsg{{Type: tea.KeyLeft}, runes("b")},
			want:       "abc",
			wantCursor: 2,
		},
		{
			name:       "right clamps at end",
			start:      "ab",
			keys:       []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyRight}},
			want:       "ab",
			wantCursor: 2,
		},
		{
			name:       "left clamps at start",
			start:      "ab",
			keys:       []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyLeft}, {Type: tea.KeyLeft}},
			want:       "ab",
			wantCursor: 0,
		},
		{
			name:       "delete word backward",
			start:      "buy oat milk",
			keys:       []tea.KeyMsg{{Type: tea.KeyCtrlW}},
			want:       "buy oat ",
			wantCursor: 8,
		},
		{
			name:       "kill to end",
			start:      "buy milk",
			keys:       []tea.KeyMsg{{Type: tea.KeyCtrlA}, {Type: tea.KeyRight}, {Type: tea.KeyCtrlK}},
			want:       "b",
			wantCursor: 1,
		},
		{
			name:       "kill to start",
			start:      "buy milk",
			keys:       []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyCtrlU}},
			want:       "k",
			wantCursor: 0,
		},
		{
			name:       "end after home",
			start:      "abc",
			keys:       []tea.KeyMsg{{Type: tea.KeyHome}, {Type: tea.KeyEnd}},
			want:       "abc",
			wantCursor: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewEditBuffer()
			b.SetValue(tt.start)
			for _, k := range tt.keys {
				b.HandleKey(k)
			}
			if b.Value() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, b.Value())
			}
			if b.Cursor() != tt.wantCursor {
				t.Errorf("expected cursor %d, got %d", tt.wantCursor, b.Cursor())
			}
		})
	}
}

func TestEditBufferIgnoresUnknownKeys(t *testing.T) {
	b := NewEditBuffer()
	b.SetValue("x")

	if b.HandleKey(tea.KeyMsg{Type: tea.KeyF1}) {
		t.Error("expected F1 to be ignored")
	}
	if b.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z"), Alt: true}) {
		t.Error("expected alt+z to be ignored")
	}
	if b.Value() != "x" {
		t.Errorf("unexpected value %q", b.Value())
	}
}

func TestEditBufferValueAndReset(t *testing.T) {
	b := NewEditBuffer()
	b.SetValue("milk")

	if got := b.ValueAndReset(); got != "milk" {
		t.Errorf("expected milk, got %q", got)
	}
	if b.Value() != "" || b.Cursor() != 0 {
		t.Errorf("expected empty buffer, got %q cursor %d", b.Value(), b.Cursor())
	}
}

func TestEditBufferInsertStringFlattensLines(t *testing.T) {
	b := NewEditBuffer()
	b.InsertString("one\ntwo\tthree\x07")

	if b.Value() != "one two three" {
		t.Errorf("expected single line, got %q", b.Value())
	}
}

func TestEditBufferVisualCursor(t *testing.T) {
	b := NewEditBuffer()
	b.SetValue("日本a")

	if got := b.VisualCursor(); got != 5 {
		t.Errorf("expected 5 columns for two wide runes and one narrow, got %d", got)
	}

	b.HandleKey(tea.KeyMsg{Type: tea.KeyLeft})
	if got := b.VisualCursor(); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
}

func TestEditBufferVisualScroll(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		left   int // presses of Left after SetValue
		width  int
		scroll int
	}{
		{"fits", "hello", 0, 10, 0},
		{"cursor on last column", "abcdefghi", 0, 10, 0},
		{"one past", "abcdefghij", 0, 10, 1},
		{"long", "abcdefghijklmnopqrst", 0, 10, 11},
		{"cursor back in view", "abcdefghijklmnopqrst", 15, 10, 0},
		{"wide runes land on boundary", "日本語テキスト", 0, 6, 10},
		{"zero width treated as one", "abc", 0, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewEditBuffer()
			b.SetValue(tt.value)
			for i := 0; i < tt.left; i++ {
				b.HandleKey(tea.KeyMsg{Type: tea.KeyLeft})
			}
			got := b.VisualScroll(tt.width)
			if got != tt.scroll {
				t.Errorf("expected scroll %d, got %d", tt.scroll, got)
			}
			if caret := b.VisualCursor() - got; caret < 0 || caret >= max(tt.width, 1) {
				t.Errorf("caret column %d outside [0,%d)", caret, max(tt.width, 1))
			}
		})
	}
}
