package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// EditKeyMap is the set of bindings the single-line editor understands.
type EditKeyMap struct {
	CharacterForward        key.Binding
	CharacterBackward       key.Binding
	WordForward             key.Binding
	WordBackward            key.Binding
	DeleteWordBackward      key.Binding
	DeleteCharacterBackward key.Binding
	DeleteCharacterForward  key.Binding
	DeleteAfterCursor       key.Binding
	DeleteBeforeCursor      key.Binding
	LineStart               key.Binding
	LineEnd                 key.Binding
	Paste                   key.Binding
}

// DefaultEditKeyMap mirrors the emacs-style bindings of bubbles/textinput.
func DefaultEditKeyMap() EditKeyMap {
	return EditKeyMap{
		CharacterForward:        key.NewBinding(key.WithKeys("right", "ctrl+f")),
		CharacterBackward:       key.NewBinding(key.WithKeys("left", "ctrl+b")),
		WordForward:             key.NewBinding(key.WithKeys("alt+right", "ctrl+right", "alt+f")),
		WordBackward:            key.NewBinding(key.WithKeys("alt+left", "ctrl+left", "alt+b")),
		DeleteWordBackward:      key.NewBinding(key.WithKeys("alt+backspace", "ctrl+w")),
		DeleteCharacterBackward: key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		DeleteCharacterForward:  key.NewBinding(key.WithKeys("delete", "ctrl+d")),
		DeleteAfterCursor:       key.NewBinding(key.WithKeys("ctrl+k")),
		DeleteBeforeCursor:      key.NewBinding(key.WithKeys("ctrl+u")),
		LineStart:               key.NewBinding(key.WithKeys("home", "ctrl+a")),
		LineEnd:                 key.NewBinding(key.WithKeys("end", "ctrl+e")),
		Paste:                   key.NewBinding(key.WithKeys("ctrl+v")),
	}
}

// EditBuffer is the text being typed on the Add and Edit screens.
// The cursor is a rune index in [0, len(value)].
type EditBuffer struct {
	KeyMap EditKeyMap

	value  []rune
	cursor int
}

// NewEditBuffer returns an empty buffer with the default key map.
func NewEditBuffer() EditBuffer {
	return EditBuffer{KeyMap: DefaultEditKeyMap()}
}

// Value returns the buffer contents.
func (b EditBuffer) Value() string {
	return string(b.value)
}

// SetValue replaces the contents and moves the cursor to the end.
func (b *EditBuffer) SetValue(s string) {
	b.value = []rune(sanitize(s))
	b.cursor = len(b.value)
}

// Reset empties the buffer.
func (b *EditBuffer) Reset() {
	b.value = nil
	b.cursor = 0
}

// ValueAndReset returns the contents and empties the buffer.
func (b *EditBuffer) ValueAndReset() string {
	v := b.Value()
	b.Reset()
	return v
}

// Cursor returns the cursor position in runes.
func (b EditBuffer) Cursor() int {
	return b.cursor
}

// VisualCursor returns the cursor position in terminal columns.
func (b EditBuffer) VisualCursor() int {
	return runewidth.StringWidth(string(b.value[:b.cursor]))
}

// VisualScroll returns how many columns must be scrolled off the left edge
// so the cursor stays visible in a field width columns wide. The result
// always falls on a rune boundary.
func (b EditBuffer) VisualScroll(width int) int {
	want := b.VisualCursor() - max(width, 1) + 1
	scroll := 0
	for _, r := range b.value {
		if scroll >= want {
			break
		}
		scroll += runewidth.RuneWidth(r)
	}
	return scroll
}

// InsertString inserts s at the cursor.
func (b *EditBuffer) InsertString(s string) {
	runes := []rune(sanitize(s))
	if len(runes) == 0 {
		return
	}
	tail := append(runes, b.value[b.cursor:]...)
	b.value = append(b.value[:b.cursor], tail...)
	b.cursor += len(runes)
}

// HandleKey applies a key press to the buffer. It reports whether the
// buffer understood the key. Paste is left to the caller, which owns the
// clipboard.
func (b *EditBuffer) HandleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, b.KeyMap.CharacterForward):
		b.cursor = min(b.cursor+1, len(b.value))
	case key.Matches(msg, b.KeyMap.CharacterBackward):
		b.cursor = max(b.cursor-1, 0)
	case key.Matches(msg, b.KeyMap.WordForward):
		b.wordForward()
	case key.Matches(msg, b.KeyMap.WordBackward):
		b.wordBackward()
	case key.Matches(msg, b.KeyMap.DeleteWordBackward):
		end := b.cursor
		b.wordBackward()
		b.value = append(b.value[:b.cursor], b.value[end:]...)
	case key.Matches(msg, b.KeyMap.DeleteCharacterBackward):
		if b.cursor > 0 {
			b.value = append(b.value[:b.cursor-1], b.value[b.cursor:]...)
			b.cursor--
		}
	case key.Matches(msg, b.KeyMap.DeleteCharacterForward):
		if b.cursor < len(b.value) {
			b.value = append(b.value[:b.cursor], b.value[b.cursor+1:]...)
		}
	case key.Matches(msg, b.KeyMap.DeleteAfterCursor):
		b.value = b.value[:b.cursor]
	case key.Matches(msg, b.KeyMap.DeleteBeforeCursor):
		b.value = b.value[b.cursor:]
		b.cursor = 0
	case key.Matches(msg, b.KeyMap.LineStart):
		b.cursor = 0
	case key.Matches(msg, b.KeyMap.LineEnd):
		b.cursor = len(b.value)
	case msg.Type == tea.KeySpace:
		b.InsertString(" ")
	case msg.Type == tea.KeyRunes && !msg.Alt:
		b.InsertString(string(msg.Runes))
	default:
		return false
	}
	return true
}

func (b *EditBuffer) wordForward() {
	i := b.cursor
	for i < len(b.value) && b.value[i] == ' ' {
		i++
	}
	for i < len(b.value) && b.value[i] != ' ' {
		i++
	}
	b.cursor = i
}

func (b *EditBuffer) wordBackward() {
	i := b.cursor
	for i > 0 && b.value[i-1] == ' ' {
		i--
	}
	for i > 0 && b.value[i-1] != ' ' {
		i--
	}
	b.cursor = i
}

// sanitize flattens input to a single line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
