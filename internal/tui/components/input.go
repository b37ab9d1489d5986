package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/hy4ri/tasklist-tui/internal/tui/styles"
	"github.com/mattn/go-runewidth"
)

// InputBoxModel renders a single-line bordered text field with a caret.
// The caller supplies the horizontal scroll and the caret column; the box
// only draws them.
type InputBoxModel struct {
	cursor cursor.Model
	width  int
	title  string
	value  string
	scroll int
	caret  int
}

// NewInputBox creates a new InputBoxModel with a non-blinking caret.
func NewInputBox() *InputBoxModel {
	c := cursor.New()
	c.SetMode(cursor.CursorStatic)
	c.Focus()
	return &InputBoxModel{cursor: c}
}

// SetContent sets what the box shows. caretX counts columns from the box's
// left edge, so 1 is the first column inside the border.
func (m *InputBoxModel) SetContent(title, value string, scroll, caretX int) {
	m.title = title
	m.value = value
	m.scroll = scroll
	m.caret = caretX
}

// SetSize implements Component. The box is always three rows tall.
func (m *InputBoxModel) SetSize(width, _ int) {
	m.width = width
}

// View implements Component.
func (m *InputBoxModel) View() string {
	innerW := m.width - 2
	if innerW <= 0 {
		return ""
	}
	return Frame(styles.Input, m.title, styles.InputTitle, []string{m.renderLine(innerW)}, m.width, 3)
}

// renderLine returns the visible slice of the value with the caret cell
// drawn in reverse video.
func (m *InputBoxModel) renderLine(innerW int) string {
	caretCol := m.caret - 1 + m.scroll

	var before, after strings.Builder
	caretChar := " "
	col := 0
	for _, r := range m.value {
		w := runewidth.RuneWidth(r)
		switch {
		case col < m.scroll:
		case col+w > m.scroll+innerW:
		case col == caretCol:
			caretChar = string(r)
		case col < caretCol:
			before.WriteRune(r)
		default:
			after.WriteRune(r)
		}
		col += w
	}

	m.cursor.SetChar(caretChar)
	line := before.String() + m.cursor.View() + after.String()
	if caretChar == " " && runewidth.StringWidth(before.String())+1 > innerW {
		// No room for the trailing caret cell.
		line = before.String()
	}
	return line
}
