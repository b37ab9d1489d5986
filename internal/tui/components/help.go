package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/tasklist-tui/internal/tui/styles"
)

const helpGlamourStyle = "dark"

// HelpModel renders the keyboard shortcut overlay.
// The keymap is turned into a markdown document and rendered with glamour;
// the result is cached per width.
type HelpModel struct {
	width, height int
	keymap        [][]string

	cacheWidth int
	cache      string
}

// NewHelp creates a new HelpModel.
func NewHelp() *HelpModel {
	return &HelpModel{}
}

// SetSize implements Component.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// SetKeymap sets the help items. Items with an empty description are
// section headers; items with both fields empty are separators.
func (h *HelpModel) SetKeymap(items [][]string) {
	h.keymap = items
	h.cache = ""
}

// Markdown returns the help document source.
func (h *HelpModel) Markdown() string {
	var b strings.Builder
	b.WriteString("# Keyboard Shortcuts\n")

	inTable := false
	for _, item := range h.keymap {
		if len(item) < 2 {
			continue
		}
		key, desc := item[0], item[1]
		switch {
		case key == "" && desc == "":
			inTable = false
		case desc == "":
			b.WriteString("\n## " + key + "\n\n")
			b.WriteString("| Key | Action |\n|---|---|\n")
			inTable = true
		default:
			if !inTable {
				b.WriteString("\n| Key | Action |\n|---|---|\n")
				inTable = true
			}
			b.WriteString("| `" + key + "` | " + desc + " |\n")
		}
	}
	b.WriteString("\nPress any key to close.\n")
	return b.String()
}

// View implements Component.
func (h *HelpModel) View() string {
	if len(h.keymap) == 0 {
		return styles.Dialog.Render("No keybindings registered")
	}

	wrap := min(max(h.width-6, 20), 72)
	if h.cache == "" || h.cacheWidth != wrap {
		h.cache = h.render(wrap)
		h.cacheWidth = wrap
	}

	box := styles.Dialog.Render(strings.Trim(h.cache, "\n"))
	if h.height > 0 && lipgloss.Height(box) > h.height {
		// Keep the heading on screen in short terminals.
		box = strings.Join(strings.Split(box, "\n")[:h.height], "\n")
	}
	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, box)
}

func (h *HelpModel) render(wrap int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(helpGlamourStyle),
		glamour.WithWordWrap(wrap),
	)
	if err == nil {
		if out, err := r.Render(h.Markdown()); err == nil {
			return out
		}
	}
	return h.plain()
}

// plain renders the items without markdown, used if glamour fails.
func (h *HelpModel) plain() string {
	var b strings.Builder
	for _, item := range h.keymap {
		if len(item) < 2 {
			continue
		}
		switch {
		case item[0] == "" && item[1] == "":
			b.WriteString("\n")
		case item[1] == "":
			b.WriteString(styles.HelpKey.Render(item[0]) + "\n")
		default:
			keyStyle := styles.HelpKey.Width(10).Align(lipgloss.Right).PaddingRight(2)
			b.WriteString(keyStyle.Render(item[0]) + styles.HelpDesc.Render(item[1]) + "\n")
		}
	}
	return b.String()
}
