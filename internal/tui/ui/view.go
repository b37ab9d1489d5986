// Package ui renders the active screen from the application state.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/hy4ri/tasklist-tui/internal/tui/components"
	"github.com/hy4ri/tasklist-tui/internal/tui/state"
	"github.com/hy4ri/tasklist-tui/internal/tui/styles"
)

const (
	inputHeight   = 3
	minFrameWidth = 3
)

// Titles of the input screens.
const (
	TitleAdd  = "New item"
	TitleEdit = "Edit item"
)

// Renderer draws a full frame for the current screen. It never inspects
// what changed since the last frame.
type Renderer struct {
	*state.State
}

// NewRenderer creates a Renderer reading from s.
func NewRenderer(s *state.State) *Renderer {
	return &Renderer{State: s}
}

// View renders the current screen.
func (r *Renderer) View() string {
	if r.Width == 0 || r.Height == 0 {
		return ""
	}

	if r.ShowHelp && r.CurrentScreen != state.ScreenExit {
		return place(r.HelpComp, r.Width, r.Height)
	}

	switch r.CurrentScreen {
	case state.ScreenAdd:
		return r.renderInput(TitleAdd)
	case state.ScreenEdit:
		// Nothing to edit; show the list instead.
		if r.CurrentlyEditing == nil {
			return r.renderMain()
		}
		return r.renderInput(TitleEdit)
	case state.ScreenExit:
		return ""
	default:
		return r.renderMain()
	}
}

// renderMain renders the bordered task list and the optional hint line.
func (r *Renderer) renderMain() string {
	listHeight := r.Height
	var hints string
	if r.ShowHints && r.Height > 3 {
		hints = renderHints(r.Keymap.ShortHelp(), r.Width)
		listHeight -= lipgloss.Height(hints)
	}

	r.TaskListComp.SetItems(r.Items)
	r.TaskListComp.Select(r.ListState.Selected())
	list := place(r.TaskListComp, r.Width, listHeight)

	if hints == "" {
		return list
	}
	return lipgloss.JoinVertical(lipgloss.Left, list, hints)
}

// renderInput renders the single-line input box of the Add and Edit screens.
func (r *Renderer) renderInput(title string) string {
	width := InputAreaWidth(r.Width)
	scroll := r.Input.VisualScroll(max(width-2, 1))
	x, _ := CaretPosition(r.Input, width)

	r.InputComp.SetContent(title, r.Input.Value(), scroll, x)

	box := place(r.InputComp, width, inputHeight)
	if r.ShowHints {
		box = lipgloss.JoinVertical(lipgloss.Left, box, renderHints(r.Keymap.InputHelp(), r.Width))
	}
	return box
}

// place sizes c to width x height and renders it.
func place(c components.Component, width, height int) string {
	c.SetSize(width, height)
	return c.View()
}

// InputAreaWidth returns the outer width of the input box for a terminal
// width columns wide.
func InputAreaWidth(width int) int {
	return max(width, minFrameWidth) - minFrameWidth
}

// CaretPosition returns where the caret sits relative to the top-left corner
// of an input box areaWidth columns wide: one column past the left border
// plus the cursor's offset into the visible text, on the row below the top
// border.
func CaretPosition(b state.EditBuffer, areaWidth int) (x, y int) {
	scroll := b.VisualScroll(max(areaWidth-2, 1))
	return max(b.VisualCursor(), scroll) - scroll + 1, 1
}

// renderHints renders a one-line list of key hints.
func renderHints(bindings []key.Binding, width int) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, styles.HelpKey.Render(h.Key)+" "+styles.HelpDesc.Render(h.Desc))
	}
	line := " " + strings.Join(parts, styles.HelpSeparator.Render(" • "))
	if xansi.StringWidth(line) > width {
		line = xansi.Truncate(line, width, "…")
	}
	return line
}
