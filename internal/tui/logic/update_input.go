package logic

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tasklist-tui/internal/task"
	"github.com/hy4ri/tasklist-tui/internal/tui/state"
)

// handleAddKey handles key presses while composing a new task.
func (h *Handler) handleAddKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, h.Keymap.Cancel):
		h.Input.Reset()
		h.CurrentScreen = state.ScreenMain

	case key.Matches(msg, h.Keymap.Confirm):
		h.AddItem(task.New(h.Input.ValueAndReset()))
		h.CurrentScreen = state.ScreenMain

	default:
		h.forwardToInput(msg)
	}
}

// handleEditKey handles key presses while editing an existing task.
func (h *Handler) handleEditKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, h.Keymap.Cancel):
		h.Input.Reset()
		h.CurrentlyEditing = nil
		h.CurrentScreen = state.ScreenMain

	case key.Matches(msg, h.Keymap.Confirm):
		i, ok := h.ListState.Selected()
		if ok && i < len(h.Items) && h.CurrentlyEditing != nil {
			h.Replace(task.Item{
				Done:        h.CurrentlyEditing.Done,
				Description: h.Input.ValueAndReset(),
			}, i)
		}
		h.Input.Reset()
		h.CurrentlyEditing = nil
		h.CurrentScreen = state.ScreenMain

	default:
		h.forwardToInput(msg)
	}
}

// forwardToInput passes a raw key to the edit buffer. Paste is resolved here
// because the handler owns the clipboard.
func (h *Handler) forwardToInput(msg tea.KeyMsg) {
	if key.Matches(msg, h.Input.KeyMap.Paste) {
		text, err := h.Clipboard.ReadAll()
		if err != nil {
			h.Logger.Warn("paste from clipboard failed", "err", err)
			return
		}
		h.Input.InsertString(text)
		return
	}
	h.Input.HandleKey(msg)
}
