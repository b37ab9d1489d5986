package logic

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tasklist-tui/internal/tui/state"
)

// handleMainKey handles key presses on the task list screen.
func (h *Handler) handleMainKey(msg tea.KeyMsg) {
	switch h.Keymap.MainAction(msg) {
	case state.ActionAdd:
		h.Input.Reset()
		h.CurrentScreen = state.ScreenAdd

	case state.ActionEdit:
		h.handleEdit()

	case state.ActionQuit:
		h.CurrentScreen = state.ScreenExit

	case state.ActionToggle:
		h.handleToggle()

	case state.ActionUp:
		if len(h.Items) > 0 {
			h.ListState.SelectPrevious(len(h.Items))
		}

	case state.ActionDown:
		if len(h.Items) > 0 {
			h.ListState.SelectNext(len(h.Items))
		}

	case state.ActionDelete:
		h.handleDelete()

	case state.ActionCopy:
		h.handleCopy()

	case state.ActionHelp:
		h.ShowHelp = true
	}
}

// handleEdit copies the selected item into the edit buffer.
func (h *Handler) handleEdit() {
	if len(h.Items) == 0 {
		return
	}
	i, ok := h.ListState.Selected()
	if !ok || i >= len(h.Items) {
		return
	}

	item := h.Items[i]
	h.Input.SetValue(item.Description)
	h.CurrentlyEditing = &item
	h.CurrentScreen = state.ScreenEdit
}

// handleToggle flips the done flag of the selected item in place.
func (h *Handler) handleToggle() {
	item := h.SelectedItem()
	if item == nil {
		return
	}
	*item = item.Toggled()

	if item.Done && h.Config.UI.NotifyOnComplete {
		h.notifyDone(item.Description)
	}
}

// handleDelete removes the selected item.
func (h *Handler) handleDelete() {
	i, ok := h.ListState.Selected()
	if !ok || i >= len(h.Items) {
		return
	}
	h.Logger.Debug("removing task", "index", i, "description", h.Items[i].Description)
	h.RemoveAt(i)
}

// handleCopy copies the selected task description to clipboard.
func (h *Handler) handleCopy() {
	item := h.SelectedItem()
	if item == nil {
		return
	}
	if err := h.Clipboard.WriteAll(item.Description); err != nil {
		h.Logger.Warn("copy to clipboard failed", "err", err)
	}
}
