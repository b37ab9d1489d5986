package state

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is a main-screen command resolved from a key press.
type Action string

const (
	ActionNone   Action = ""
	ActionAdd    Action = "add"
	ActionEdit   Action = "edit"
	ActionQuit   Action = "quit"
	ActionToggle Action = "toggle"
	ActionUp     Action = "up"
	ActionDown   Action = "down"
	ActionDelete Action = "delete"
	ActionCopy   Action = "copy"
	ActionHelp   Action = "help"
)

// KeymapData contains the key bindings of the main screen and the shared
// confirm/cancel keys of the input screens.
type KeymapData struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Task actions
	AddTask    key.Binding
	EditTask   key.Binding
	ToggleTask key.Binding
	DeleteTask key.Binding
	CopyTask   key.Binding

	// General
	Help key.Binding
	Quit key.Binding

	// Input screens
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeymap returns the default key bindings.
func DefaultKeymap() KeymapData {
	return KeymapData{
		Up:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		AddTask:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		EditTask:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		ToggleTask: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done/undone")),
		DeleteTask: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		CopyTask:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),

		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),

		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// MainAction resolves a main-screen key press. Unbound keys map to ActionNone.
func (k KeymapData) MainAction(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, k.AddTask):
		return ActionAdd
	case key.Matches(msg, k.EditTask):
		return ActionEdit
	case key.Matches(msg, k.Quit):
		return ActionQuit
	case key.Matches(msg, k.ToggleTask):
		return ActionToggle
	case key.Matches(msg, k.Up):
		return ActionUp
	case key.Matches(msg, k.Down):
		return ActionDown
	case key.Matches(msg, k.DeleteTask):
		return ActionDelete
	case key.Matches(msg, k.CopyTask):
		return ActionCopy
	case key.Matches(msg, k.Help):
		return ActionHelp
	}
	return ActionNone
}

// ShortHelp returns the bindings shown in the main-screen hint line.
func (k KeymapData) ShortHelp() []key.Binding {
	return []key.Binding{k.AddTask, k.EditTask, k.ToggleTask, k.DeleteTask, k.Help, k.Quit}
}

// InputHelp returns the bindings shown under the input box.
func (k KeymapData) InputHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

// HelpItems returns a slice of key-description pairs for the help view.
// Rows with an empty description are section headers.
func (k KeymapData) HelpItems() [][]string {
	return [][]string{
		{"Navigation", ""},
		{"↑/↓", "Move selection (stops at the ends)"},
		{"", ""},
		{"Task Actions", ""},
		{k.AddTask.Help().Key, "Add new task"},
		{k.EditTask.Help().Key, "Edit selected task"},
		{k.ToggleTask.Help().Key, "Mark done/undone"},
		{k.DeleteTask.Help().Key, "Delete selected task"},
		{k.CopyTask.Help().Key, "Copy description to clipboard"},
		{"", ""},
		{"Editing", ""},
		{k.Confirm.Help().Key, "Save"},
		{k.Cancel.Help().Key, "Cancel"},
		{"ctrl+v", "Paste"},
		{"", ""},
		{"General", ""},
		{k.Help.Help().Key, "Toggle help"},
		{k.Quit.Help().Key, "Quit"},
	}
}
