package state

import (
	"github.com/hy4ri/tasklist-tui/internal/config"
	"github.com/hy4ri/tasklist-tui/internal/task"
	"github.com/hy4ri/tasklist-tui/internal/tui/components"
)

// Screen represents the current modal screen.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenAdd
	ScreenEdit
	ScreenExit
)

func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "main"
	case ScreenAdd:
		return "add"
	case ScreenEdit:
		return "edit"
	case ScreenExit:
		return "exit"
	}
	return "unknown"
}

// State holds the application state.
// All fields are exported to allow access from logic and ui packages.
// State enforces no screen-transition rules; the logic package does.
type State struct {
	// Dependencies
	Config *config.Config

	// View state
	CurrentScreen Screen

	// Data
	Items []task.Item

	// List state
	ListState ListState

	// Input state (Add and Edit screens)
	Input            EditBuffer
	CurrentlyEditing *task.Item

	// UI state
	Width     int
	Height    int
	ShowHelp  bool
	ShowHints bool

	Keymap KeymapData

	// UI Components
	TaskListComp *components.TaskListModel
	HelpComp     *components.HelpModel
	InputComp    *components.InputBoxModel
}

// New creates the state for a fresh session.
func New(cfg *config.Config) *State {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	km := DefaultKeymap()
	s := &State{
		Config:        cfg,
		CurrentScreen: ScreenMain,
		Input:         NewEditBuffer(),
		ShowHints:     cfg.UI.ShowHints,
		Keymap:        km,
		TaskListComp:  components.NewTaskList(),
		HelpComp:      components.NewHelp(),
		InputComp:     components.NewInputBox(),
	}
	s.HelpComp.SetKeymap(km.HelpItems())
	return s
}

// AddItem appends an item to the end of the list.
func (s *State) AddItem(item task.Item) {
	s.Items = append(s.Items, item)
}

// RemoveAt removes the item at index. It panics if index is out of range.
// The selection is clamped so it keeps pointing at a valid row.
func (s *State) RemoveAt(index int) {
	s.Items = append(s.Items[:index], s.Items[index+1:]...)
	s.ListState.Clamp(len(s.Items))
}

// Replace swaps the item at index for item, keeping order and length.
// It panics if index is out of range.
func (s *State) Replace(item task.Item, index int) {
	s.Items[index] = item
}

// SelectedItem returns a pointer to the selected item, or nil when nothing
// valid is selected.
func (s *State) SelectedItem() *task.Item {
	i, ok := s.ListState.Selected()
	if !ok || i >= len(s.Items) {
		return nil
	}
	return &s.Items[i]
}
