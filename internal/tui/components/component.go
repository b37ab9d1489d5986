// Package components provides reusable UI components for the TUI.
package components

// Component is a sub-view that renders one part of the UI.
// Components hold render state only; key handling lives in the logic package.
type Component interface {
	// View renders the component to a string.
	View() string

	// SetSize updates the component's dimensions.
	SetSize(width, height int)
}

var (
	_ Component = (*TaskListModel)(nil)
	_ Component = (*InputBoxModel)(nil)
	_ Component = (*HelpModel)(nil)
)
