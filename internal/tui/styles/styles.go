// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Frame is the border color of the list and input boxes (tailwind slate-500)
	Frame = lipgloss.Color("#64748B")

	// Highlight is the background of the selected row (tailwind slate-800)
	Highlight = lipgloss.AdaptiveColor{Light: "#CBD5E1", Dark: "#1E293B"}

	// Accent is used for key names in hints and help
	Accent = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	// Done is the foreground of completed tasks (material grey-500)
	Done = lipgloss.Color("#9E9E9E")
)

// Box styles
var (
	// Box is the rounded frame around the task list
	Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Frame)

	// BoxTitle is the title drawn into the top border
	BoxTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	// Input is the frame of the single-line input box
	Input = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder())

	// InputTitle is the input box title
	InputTitle = lipgloss.NewStyle()
)

// Task styles
var (
	// TaskItem is the style for an open task
	TaskItem = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"})

	// TaskCompleted is the style for completed tasks
	TaskCompleted = lipgloss.NewStyle().
			Foreground(Done).
			Strikethrough(true)

	// TaskSelected is layered on top of the row style for the selected row
	TaskSelected = lipgloss.NewStyle().
			Background(Highlight).
			Bold(true)

	// Empty is the placeholder shown in an empty list
	Empty = lipgloss.NewStyle().
		Foreground(Subtle).
		Faint(true).
		Italic(true)
)

// Help styles
var (
	// HelpKey is for key bindings in hints
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	// HelpSeparator is the separator between hint entries
	HelpSeparator = lipgloss.NewStyle().
			Foreground(Subtle)

	// Dialog frames the help overlay
	Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Accent).
		Padding(0, 1)
)
