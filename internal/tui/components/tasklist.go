package components

import (
	"fmt"

	"github.com/hy4ri/tasklist-tui/internal/task"
	"github.com/hy4ri/tasklist-tui/internal/tui/styles"
)

// TaskListModel renders the bordered, scrollable list of tasks.
// It keeps its scroll offset between frames so the selection stays visible.
type TaskListModel struct {
	items         []task.Item
	selected      int
	hasSelection  bool
	offset        int
	width, height int
	title         string
	emptyMessage  string
}

// NewTaskList creates a new TaskListModel.
func NewTaskList() *TaskListModel {
	return &TaskListModel{
		title:        "TODO",
		emptyMessage: "No tasks yet. Press a to add one.",
	}
}

// SetItems sets the rows to render.
func (t *TaskListModel) SetItems(items []task.Item) {
	t.items = items
}

// Select sets the highlighted row. ok=false clears the highlight.
func (t *TaskListModel) Select(i int, ok bool) {
	t.selected = i
	t.hasSelection = ok && i >= 0
}

// SetSize implements Component.
func (t *TaskListModel) SetSize(width, height int) {
	t.width = width
	t.height = height
}

// Offset returns the index of the first visible row.
func (t *TaskListModel) Offset() int {
	return t.offset
}

// View implements Component.
func (t *TaskListModel) View() string {
	innerW, innerH := t.width-2, t.height-2
	if innerW <= 0 || innerH < 0 {
		return ""
	}

	var lines []string
	if len(t.items) == 0 {
		lines = append(lines, styles.Empty.Render(truncate(" "+t.emptyMessage, innerW)))
	} else {
		t.scrollTo(innerH)
		end := min(t.offset+innerH, len(t.items))
		for i := t.offset; i < end; i++ {
			lines = append(lines, t.renderRow(i, innerW))
		}
	}

	return Frame(styles.Box, t.title, styles.BoxTitle, lines, t.width, t.height)
}

// scrollTo adjusts the offset so the selected row is inside a window of
// visible rows.
func (t *TaskListModel) scrollTo(visible int) {
	if visible <= 0 {
		return
	}
	if t.hasSelection && t.selected < len(t.items) {
		if t.selected < t.offset {
			t.offset = t.selected
		}
		if t.selected >= t.offset+visible {
			t.offset = t.selected - visible + 1
		}
	}
	t.offset = max(min(t.offset, len(t.items)-visible), 0)
}

func (t *TaskListModel) renderRow(i, width int) string {
	item := t.items[i]
	line := truncate(fmt.Sprintf(" %s %s", item.Glyph(), item.Description), width)

	style := styles.TaskItem
	if item.Done {
		style = styles.TaskCompleted
	}
	if t.hasSelection && i == t.selected {
		style = style.Inherit(styles.TaskSelected)
	}
	return style.Width(width).Render(line)
}
