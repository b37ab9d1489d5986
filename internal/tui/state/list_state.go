package state

// ListState tracks the selection cursor of the main task list.
// The zero value has nothing selected.
type ListState struct {
	selected int
	valid    bool
}

// Selected returns the selected index and whether anything is selected.
func (l ListState) Selected() (int, bool) {
	return l.selected, l.valid
}

// Select selects index i. A negative index clears the selection.
func (l *ListState) Select(i int) {
	if i < 0 {
		l.SelectNone()
		return
	}
	l.selected = i
	l.valid = true
}

// SelectNone clears the selection.
func (l *ListState) SelectNone() {
	l.selected = 0
	l.valid = false
}

// SelectNext moves the cursor one row down in a list of n rows.
// Clamps at the last row; with nothing selected it selects the first row.
func (l *ListState) SelectNext(n int) {
	if n <= 0 {
		l.SelectNone()
		return
	}
	if !l.valid {
		l.Select(0)
		return
	}
	l.Select(min(l.selected+1, n-1))
}

// SelectPrevious moves the cursor one row up in a list of n rows.
// Clamps at the first row; with nothing selected it selects the last row.
func (l *ListState) SelectPrevious(n int) {
	if n <= 0 {
		l.SelectNone()
		return
	}
	if !l.valid {
		l.Select(n - 1)
		return
	}
	l.Select(max(l.selected-1, 0))
}

// Clamp repairs the selection after the list shrank to n rows.
func (l *ListState) Clamp(n int) {
	if n <= 0 {
		l.SelectNone()
		return
	}
	if l.valid && l.selected >= n {
		l.selected = n - 1
	}
}
