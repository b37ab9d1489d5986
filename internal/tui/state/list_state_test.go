package state

import "testing"

func TestListStateNavigation(t *testing.T) {
	type step struct {
		op     string
		n      int
		want   int
		wantOK bool
	}

	tests := []struct {
		name  string
		steps []step
	}{
		{
			name: "down from nothing selects first",
			steps: []step{
				{"next", 3, 0, true},
				{"next", 3, 1, true},
				{"next", 3, 2, true},
				{"next", 3, 2, true}, // clamped, no wrap
			},
		},
		{
			name: "up from nothing selects last",
			steps: []step{
				{"prev", 3, 2, true},
				{"prev", 3, 1, true},
				{"prev", 3, 0, true},
				{"prev", 3, 0, true}, // clamped, no wrap
			},
		},
		{
			name: "empty list never selects",
			steps: []step{
				{"next", 0, 0, false},
				{"prev", 0, 0, false},
			},
		},
		{
			name: "single row",
			steps: []step{
				{"next", 1, 0, true},
				{"next", 1, 0, true},
				{"prev", 1, 0, true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l ListState
			for i, s := range tt.steps {
				switch s.op {
				case "next":
					l.SelectNext(s.n)
				case "prev":
					l.SelectPrevious(s.n)
				}
				got, ok := l.Selected()
				if ok != s.wantOK || (ok && got != s.want) {
					t.Fatalf("step %d (%s): expected (%d, %v), got (%d, %v)", i, s.op, s.want, s.wantOK, got, ok)
				}
			}
		})
	}
}

func TestListStateClamp(t *testing.T) {
	var l ListState
	l.Select(4)

	l.Clamp(5)
	if i, _ := l.Selected(); i != 4 {
		t.Errorf("expected 4 unchanged, got %d", i)
	}

	l.Clamp(2)
	if i, ok := l.Selected(); !ok || i != 1 {
		t.Errorf("expected (1, true), got (%d, %v)", i, ok)
	}

	l.Clamp(0)
	if _, ok := l.Selected(); ok {
		t.Error("expected selection cleared")
	}

	// Clamp never creates a selection.
	l.Clamp(3)
	if _, ok := l.Selected(); ok {
		t.Error("expected still nothing selected")
	}
}

func TestListStateSelectNegative(t *testing.T) {
	var l ListState
	l.Select(2)
	l.Select(-1)
	if _, ok := l.Selected(); ok {
		t.Error("negative select should clear the selection")
	}
}
