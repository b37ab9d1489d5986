// Package task defines the to-do entry shared by the state, logic and ui layers.
package task

// Item is a single to-do entry.
// Items are values: copying one never aliases the list that holds it.
type Item struct {
	Done        bool
	Description string
}

// New returns an open item with the given description.
func New(description string) Item {
	return Item{Description: description}
}

// Toggled returns a copy of the item with Done flipped.
func (i Item) Toggled() Item {
	i.Done = !i.Done
	return i
}

// Glyph returns the checkbox glyph for the item's completion state.
func (i Item) Glyph() string {
	if i.Done {
		return "✓"
	}
	return "☐"
}
