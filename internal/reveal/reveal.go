// Package reveal tracks which word-list items currently show their answer
// text instead of the mask.
package reveal

// Tracker is a set of revealed item IDs ("{tab}-{item}").
type Tracker struct {
	revealed map[string]bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{revealed: make(map[string]bool)}
}

// Toggle flips the revealed state of an item.
func (t *Tracker) Toggle(id string) {
	if t.revealed[id] {
		delete(t.revealed, id)
		return
	}
	t.revealed[id] = true
}

// Revealed reports whether the item's answer is shown.
func (t *Tracker) Revealed(id string) bool {
	return t.revealed[id]
}

// Reset hides every item again.
func (t *Tracker) Reset() {
	t.revealed = make(map[string]bool)
}

// Count returns the number of revealed items.
func (t *Tracker) Count() int {
	return len(t.revealed)
}
