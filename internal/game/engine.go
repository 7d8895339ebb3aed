package game

import (
	"math/rand"

	"codeberg.org/snonux/spellcast/internal/tiles"
)

// State is the engine lifecycle state.
type State int

const (
	StateIdle State = iota
	StateEditing
	StateChecked
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateChecked:
		return "checked"
	default:
		return "unknown"
	}
}

// Result of a check.
type Result int

const (
	ResultNone Result = iota
	ResultCorrect
	ResultIncorrect
)

// BankTile is a hidden tile waiting in the bank. The ID survives reshuffles
// so the UI can track selection across refreshes.
type BankTile struct {
	ID   int
	Tile tiles.Tile
}

// DecomposeFunc maps a word to its tile sequence.
type DecomposeFunc func(word string) []tiles.Tile

// Engine holds the cipher game state for a single word.
//
// Invariant: every hidden index has its tile in exactly one of the bank or
// the placements. Tap-to-place is modeled with a nullable selected bank tile
// rather than ambient flags so transitions stay testable.
type Engine struct {
	decompose DecomposeFunc
	shuffle   func(n int, swap func(i, j int))

	word   string
	tiles  []tiles.Tile
	hidden map[int]bool
	placed map[int]tiles.Tile
	bank   []BankTile

	selectedBank int // bank tile ID, or -1
	nextBankID   int // monotonic; wall-clock IDs collide under rapid taps
	result       Result
	state        State
}

// New creates an idle engine using the given decomposition function.
func New(decompose DecomposeFunc) *Engine {
	e := &Engine{
		decompose:    decompose,
		shuffle:      rand.Shuffle,
		selectedBank: -1,
	}
	e.reset()
	return e
}

func (e *Engine) reset() {
	e.word = ""
	e.tiles = nil
	e.hidden = make(map[int]bool)
	e.placed = make(map[int]tiles.Tile)
	e.bank = nil
	e.selectedBank = -1
	e.result = ResultNone
	e.state = StateIdle
}

// LoadWord starts a new round for the given word.
func (e *Engine) LoadWord(word string) {
	e.reset()
	e.word = word
	e.tiles = e.decompose(word)
	e.state = StateEditing
}

// Close abandons the current round.
func (e *Engine) Close() { e.reset() }

// Reset is Close under a different toolbar button.
func (e *Engine) Reset() { e.reset() }

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// Word returns the loaded word.
func (e *Engine) Word() string { return e.word }

// Tiles returns the full decomposition of the loaded word.
func (e *Engine) Tiles() []tiles.Tile { return e.tiles }

// Result returns the outcome of the last check.
func (e *Engine) Result() Result { return e.result }

// Bank returns the unplaced hidden tiles in bank order.
func (e *Engine) Bank() []BankTile { return e.bank }

// Hidden reports whether the tile at index i is hidden.
func (e *Engine) Hidden(i int) bool { return e.hidden[i] }

// PlacedAt returns the tile placed at slot i, if any.
func (e *Engine) PlacedAt(i int) (tiles.Tile, bool) {
	t, ok := e.placed[i]
	return t, ok
}

// SelectedBank returns the selected bank tile ID, or -1.
func (e *Engine) SelectedBank() int { return e.selectedBank }

// HideTile moves the tile at index i into the bank and marks the slot
// hidden. Any placement at that index is evicted back out of existence
// (the placed copy belonged to another hidden tile and returns to the bank).
func (e *Engine) HideTile(i int) {
	if e.state == StateIdle || i < 0 || i >= len(e.tiles) {
		return
	}
	if e.hidden[i] || !e.tiles[i].Hideable() {
		return
	}

	e.edit()
	if t, ok := e.placed[i]; ok {
		delete(e.placed, i)
		e.addToBank(t)
	}
	e.hidden[i] = true
	e.addToBank(e.tiles[i])
	e.shuffleBank()
}

// UnhideTile reverses HideTile: the slot shows its own tile again and the
// tile's copy leaves the bank or its placement slot.
func (e *Engine) UnhideTile(i int) {
	if e.state == StateIdle || !e.hidden[i] {
		return
	}

	e.edit()
	delete(e.hidden, i)
	if !e.removeFromBank(e.tiles[i].Text) {
		e.removeFromPlaced(e.tiles[i].Text)
	}
	// A foreign tile placed in this slot goes back to the bank.
	if t, ok := e.placed[i]; ok {
		delete(e.placed, i)
		e.addToBank(t)
	}
}

// SelectBankTile toggles selection of a bank tile.
func (e *Engine) SelectBankTile(bankID int) {
	if e.state == StateIdle {
		return
	}
	e.edit()
	if e.selectedBank == bankID {
		e.selectedBank = -1
		return
	}
	for _, b := range e.bank {
		if b.ID == bankID {
			e.selectedBank = bankID
			return
		}
	}
}

// PlaceAt handles a tap on hidden slot i. With a bank tile selected and the
// slot empty, the tile is placed there. With nothing selected and the slot
// filled, the placed tile returns to the bank under a fresh ID.
func (e *Engine) PlaceAt(i int) {
	if e.state == StateIdle || !e.hidden[i] {
		return
	}
	e.edit()

	if _, filled := e.placed[i]; filled {
		if e.selectedBank == -1 {
			t := e.placed[i]
			delete(e.placed, i)
			e.addToBank(t)
		}
		return
	}

	if e.selectedBank == -1 {
		return
	}
	for idx, b := range e.bank {
		if b.ID == e.selectedBank {
			e.placed[i] = b.Tile
			e.bank = append(e.bank[:idx], e.bank[idx+1:]...)
			e.selectedBank = -1
			return
		}
	}
	e.selectedBank = -1
}

// Check compares placed tiles against the original decomposition. It is a
// no-op unless at least one slot is hidden and every hidden slot is filled.
// No partial credit.
func (e *Engine) Check() Result {
	if e.state == StateIdle || len(e.hidden) == 0 {
		return ResultNone
	}
	for i := range e.hidden {
		if _, ok := e.placed[i]; !ok {
			return ResultNone
		}
	}

	e.result = ResultCorrect
	for i := range e.hidden {
		if e.placed[i].Text != e.tiles[i].Text {
			e.result = ResultIncorrect
			break
		}
	}
	e.state = StateChecked
	return e.result
}

// edit drops a previous check result on any state change.
func (e *Engine) edit() {
	if e.state == StateChecked {
		e.state = StateEditing
		e.result = ResultNone
	}
}

func (e *Engine) addToBank(t tiles.Tile) {
	e.bank = append(e.bank, BankTile{ID: e.nextBankID, Tile: t})
	e.nextBankID++
}

// removeFromBank removes one bank tile with the given text.
func (e *Engine) removeFromBank(text string) bool {
	for i, b := range e.bank {
		if b.Tile.Text == text {
			if e.selectedBank == b.ID {
				e.selectedBank = -1
			}
			e.bank = append(e.bank[:i], e.bank[i+1:]...)
			return true
		}
	}
	return false
}

// removeFromPlaced removes one placed tile with the given text.
func (e *Engine) removeFromPlaced(text string) bool {
	for i, t := range e.placed {
		if t.Text == text {
			delete(e.placed, i)
			return true
		}
	}
	return false
}

func (e *Engine) shuffleBank() {
	e.shuffle(len(e.bank), func(i, j int) {
		e.bank[i], e.bank[j] = e.bank[j], e.bank[i]
	})
}
