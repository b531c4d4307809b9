package navigator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"flashcards/internal/domain"
)

// ErrEmptyData is returned by Load when there is nothing to show
var ErrEmptyData = errors.New("navigator: no entries to load")

// Navigator holds a deck and the position within it.
// It is not safe for concurrent use; the owning shell serializes calls.
type Navigator struct {
	entries []domain.Entry
	index   int
	flipped bool
	rnd     *rand.Rand
}

// New creates an empty navigator seeded from the clock
func New() *Navigator {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand creates an empty navigator that shuffles with rnd
func NewWithRand(rnd *rand.Rand) *Navigator {
	return &Navigator{rnd: rnd}
}

// Load replaces the deck. On error the current state is kept.
func (n *Navigator) Load(entries []domain.Entry) error {
	if len(entries) == 0 {
		return ErrEmptyData
	}

	n.entries = make([]domain.Entry, len(entries))
	copy(n.entries, entries)
	n.index = 0
	n.flipped = false
	return nil
}

// Next moves to the following card, wrapping to the first
func (n *Navigator) Next() {
	if n.Empty() {
		return
	}
	n.index = (n.index + 1) % len(n.entries)
}

// Previous moves to the preceding card, wrapping to the last
func (n *Navigator) Previous() {
	if n.Empty() {
		return
	}
	n.index = (n.index - 1 + len(n.entries)) % len(n.entries)
}

// Flip toggles between the word and the definition side
func (n *Navigator) Flip() {
	if n.Empty() {
		return
	}
	n.flipped = !n.flipped
}

// FaceUp turns the card back to the word side
func (n *Navigator) FaceUp() {
	n.flipped = false
}

// Shuffle permutes the deck (Fisher-Yates) and restarts from the first card
func (n *Navigator) Shuffle() {
	if n.Empty() {
		return
	}

	for i := len(n.entries) - 1; i > 0; i-- {
		j := n.rnd.Intn(i + 1)
		n.entries[i], n.entries[j] = n.entries[j], n.entries[i]
	}
	n.index = 0
	n.flipped = false
}

// Current returns the selected entry, or the zero Entry when empty
func (n *Navigator) Current() domain.Entry {
	if n.Empty() {
		return domain.Entry{}
	}
	return n.entries[n.index]
}

// Entries returns a copy of the deck in its current order
func (n *Navigator) Entries() []domain.Entry {
	out := make([]domain.Entry, len(n.entries))
	copy(out, n.entries)
	return out
}

// Index returns the position of the current card
func (n *Navigator) Index() int { return n.index }

// Len returns the number of cards in the deck
func (n *Navigator) Len() int { return len(n.entries) }

// Empty reports whether no deck is loaded
func (n *Navigator) Empty() bool { return len(n.entries) == 0 }

// Flipped reports whether the back of the card is showing
func (n *Navigator) Flipped() bool { return n.flipped }

// Counter returns the position text, e.g. "3 / 10"
func (n *Navigator) Counter() string {
	if n.Empty() {
		return ""
	}
	return fmt.Sprintf("%d / %d", n.index+1, len(n.entries))
}
