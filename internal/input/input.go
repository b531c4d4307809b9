package input

import "flashcards/internal/navigator"

// Action is a user intent decoded from a click, key or gesture
type Action int

const (
	None Action = iota
	Next
	Previous
	Flip
	Shuffle
	Pronounce
)

func (a Action) String() string {
	switch a {
	case Next:
		return "next"
	case Previous:
		return "previous"
	case Flip:
		return "flip"
	case Shuffle:
		return "shuffle"
	case Pronounce:
		return "pronounce"
	default:
		return "none"
	}
}

// Swipe thresholds in pixels
const (
	SwipeMinDistance = 50
	TapMaxDistance   = 30
)

var keyActions = map[string]Action{
	"ArrowLeft":  Previous,
	"ArrowRight": Next,
	" ":          Flip,
	"Enter":      Flip,
	"s":          Shuffle,
	"p":          Pronounce,
}

// KeyAction maps a key name to its action
func KeyAction(key string) Action {
	return keyActions[key]
}

// Point is a touch position
type Point struct {
	X, Y float64
}

// SwipeAction classifies a touch from start to end.
// A long horizontal swipe to the left goes forward, to the right goes back;
// a short touch flips the card.
func SwipeAction(start, end Point) Action {
	dx := start.X - end.X
	dy := start.Y - end.Y

	if abs(dx) > abs(dy) && abs(dx) > SwipeMinDistance {
		if dx > 0 {
			return Next
		}
		return Previous
	}
	if abs(dx) < TapMaxDistance && abs(dy) < TapMaxDistance {
		return Flip
	}
	return None
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Dispatcher applies actions to a navigator through a fixed table
type Dispatcher struct {
	table map[Action]func(*navigator.Navigator)
}

// NewDispatcher creates the default action table.
// Moving to another card always shows its word side first.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		table: map[Action]func(*navigator.Navigator){
			Next: func(n *navigator.Navigator) {
				n.Next()
				n.FaceUp()
			},
			Previous: func(n *navigator.Navigator) {
				n.Previous()
				n.FaceUp()
			},
			Flip:    (*navigator.Navigator).Flip,
			Shuffle: (*navigator.Navigator).Shuffle,
		},
	}
}

// Dispatch runs the action against nav and reports whether it changed the view.
// Pronounce and None are left to the caller.
func (d *Dispatcher) Dispatch(nav *navigator.Navigator, a Action) bool {
	op, ok := d.table[a]
	if !ok || nav.Empty() {
		return false
	}
	op(nav)
	return true
}
