package anim

import (
	"time"

	"github.com/san-kum/sortviz/internal/remap"
)

// SlotID identifies a slot on the render surface.
type SlotID = remap.SlotID

// SlotKind distinguishes array elements from their index labels and from
// named pointers. Pointers display an index value instead of a height.
type SlotKind int

const (
	SlotElement SlotKind = iota
	SlotIndex
	SlotPointer
)

func (k SlotKind) String() string {
	switch k {
	case SlotElement:
		return "element"
	case SlotIndex:
		return "index"
	case SlotPointer:
		return "pointer"
	default:
		return "unknown"
	}
}

// Point is a slot position in surface units.
type Point struct {
	X, Y float64
}

// Surface holds the slots of the current run. Slot order never changes;
// only positions, pointer values and highlight levels do.
type Surface interface {
	Clear()
	// AddSlot creates a slot. For elements value is the array value, for
	// index labels the index, for pointers the initial pointed-at index.
	AddSlot(kind SlotKind, value int, label string) SlotID
	Slots() []SlotID
	Kind(id SlotID) SlotKind
	Position(id SlotID) Point
	SetPosition(id SlotID, p Point)
	PointerValue(id SlotID) int
	SetPointerValue(id SlotID, v int)
	Highlight(id SlotID) float64
	SetHighlight(id SlotID, level float64)
	// WhenReady runs fn once slot geometry has been laid out, immediately
	// if that already happened.
	WhenReady(fn func())
}

// Animations produces effects for single slots. Each effect reads its start
// coordinates when it starts, not when it is created.
type Animations interface {
	// Raise lifts a slot off the row; high selects the upper lane so two
	// raised slots can pass each other.
	Raise(id SlotID, high bool) Effect
	// Lower returns a raised slot to the height it was raised from.
	Lower(id SlotID) Effect
	// Shift moves a slot horizontally by the given number of cells,
	// positive to the right.
	Shift(id SlotID, by int) Effect
	Select(id SlotID) Effect
	Unselect(id SlotID) Effect
	// Pause does nothing visible for d.
	Pause(d time.Duration) Effect
}

type Renderer interface {
	Surface
	Animations
}

// ScriptHost shows the algorithm's source listing next to the animation.
type ScriptHost interface {
	HighlightLine(line int)
	ShowSource(algorithm string)
	RunAnimation(algorithm string, input []int)
}

// NopHost ignores all notifications.
type NopHost struct{}

func (NopHost) HighlightLine(int) {}

func (NopHost) ShowSource(string) {}

func (NopHost) RunAnimation(string, []int) {}
