package metrics

import (
	"github.com/san-kum/sortviz/internal/anim"
)

// Count counts operations of one kind. Swaps of an index with itself are
// counted separately as no-ops and excluded from Value.
type Count struct {
	name  string
	kind  anim.Kind
	count int
	noops int
}

func NewSwaps() *Count { return &Count{name: "swaps", kind: anim.KindSwap} }

func NewShifts() *Count { return &Count{name: "shifts", kind: anim.KindShift} }

func NewPointerMoves() *Count { return &Count{name: "pointer_moves", kind: anim.KindPointer} }

func NewSteps() *Count { return &Count{name: "steps", kind: anim.KindTrack} }

func (c *Count) Name() string { return c.name }

func (c *Count) Observe(op anim.Operation, _ int) {
	if op.Kind != c.kind {
		return
	}
	if op.Kind == anim.KindSwap && op.I == op.J {
		c.noops++
		return
	}
	c.count++
}

func (c *Count) Value() float64 { return float64(c.count) }

// NoOps is the number of self-swaps seen.
func (c *Count) NoOps() int { return c.noops }

func (c *Count) Reset() {
	c.count = 0
	c.noops = 0
}
