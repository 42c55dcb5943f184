package metrics

import (
	"github.com/san-kum/sortviz/internal/anim"
)

// Movement is the total number of cells element slots travel horizontally.
// A swap moves two slots |i-j| cells each.
type Movement struct {
	name  string
	cells int
}

func NewMovement() *Movement {
	return &Movement{name: "movement"}
}

func (m *Movement) Name() string { return m.name }

func (m *Movement) Observe(op anim.Operation, _ int) {
	switch op.Kind {
	case anim.KindSwap:
		m.cells += 2 * abs(op.J-op.I)
	case anim.KindShift:
		m.cells += abs(op.J - op.I)
	}
}

func (m *Movement) Value() float64 { return float64(m.cells) }

func (m *Movement) Reset() { m.cells = 0 }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
