package metrics

import (
	"github.com/san-kum/sortviz/internal/anim"
)

// EntriesPerStep tracks how many queue entries each step plays. The entries
// of a step are those enqueued after its Track marker up to and including the
// next one; entries before the first marker belong to no step.
type EntriesPerStep struct {
	name    string
	current int
	seen    bool
	counts  []int
}

func NewEntriesPerStep() *EntriesPerStep {
	return &EntriesPerStep{name: "entries_per_step"}
}

func (e *EntriesPerStep) Name() string { return e.name }

func (e *EntriesPerStep) Observe(op anim.Operation, entries int) {
	e.current += entries
	if op.Kind != anim.KindTrack {
		return
	}
	if e.seen {
		e.counts = append(e.counts, e.current)
	}
	e.seen = true
	e.current = 0
}

// Value is the mean over all completed steps.
func (e *EntriesPerStep) Value() float64 {
	if len(e.counts) == 0 {
		return 0
	}
	sum := 0
	for _, c := range e.counts {
		sum += c
	}
	return float64(sum) / float64(len(e.counts))
}

// Series returns the per-step counts in step order.
func (e *EntriesPerStep) Series() []float64 {
	out := make([]float64, len(e.counts))
	for i, c := range e.counts {
		out[i] = float64(c)
	}
	return out
}

func (e *EntriesPerStep) Reset() {
	e.current = 0
	e.seen = false
	e.counts = nil
}
