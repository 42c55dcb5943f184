package anim

import (
	"fmt"
	"time"
)

type fakeSlot struct {
	kind  SlotKind
	value int
	label string
	pos   Point
	hl    float64
}

// fakeRenderer applies every effect's end state on completion. In manual
// mode started effects wait in pending until the test finishes them.
type fakeRenderer struct {
	slots    []*fakeSlot
	ready    bool
	waiting  []func()
	manual   bool
	pending  []*fakeEffect
	log      []string
	created  int
	elements int
	indexes  int
	pointers int
}

func newFakeRenderer(ready bool) *fakeRenderer {
	return &fakeRenderer{ready: ready}
}

type fakeEffect struct {
	r         *fakeRenderer
	name      string
	apply     func()
	done      func()
	cancelled bool
}

func (e *fakeEffect) Start(done func()) {
	e.r.log = append(e.r.log, e.name)
	if !e.r.manual {
		e.apply()
		done()
		return
	}
	e.done = done
	e.r.pending = append(e.r.pending, e)
}

func (e *fakeEffect) Cancel() { e.cancelled = true }

func (r *fakeRenderer) effect(name string, apply func()) Effect {
	r.created++
	return &fakeEffect{r: r, name: name, apply: apply}
}

// finishOne completes the oldest pending effect and reports whether there
// was one.
func (r *fakeRenderer) finishOne() bool {
	for len(r.pending) > 0 {
		e := r.pending[0]
		r.pending = r.pending[1:]
		if e.cancelled {
			continue
		}
		e.apply()
		e.done()
		return true
	}
	return false
}

func (r *fakeRenderer) finishAll() {
	for r.finishOne() {
	}
}

func (r *fakeRenderer) layout() {
	r.ready = true
	fns := r.waiting
	r.waiting = nil
	for _, fn := range fns {
		fn()
	}
}

func (r *fakeRenderer) Clear() {
	for _, e := range r.pending {
		e.cancelled = true
	}
	r.slots = nil
	r.pending = nil
	r.elements, r.indexes, r.pointers = 0, 0, 0
}

func (r *fakeRenderer) AddSlot(kind SlotKind, value int, label string) SlotID {
	s := &fakeSlot{kind: kind, value: value, label: label}
	switch kind {
	case SlotElement:
		s.pos = Point{X: float64(r.elements)}
		r.elements++
	case SlotIndex:
		s.pos = Point{X: float64(r.indexes), Y: 1}
		r.indexes++
	case SlotPointer:
		s.pos = Point{X: float64(value), Y: float64(2 + r.pointers)}
		r.pointers++
	}
	r.slots = append(r.slots, s)
	return SlotID(len(r.slots) - 1)
}

func (r *fakeRenderer) Slots() []SlotID {
	ids := make([]SlotID, len(r.slots))
	for i := range ids {
		ids[i] = SlotID(i)
	}
	return ids
}

func (r *fakeRenderer) Kind(id SlotID) SlotKind          { return r.slots[id].kind }
func (r *fakeRenderer) Position(id SlotID) Point         { return r.slots[id].pos }
func (r *fakeRenderer) SetPosition(id SlotID, p Point)   { r.slots[id].pos = p }
func (r *fakeRenderer) PointerValue(id SlotID) int       { return r.slots[id].value }
func (r *fakeRenderer) SetPointerValue(id SlotID, v int) { r.slots[id].value = v }
func (r *fakeRenderer) Highlight(id SlotID) float64      { return r.slots[id].hl }
func (r *fakeRenderer) SetHighlight(id SlotID, l float64) {
	r.slots[id].hl = l
}

func (r *fakeRenderer) WhenReady(fn func()) {
	if r.ready {
		fn()
		return
	}
	r.waiting = append(r.waiting, fn)
}

func (r *fakeRenderer) Raise(id SlotID, high bool) Effect {
	lift := 1.0
	if high {
		lift = 2
	}
	return r.effect(fmt.Sprintf("raise(%d)", id), func() { r.slots[id].pos.Y -= lift })
}

func (r *fakeRenderer) Lower(id SlotID) Effect {
	return r.effect(fmt.Sprintf("lower(%d)", id), func() { r.slots[id].pos.Y = 0 })
}

func (r *fakeRenderer) Shift(id SlotID, by int) Effect {
	return r.effect(fmt.Sprintf("shift(%d,%d)", id, by), func() { r.slots[id].pos.X += float64(by) })
}

func (r *fakeRenderer) Select(id SlotID) Effect {
	return r.effect(fmt.Sprintf("select(%d)", id), func() { r.slots[id].hl = 1 })
}

func (r *fakeRenderer) Unselect(id SlotID) Effect {
	return r.effect(fmt.Sprintf("unselect(%d)", id), func() { r.slots[id].hl = 0 })
}

func (r *fakeRenderer) Pause(time.Duration) Effect {
	return r.effect("pause", func() {})
}

// row returns element values ordered by their drawn position.
func (r *fakeRenderer) row() []int {
	out := make([]int, r.elements)
	for _, s := range r.slots {
		if s.kind == SlotElement {
			out[int(s.pos.X)] = s.value
		}
	}
	return out
}

type fakeHost struct {
	lines   []int
	sources []string
	runs    [][]int
}

func (h *fakeHost) HighlightLine(line int)         { h.lines = append(h.lines, line) }
func (h *fakeHost) ShowSource(algorithm string)    { h.sources = append(h.sources, algorithm) }
func (h *fakeHost) RunAnimation(_ string, a []int) { h.runs = append(h.runs, a) }
