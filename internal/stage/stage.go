package stage

import (
	"time"

	"github.com/san-kum/sortviz/internal/anim"
)

type slot struct {
	kind      anim.SlotKind
	value     int
	label     string
	ordinal   int
	pos       anim.Point
	rest      float64
	highlight float64
}

// Stage holds the slots of one run and the tweens currently playing.
type Stage struct {
	geo     Geometry
	timing  Timing
	speed   float64
	slots   []*slot
	counts  [3]int
	ready   bool
	waiting []func()
	active  []*tween
}

var _ anim.Renderer = (*Stage)(nil)

func New(geo Geometry, timing Timing) *Stage {
	return &Stage{geo: geo, timing: timing, speed: 1}
}

func (s *Stage) Geometry() Geometry { return s.geo }

// SetSpeed scales the time passed to Advance. Non-positive values are
// ignored.
func (s *Stage) SetSpeed(f float64) {
	if f > 0 {
		s.speed = f
	}
}

func (s *Stage) Speed() float64 { return s.speed }

// Clear cancels every running tween, drops all slots and closes the
// render-ready barrier until the next Layout.
func (s *Stage) Clear() {
	for _, t := range s.active {
		t.cancelled = true
	}
	s.active = nil
	s.slots = nil
	s.counts = [3]int{}
	s.ready = false
	s.waiting = nil
}

func (s *Stage) AddSlot(kind anim.SlotKind, value int, label string) anim.SlotID {
	sl := &slot{kind: kind, value: value, label: label, ordinal: s.counts[kind]}
	s.counts[kind]++
	s.slots = append(s.slots, sl)
	if s.ready {
		s.place(sl)
	}
	return anim.SlotID(len(s.slots) - 1)
}

// Layout positions every slot and opens the render-ready barrier.
func (s *Stage) Layout() {
	for _, sl := range s.slots {
		s.place(sl)
	}
	s.ready = true
	waiting := s.waiting
	s.waiting = nil
	for _, fn := range waiting {
		fn()
	}
}

func (s *Stage) place(sl *slot) {
	switch sl.kind {
	case anim.SlotElement:
		sl.pos = anim.Point{X: float64(sl.ordinal) * s.geo.Pitch, Y: s.geo.Baseline}
	case anim.SlotIndex:
		sl.pos = anim.Point{X: float64(sl.value) * s.geo.Pitch, Y: s.geo.IndexRow}
	case anim.SlotPointer:
		y := s.geo.PointerRow + float64(sl.ordinal)*s.geo.RowGap
		sl.pos = anim.Point{X: float64(sl.value) * s.geo.Pitch, Y: y}
	}
	sl.rest = sl.pos.Y
}

func (s *Stage) Ready() bool { return s.ready }

func (s *Stage) WhenReady(fn func()) {
	if s.ready {
		fn()
		return
	}
	s.waiting = append(s.waiting, fn)
}

func (s *Stage) Slots() []anim.SlotID {
	ids := make([]anim.SlotID, len(s.slots))
	for i := range ids {
		ids[i] = anim.SlotID(i)
	}
	return ids
}

func (s *Stage) Kind(id anim.SlotID) anim.SlotKind { return s.slots[id].kind }

func (s *Stage) Label(id anim.SlotID) string { return s.slots[id].label }

// Value is the element value, index or pointer target the slot displays.
func (s *Stage) Value(id anim.SlotID) int { return s.slots[id].value }

func (s *Stage) Position(id anim.SlotID) anim.Point { return s.slots[id].pos }

func (s *Stage) SetPosition(id anim.SlotID, p anim.Point) { s.slots[id].pos = p }

func (s *Stage) PointerValue(id anim.SlotID) int { return s.slots[id].value }

func (s *Stage) SetPointerValue(id anim.SlotID, v int) { s.slots[id].value = v }

func (s *Stage) Highlight(id anim.SlotID) float64 { return s.slots[id].highlight }

func (s *Stage) SetHighlight(id anim.SlotID, level float64) { s.slots[id].highlight = level }

// Active is the number of tweens still running.
func (s *Stage) Active() int { return len(s.active) }

// Advance moves every running tween forward by dt scaled by the speed.
// Tweens started by completion callbacks begin on the next call.
func (s *Stage) Advance(dt time.Duration) {
	if dt <= 0 || len(s.active) == 0 {
		return
	}
	dt = time.Duration(float64(dt) * s.speed)
	frame := append([]*tween(nil), s.active...)
	for _, t := range frame {
		if t.cancelled {
			continue
		}
		if t.advance(dt) {
			s.remove(t)
			t.finish(t.done)
		}
	}
}

// Drain advances in steps of dt until no tween is running and returns the
// number of frames it took.
func (s *Stage) Drain(dt time.Duration) int {
	if dt <= 0 {
		dt = 16 * time.Millisecond
	}
	frames := 0
	for len(s.active) > 0 {
		s.Advance(dt)
		frames++
	}
	return frames
}

func (s *Stage) remove(t *tween) {
	for i, a := range s.active {
		if a == t {
			s.active = append(s.active[:i], s.active[i+1:]...)
			return
		}
	}
}

func (s *Stage) Raise(id anim.SlotID, high bool) anim.Effect {
	lift := s.geo.RaiseLow
	if high {
		lift = s.geo.RaiseHigh
	}
	sl := s.slots[id]
	var from float64
	return &tween{
		st:  s,
		dur: s.timing.Move,
		begin: func() {
			from = sl.pos.Y
			sl.rest = from
		},
		step: func(f float64) { sl.pos.Y = lerp(from, sl.rest-lift, f) },
	}
}

func (s *Stage) Lower(id anim.SlotID) anim.Effect {
	sl := s.slots[id]
	var from float64
	return &tween{
		st:    s,
		dur:   s.timing.Move,
		begin: func() { from = sl.pos.Y },
		step:  func(f float64) { sl.pos.Y = lerp(from, sl.rest, f) },
	}
}

func (s *Stage) Shift(id anim.SlotID, by int) anim.Effect {
	sl := s.slots[id]
	var from float64
	return &tween{
		st:    s,
		dur:   s.timing.Move,
		begin: func() { from = sl.pos.X },
		step:  func(f float64) { sl.pos.X = lerp(from, from+float64(by)*s.geo.Pitch, f) },
	}
}

func (s *Stage) Select(id anim.SlotID) anim.Effect {
	return s.fade(id, 1)
}

func (s *Stage) Unselect(id anim.SlotID) anim.Effect {
	return s.fade(id, 0)
}

func (s *Stage) fade(id anim.SlotID, to float64) anim.Effect {
	sl := s.slots[id]
	var from float64
	return &tween{
		st:    s,
		dur:   s.timing.Fade,
		begin: func() { from = sl.highlight },
		step:  func(f float64) { sl.highlight = lerp(from, to, f) },
	}
}

func (s *Stage) Pause(d time.Duration) anim.Effect {
	return &tween{st: s, dur: d}
}
