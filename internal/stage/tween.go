package stage

import (
	"time"
)

// tween is a timed effect. begin runs when the tween starts and step is
// called with the eased progress on every frame, finally with exactly 1.
type tween struct {
	st        *Stage
	dur       time.Duration
	elapsed   time.Duration
	begin     func()
	step      func(f float64)
	done      func()
	cancelled bool
}

func (t *tween) Start(done func()) {
	if t.begin != nil {
		t.begin()
	}
	if t.dur <= 0 {
		t.finish(done)
		return
	}
	t.done = done
	t.st.active = append(t.st.active, t)
}

func (t *tween) Cancel() {
	t.cancelled = true
	t.st.remove(t)
}

func (t *tween) advance(dt time.Duration) bool {
	t.elapsed += dt
	if t.elapsed >= t.dur {
		return true
	}
	if t.step != nil {
		t.step(ease(float64(t.elapsed) / float64(t.dur)))
	}
	return false
}

func (t *tween) finish(done func()) {
	if t.step != nil {
		t.step(1)
	}
	done()
}
