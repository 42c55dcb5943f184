package anim

// Effect is a one-shot visual transition. Start begins it and done is called
// exactly once when it finishes, possibly before Start returns. After Cancel,
// done must not be called.
type Effect interface {
	Start(done func())
	Cancel()
}

// Factory creates an Effect when the scheduler reaches its queue position.
type Factory func() Effect

// Together runs effects concurrently and completes when the last one does.
func Together(effects ...Effect) Effect {
	return &together{effects: effects}
}

type together struct {
	effects   []Effect
	remaining int
	cancelled bool
}

func (t *together) Start(done func()) {
	t.remaining = len(t.effects)
	if t.remaining == 0 {
		done()
		return
	}
	for _, e := range t.effects {
		fired := false
		e.Start(func() {
			if fired || t.cancelled {
				return
			}
			fired = true
			t.remaining--
			if t.remaining == 0 {
				done()
			}
		})
	}
}

func (t *together) Cancel() {
	t.cancelled = true
	for _, e := range t.effects {
		e.Cancel()
	}
}

// Then calls fn after e completes and before the caller's completion hook.
func Then(e Effect, fn func()) Effect {
	return &then{effect: e, fn: fn}
}

type then struct {
	effect    Effect
	fn        func()
	cancelled bool
}

func (t *then) Start(done func()) {
	t.effect.Start(func() {
		if t.cancelled {
			return
		}
		t.fn()
		done()
	})
}

func (t *then) Cancel() {
	t.cancelled = true
	t.effect.Cancel()
}

// Instant is an effect that completes as soon as it starts.
func Instant(fn func()) Effect {
	return instant(fn)
}

type instant func()

func (f instant) Start(done func()) {
	if f != nil {
		f()
	}
	done()
}

func (instant) Cancel() {}
