package anim

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/remap"
)

const DefaultTrackDelay = 200 * time.Millisecond

type Options struct {
	// TrackDelay is the pause before a source line is highlighted.
	TrackDelay time.Duration
	Logger     *slog.Logger
}

// Animator drives one run at a time: it owns the run's Remapper, Queue,
// Scheduler and recorded steps, and translates operations into effects on
// the Renderer.
type Animator struct {
	r       Renderer
	host    ScriptHost
	delay   time.Duration
	log     *slog.Logger
	metrics []Metric
	run     *runState
}

type runState struct {
	id     string
	algo   string
	origin []int
	sorted []int
	remap  *remap.Remapper
	queue  *Queue
	sched  *Scheduler
	steps  *stepTracker
	err    error
}

func New(r Renderer, host ScriptHost, opts Options) *Animator {
	if host == nil {
		host = NopHost{}
	}
	if opts.TrackDelay <= 0 {
		opts.TrackDelay = DefaultTrackDelay
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Animator{r: r, host: host, delay: opts.TrackDelay, log: opts.Logger}
}

// AddMetric registers m. Metrics are reset whenever a new run starts.
func (a *Animator) AddMetric(m Metric) {
	a.metrics = append(a.metrics, m)
}

// Stats returns the current value of every registered metric.
func (a *Animator) Stats() map[string]float64 {
	out := make(map[string]float64, len(a.metrics))
	for _, m := range a.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// ShowArray starts a fresh run displaying values. Any in-flight effect is
// cancelled and the previous run's queue and steps are discarded.
func (a *Animator) ShowArray(values []int) {
	if a.run != nil {
		a.run.sched.Reset()
	}
	a.r.Clear()

	ids := make([]SlotID, len(values))
	for i, v := range values {
		ids[i] = a.r.AddSlot(SlotElement, v, strconv.Itoa(v))
	}
	for i := range values {
		a.r.AddSlot(SlotIndex, i, strconv.Itoa(i))
	}

	rs := &runState{
		id:     uuid.NewString(),
		origin: slices.Clone(values),
		remap:  remap.New(ids),
		queue:  &Queue{},
		steps:  newStepTracker(),
	}
	rs.sched = NewScheduler(rs.queue)
	rs.sched.OnReach = func(pos int, e Entry) {
		rs.steps.reach(pos, e, a.r)
	}
	rs.sched.OnIdle = func(exhausted bool) {
		rs.steps.idle(exhausted)
		if exhausted {
			a.log.Debug("playback finished", "run", rs.id, "steps", len(rs.steps.steps))
		}
	}
	a.run = rs

	for _, m := range a.metrics {
		m.Reset()
	}
	a.host.HighlightLine(1)
	a.log.Debug("run reset", "run", rs.id, "n", len(values))
}

// ResetSort returns to the current run's original array with an empty queue.
func (a *Animator) ResetSort() error {
	if a.run == nil {
		return ErrNoRun
	}
	a.ShowArray(a.run.origin)
	return nil
}

// AddPointers creates a pointer slot for each name, pointing at index 0.
func (a *Animator) AddPointers(names ...string) error {
	rs := a.run
	if rs == nil {
		return ErrNoRun
	}
	for _, name := range names {
		id := a.r.AddSlot(SlotPointer, 0, name)
		rs.remap.AddPointer(name, id)
	}
	return nil
}

func (a *Animator) Swap(i, j int) error { return a.Apply(Swap(i, j)) }

func (a *Animator) Raise(i int, stay bool) error { return a.Apply(Raise(i, stay)) }

func (a *Animator) Lower(i int) error { return a.Apply(Lower(i)) }

func (a *Animator) Shift(i, j int, fromFloating bool) error {
	return a.Apply(Shift(i, j, fromFloating))
}

func (a *Animator) PointerMove(name string, i int) error {
	return a.Apply(PointerMove(name, i))
}

func (a *Animator) Track(line int) error { return a.Apply(Track(line)) }

// Apply updates the run's mapping for op and enqueues its effects. The first
// failure aborts the run: it is returned as a *RunError and every later call
// returns the same error until the next ShowArray.
func (a *Animator) Apply(op Operation) error {
	rs := a.run
	if rs == nil {
		return &RunError{Op: op, Err: ErrNoRun}
	}
	if rs.err != nil {
		return rs.err
	}
	if err := op.Validate(rs.remap.Len()); err != nil {
		return a.fail(rs, op, err)
	}

	before := rs.queue.Len()
	var err error
	switch op.Kind {
	case KindSwap:
		err = a.enqueueSwap(rs, op)
	case KindRaise:
		err = a.enqueueRaise(rs, op)
	case KindLower:
		err = a.enqueueLower(rs, op)
	case KindShift:
		err = a.enqueueShift(rs, op)
	case KindPointer:
		err = a.enqueuePointer(rs, op)
	case KindTrack:
		a.enqueueTrack(rs, op)
	}
	if err != nil {
		return a.fail(rs, op, err)
	}

	for _, m := range a.metrics {
		m.Observe(op, rs.queue.Len()-before)
	}
	return nil
}

func (a *Animator) fail(rs *runState, op Operation, err error) error {
	rs.err = &RunError{RunID: rs.id, Op: op, Err: err}
	a.log.Error("run aborted", "run", rs.id, "op", op.String(), "err", err)
	return rs.err
}

func (a *Animator) enqueueSwap(rs *runState, op Operation) error {
	i, j := op.I, op.J
	vi, err := rs.remap.Get(i)
	if err != nil {
		return err
	}
	vj, err := rs.remap.Get(j)
	if err != nil {
		return err
	}

	q := rs.queue
	if i == j {
		q.Enqueue(op, PhaseSelect, func() Effect { return a.r.Select(vi) })
		q.Enqueue(op, PhaseUnselect, func() Effect { return a.r.Unselect(vi) })
		return nil
	}

	q.Enqueue(op, PhaseSelect, func() Effect {
		return Together(a.r.Select(vi), a.r.Select(vj))
	})
	q.Enqueue(op, PhaseRaise, func() Effect {
		return Together(a.r.Raise(vi, true), a.r.Raise(vj, false))
	})
	q.Enqueue(op, PhaseShift, func() Effect {
		return Together(a.r.Shift(vi, j-i), a.r.Shift(vj, i-j))
	})
	q.Enqueue(op, PhaseLower, func() Effect {
		return Together(a.r.Lower(vi), a.r.Lower(vj))
	})
	q.Enqueue(op, PhaseUnselect, func() Effect {
		return Together(a.r.Unselect(vi), a.r.Unselect(vj))
	})

	if err := rs.remap.ApplySwap(i, j); err != nil {
		return err
	}
	return checkMapping(rs)
}

func (a *Animator) enqueueRaise(rs *runState, op Operation) error {
	id, err := rs.remap.Get(op.I)
	if err != nil {
		return err
	}
	if op.Stay {
		if err := rs.remap.MarkFloating(id); err != nil {
			return err
		}
	}
	rs.queue.Enqueue(op, PhaseMain, func() Effect { return a.r.Raise(id, false) })
	return nil
}

func (a *Animator) enqueueLower(rs *runState, op Operation) error {
	id, held := rs.remap.Floating()
	if held {
		if _, err := rs.remap.TakeFloating(); err != nil {
			return err
		}
	} else {
		var err error
		if id, err = rs.remap.Get(op.I); err != nil {
			return err
		}
	}
	rs.queue.Enqueue(op, PhaseMain, func() Effect { return a.r.Lower(id) })
	return nil
}

func (a *Animator) enqueueShift(rs *runState, op Operation) error {
	var id SlotID
	if op.FromFloating {
		held := false
		if id, held = rs.remap.Floating(); !held {
			return fmt.Errorf("%w: shift(%d,%d)", remap.ErrNoFloating, op.I, op.J)
		}
		if err := rs.remap.Place(op.J, id); err != nil {
			return err
		}
		if err := checkMapping(rs); err != nil {
			return err
		}
	} else {
		var err error
		if id, err = rs.remap.Get(op.I); err != nil {
			return err
		}
		if err := rs.remap.ApplyShift(op.I, op.J); err != nil {
			return err
		}
	}
	by := op.J - op.I
	rs.queue.Enqueue(op, PhaseMain, func() Effect { return a.r.Shift(id, by) })
	return nil
}

func (a *Animator) enqueuePointer(rs *runState, op Operation) error {
	id, err := rs.remap.Pointer(op.Pointer)
	if err != nil {
		return err
	}
	target := op.I
	rs.queue.Enqueue(op, PhaseMain, func() Effect {
		old := a.r.PointerValue(id)
		a.r.SetPointerValue(id, target)
		return a.r.Shift(id, target-old)
	})
	return nil
}

func (a *Animator) enqueueTrack(rs *runState, op Operation) {
	line := op.Line
	rs.queue.Enqueue(op, PhaseMain, func() Effect {
		return Then(a.r.Pause(a.delay), func() { a.host.HighlightLine(line) })
	})
}

func checkMapping(rs *runState) error {
	if !rs.remap.IsPermutation() {
		return fmt.Errorf("%w: %v", ErrMapping, rs.remap.Slots())
	}
	return nil
}

// Play starts or resumes playback once the renderer has laid out the run.
func (a *Animator) Play() error {
	rs, err := a.current()
	if err != nil {
		return err
	}
	if rs.sched.Busy() {
		return ErrBusy
	}
	a.r.WhenReady(func() {
		if a.run != rs {
			return
		}
		if err := rs.sched.Play(); err != nil {
			a.log.Debug("play rejected", "run", rs.id, "err", err)
		}
	})
	return nil
}

// PreviousStep restores the state recorded for the step before the current
// one, without animating.
func (a *Animator) PreviousStep() error {
	rs, err := a.current()
	if err != nil {
		return err
	}
	if rs.sched.Busy() {
		return ErrBusy
	}
	t := rs.steps
	if t.cur <= 0 {
		return ErrFirstStep
	}
	t.cur--
	st := t.steps[t.cur]
	Restore(a.r, st.Snapshot)
	if err := rs.sched.Seek(st.Position + 1); err != nil {
		return err
	}
	a.host.HighlightLine(st.Line)
	return nil
}

// NextStep plays the entries between the current step and the next one.
func (a *Animator) NextStep() error {
	rs, err := a.current()
	if err != nil {
		return err
	}
	if rs.sched.Busy() {
		return ErrBusy
	}
	t := rs.steps
	if t.cur < 0 || t.cur >= len(t.steps)-1 {
		return ErrLastStep
	}
	return rs.sched.PlayRange(t.steps[t.cur].Position+1, t.steps[t.cur+1].Position+1)
}

func (a *Animator) current() (*runState, error) {
	if a.run == nil {
		return nil, ErrNoRun
	}
	if a.run.err != nil {
		return nil, a.run.err
	}
	return a.run, nil
}

// Sort starts a run of the named algorithm over a copy of values: the queue
// is generated completely, then played. If generation fails the display is
// reset to values and the failure is returned.
func (a *Animator) Sort(name string, values []int) error {
	alg, err := algo.Lookup(name)
	if err != nil {
		return err
	}

	a.ShowArray(values)
	rs := a.run
	rs.algo = alg.Name
	a.host.ShowSource(alg.Name)
	a.host.RunAnimation(alg.Name, slices.Clone(values))
	if err := a.AddPointers(alg.Pointers...); err != nil {
		return err
	}

	work := slices.Clone(values)
	alg.Run(work, a.hooks())
	if rs.err != nil {
		err := rs.err
		a.ShowArray(rs.origin)
		return err
	}
	rs.sorted = work

	a.log.Info("queue generated",
		"run", rs.id,
		"algorithm", alg.Name,
		"n", len(values),
		"entries", rs.queue.Len(),
	)
	return a.Play()
}

func (a *Animator) SelectionSort(values []int) error { return a.Sort("selectionSort", values) }

func (a *Animator) BubbleSort(values []int) error { return a.Sort("bubbleSort", values) }

func (a *Animator) InsertionSort(values []int) error { return a.Sort("insertionSort", values) }

func (a *Animator) QuickSort(values []int) error { return a.Sort("quickSort", values) }

// hooks feeds algorithm callbacks into Apply. Errors are sticky on the run
// and checked once the algorithm returns.
func (a *Animator) hooks() algo.Hooks {
	return algo.Hooks{
		Swap:    func(i, j int) { _ = a.Swap(i, j) },
		Raise:   func(i int, stay bool) { _ = a.Raise(i, stay) },
		Shift:   func(i, j int, fromFloating bool) { _ = a.Shift(i, j, fromFloating) },
		Lower:   func(i int) { _ = a.Lower(i) },
		Pointer: func(name string, i int) { _ = a.PointerMove(name, i) },
		Track:   func(line int) { _ = a.Track(line) },
	}
}

// RunID identifies the current run; empty before the first ShowArray.
func (a *Animator) RunID() string {
	if a.run == nil {
		return ""
	}
	return a.run.id
}

// Algorithm is the canonical name of the algorithm of the current run.
func (a *Animator) Algorithm() string {
	if a.run == nil {
		return ""
	}
	return a.run.algo
}

// Sorted is the algorithm's result for the current run, nil until a sort
// has been generated.
func (a *Animator) Sorted() []int {
	if a.run == nil {
		return nil
	}
	return slices.Clone(a.run.sorted)
}

// Mapping returns the logical index to slot map as left by generation.
func (a *Animator) Mapping() []SlotID {
	if a.run == nil {
		return nil
	}
	return a.run.remap.Slots()
}

func (a *Animator) Entries() []Entry {
	if a.run == nil {
		return nil
	}
	return a.run.queue.Entries()
}

func (a *Animator) QueueLen() int {
	if a.run == nil {
		return 0
	}
	return a.run.queue.Len()
}

// Cursor is the queue position playback resumes from.
func (a *Animator) Cursor() int {
	if a.run == nil {
		return 0
	}
	return a.run.sched.Cursor()
}

// Steps returns the steps recorded so far.
func (a *Animator) Steps() []Step {
	if a.run == nil {
		return nil
	}
	return slices.Clone(a.run.steps.steps)
}

// CurrentStep is the index into Steps of the last step reached, or -1.
func (a *Animator) CurrentStep() int {
	if a.run == nil {
		return -1
	}
	return a.run.steps.cur
}

func (a *Animator) Busy() bool {
	return a.run != nil && a.run.sched.Busy()
}

// Done reports whether playback reached the end of the queue.
func (a *Animator) Done() bool {
	return a.run != nil && !a.run.sched.Busy() && a.run.sched.Cursor() >= a.run.queue.Len()
}
