package automation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/san-kum/sortviz/internal/anim"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/stage"
)

// FrameStep is the Drain step used for headless playback.
const FrameStep = 50 * time.Millisecond

var ErrCheck = errors.New("automation: check failed")

// Options configure headless runs.
type Options struct {
	Geometry   stage.Geometry
	Timing     stage.Timing
	TrackDelay time.Duration
	// Verify walks every recorded step back and forth after playback and
	// checks that each one restores exactly.
	Verify bool
	Logger *slog.Logger
}

func DefaultOptions() Options {
	return Options{
		Geometry:   stage.DefaultGeometry(),
		Timing:     stage.DefaultTiming(),
		TrackDelay: anim.DefaultTrackDelay,
		Verify:     true,
	}
}

func (o Options) log() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// Result describes one completed headless run.
type Result struct {
	RunID     string
	Algorithm string
	Input     []int
	Sorted    []int
	Entries   int
	Queue     []anim.Entry
	Steps     int
	Frames    int
	Stats     map[string]float64
	PerStep   []float64
}

// Execute runs algorithm over input on a fresh stage, plays the whole queue
// and checks the drawn row against the algorithm's result.
func Execute(ctx context.Context, algorithm string, input []int, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	st := stage.New(opts.Geometry, opts.Timing)
	a := anim.New(st, anim.NopHost{}, anim.Options{TrackDelay: opts.TrackDelay, Logger: opts.log()})
	perStep := metrics.NewEntriesPerStep()
	for _, m := range metrics.Standard() {
		if m.Name() == perStep.Name() {
			continue
		}
		a.AddMetric(m)
	}
	a.AddMetric(perStep)

	if err := a.Sort(algorithm, input); err != nil {
		return nil, err
	}
	st.Layout()
	frames := st.Drain(FrameStep)
	if !a.Done() {
		return nil, fmt.Errorf("%w: %s did not finish playback", ErrCheck, algorithm)
	}

	res := &Result{
		RunID:     a.RunID(),
		Algorithm: a.Algorithm(),
		Input:     slices.Clone(input),
		Sorted:    a.Sorted(),
		Entries:   a.QueueLen(),
		Queue:     a.Entries(),
		Steps:     len(a.Steps()),
		Frames:    frames,
		Stats:     a.Stats(),
		PerStep:   perStep.Series(),
	}

	want := slices.Clone(input)
	slices.Sort(want)
	if !slices.Equal(res.Sorted, want) {
		return res, fmt.Errorf("%w: %s sorted %v to %v", ErrCheck, algorithm, input, res.Sorted)
	}
	if row := Row(st); !slices.Equal(row, want) {
		return res, fmt.Errorf("%w: %s drew %v, want %v", ErrCheck, algorithm, row, want)
	}
	if tracks := countTracks(a.Entries()); tracks != res.Steps {
		return res, fmt.Errorf("%w: %d steps recorded for %d track markers", ErrCheck, res.Steps, tracks)
	}
	if opts.Verify {
		if err := VerifyNavigation(a, st); err != nil {
			return res, err
		}
	}
	return res, nil
}

// Row returns element values in drawn order, left to right.
func Row(st *stage.Stage) []int {
	type cell struct {
		x     float64
		value int
	}
	var cells []cell
	for _, id := range st.Slots() {
		if st.Kind(id) == anim.SlotElement {
			cells = append(cells, cell{st.Position(id).X, st.Value(id)})
		}
	}
	slices.SortFunc(cells, func(a, b cell) int {
		switch {
		case a.x < b.x:
			return -1
		case a.x > b.x:
			return 1
		}
		return 0
	})
	out := make([]int, len(cells))
	for i, c := range cells {
		out[i] = c.value
	}
	return out
}

// VerifyNavigation walks from the last step to the first and back, checking
// every step against its recorded snapshot. It leaves the run at its final
// state.
func VerifyNavigation(a *anim.Animator, st *stage.Stage) error {
	steps := a.Steps()
	if len(steps) == 0 {
		return nil
	}
	final := anim.Capture(st)

	for {
		err := a.PreviousStep()
		if errors.Is(err, anim.ErrFirstStep) {
			break
		}
		if err != nil {
			return err
		}
		k := a.CurrentStep()
		if !anim.Capture(st).Equal(steps[k].Snapshot) {
			return fmt.Errorf("%w: previous step %d does not match its snapshot", ErrCheck, k)
		}
	}

	for {
		err := a.NextStep()
		if errors.Is(err, anim.ErrLastStep) {
			break
		}
		if err != nil {
			return err
		}
		st.Drain(FrameStep)
		k := a.CurrentStep()
		if !anim.Capture(st).Equal(steps[k].Snapshot) {
			return fmt.Errorf("%w: next step %d does not match its snapshot", ErrCheck, k)
		}
	}

	if !anim.Capture(st).Equal(final) {
		return fmt.Errorf("%w: navigation did not return to the final state", ErrCheck)
	}
	if len(a.Steps()) != len(steps) {
		return fmt.Errorf("%w: navigation recorded new steps", ErrCheck)
	}
	return nil
}

func countTracks(entries []anim.Entry) int {
	n := 0
	for _, e := range entries {
		if e.Op.Kind == anim.KindTrack {
			n++
		}
	}
	return n
}
