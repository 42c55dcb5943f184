package tui

import (
	"errors"
	"log/slog"
	"time"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/anim"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/stage"
)

// noticeTTL is how long a rejected command stays on screen.
const noticeTTL = 1500 * time.Millisecond

// session is the state shared between bubbletea model copies. It is also
// the animator's script host.
type session struct {
	cfg      *config.Config
	stage    *stage.Stage
	anim     *anim.Animator
	log      *slog.Logger
	algo     algo.Algorithm
	input    []int
	line     int
	notice   string
	noticeAt time.Time
	seed     int64
	perStep  *metrics.EntriesPerStep
	ticks    int
}

func newSession(cfg *config.Config, log *slog.Logger) *session {
	s := &session{cfg: cfg, log: log, seed: cfg.Seed}
	s.stage = cfg.NewStage()
	s.anim = anim.New(s.stage, s, anim.Options{TrackDelay: cfg.TrackDelay(), Logger: log})
	for _, m := range metrics.Standard() {
		if e, ok := m.(*metrics.EntriesPerStep); ok {
			s.perStep = e
		}
		s.anim.AddMetric(m)
	}
	return s
}

func (s *session) HighlightLine(line int) { s.line = line }

func (s *session) ShowSource(name string) {
	if a, err := algo.Lookup(name); err == nil {
		s.algo = a
	}
}

func (s *session) RunAnimation(name string, input []int) {
	s.log.Debug("animation requested", "algorithm", name, "n", len(input))
}

// start generates a run for the selected algorithm and input. Playback
// begins on the next frame, once the stage has been laid out.
func (s *session) start(name string, input []int) error {
	s.input = append([]int(nil), input...)
	return s.anim.Sort(name, s.input)
}

func (s *session) restart() error {
	return s.start(s.algo.Name, s.input)
}

func (s *session) shuffle() error {
	s.seed++
	return s.start(s.algo.Name, config.RandomInput(len(s.input), s.seed))
}

// errNotStarted rejects step navigation before the first step of a run has
// been reached.
var errNotStarted = errors.New("playback has not started yet")

// step runs a navigation command, or rejects it while the run has not
// reached its first step.
func (s *session) step(nav func() error) error {
	if s.anim.CurrentStep() < 0 && !s.anim.Done() && !s.anim.Busy() {
		return errNotStarted
	}
	return nav()
}

// frame lays out a fresh run and advances running effects by dt.
func (s *session) frame(dt time.Duration) {
	if !s.stage.Ready() {
		s.stage.Layout()
	}
	s.stage.Advance(dt)
}

// report turns a command error into a transient notice. Rejections are
// expected during normal use; anything else is logged as well.
func (s *session) report(err error, now time.Time) {
	if err == nil {
		return
	}
	s.notice = noticeText(err)
	s.noticeAt = now
	if !anim.IsRejection(err) && !errors.Is(err, errNotStarted) {
		s.log.Error("command failed", "err", err)
	}
}

func (s *session) currentNotice(now time.Time) string {
	if s.notice == "" || now.Sub(s.noticeAt) > noticeTTL {
		return ""
	}
	return s.notice
}

func noticeText(err error) string {
	switch {
	case errors.Is(err, anim.ErrBusy):
		return "animation in progress"
	case errors.Is(err, anim.ErrFirstStep):
		return "already at the first step"
	case errors.Is(err, anim.ErrLastStep):
		return "already at the last step"
	default:
		return err.Error()
	}
}
