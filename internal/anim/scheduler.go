package anim

// Scheduler plays queue entries one at a time. At most one effect is in
// flight; the next entry is materialized only when the previous one reports
// completion.
type Scheduler struct {
	queue   *Queue
	cursor  int
	stop    int
	current Effect
	gen     uint64

	// OnReach is called before the entry at pos is materialized.
	OnReach func(pos int, e Entry)
	// OnIdle is called when a playback range has been fully played.
	// exhausted reports whether the end of the queue was reached.
	OnIdle func(exhausted bool)
}

func NewScheduler(q *Queue) *Scheduler {
	return &Scheduler{queue: q}
}

// Busy reports whether an effect is in flight.
func (s *Scheduler) Busy() bool {
	return s.current != nil
}

// Cursor is the position of the next entry to play.
func (s *Scheduler) Cursor() int {
	return s.cursor
}

// Seek moves the cursor without playing anything.
func (s *Scheduler) Seek(pos int) error {
	if s.Busy() {
		return ErrBusy
	}
	s.cursor = clamp(pos, 0, s.queue.Len())
	return nil
}

// Play resumes from the cursor to the end of the queue.
func (s *Scheduler) Play() error {
	return s.PlayRange(s.cursor, s.queue.Len())
}

// PlayRange plays entries in [from, stop).
func (s *Scheduler) PlayRange(from, stop int) error {
	if s.Busy() {
		return ErrBusy
	}
	s.cursor = clamp(from, 0, s.queue.Len())
	s.stop = clamp(stop, s.cursor, s.queue.Len())
	s.run()
	return nil
}

// Reset cancels the in-flight effect and rewinds. Completion callbacks of
// effects started before the reset are ignored.
func (s *Scheduler) Reset() {
	s.gen++
	if s.current != nil {
		cur := s.current
		s.current = nil
		cur.Cancel()
	}
	s.cursor = 0
	s.stop = 0
}

// run starts entries until one completes asynchronously or the range ends.
// Effects that complete inside Start are handled by the loop rather than by
// recursing through their callbacks.
func (s *Scheduler) run() {
	gen := s.gen
	for s.cursor < s.stop {
		pos := s.cursor
		entry := s.queue.At(pos)
		if s.OnReach != nil {
			s.OnReach(pos, entry)
			if s.gen != gen {
				return
			}
		}

		eff := entry.Effect()
		s.current = eff
		starting, inline, fired := true, false, false
		eff.Start(func() {
			if fired || s.gen != gen {
				return
			}
			fired = true
			s.current = nil
			s.cursor = pos + 1
			if starting {
				inline = true
				return
			}
			s.run()
		})
		starting = false
		if s.gen != gen || !inline {
			return
		}
	}
	if s.OnIdle != nil {
		s.OnIdle(s.cursor >= s.queue.Len())
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
