package anim

// Step is a recorded navigation point: the queue position of a Track entry,
// its source line and the surface state just before that entry started.
type Step struct {
	Position int
	Line     int
	Snapshot Snapshot
}

type stepTracker struct {
	steps     []Step
	byPos     map[int]int
	cur       int
	recording bool
}

func newStepTracker() *stepTracker {
	return &stepTracker{byPos: make(map[int]int), cur: -1, recording: true}
}

// reach records or re-enters the step at pos. Steps are only recorded during
// the first traversal of the queue.
func (t *stepTracker) reach(pos int, e Entry, s Surface) {
	if e.Op.Kind != KindTrack || e.Phase != PhaseMain {
		return
	}
	if idx, ok := t.byPos[pos]; ok {
		t.cur = idx
		return
	}
	if !t.recording {
		return
	}
	t.steps = append(t.steps, Step{Position: pos, Line: e.Op.Line, Snapshot: Capture(s)})
	t.cur = len(t.steps) - 1
	t.byPos[pos] = t.cur
}

func (t *stepTracker) idle(exhausted bool) {
	if exhausted {
		t.recording = false
	}
}
