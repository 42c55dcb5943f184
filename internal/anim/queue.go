package anim

// Phase is the part of an operation's expansion an entry belongs to.
type Phase int

const (
	PhaseMain Phase = iota
	PhaseSelect
	PhaseRaise
	PhaseShift
	PhaseLower
	PhaseUnselect
)

func (p Phase) String() string {
	switch p {
	case PhaseMain:
		return "main"
	case PhaseSelect:
		return "select"
	case PhaseRaise:
		return "raise"
	case PhaseShift:
		return "shift"
	case PhaseLower:
		return "lower"
	case PhaseUnselect:
		return "unselect"
	default:
		return "unknown"
	}
}

// Entry is one queued, not yet materialized effect.
type Entry struct {
	Op    Operation
	Phase Phase
	make  Factory
}

// Effect materializes the entry. Each call creates a fresh effect.
func (e Entry) Effect() Effect {
	if e.make == nil {
		return Instant(nil)
	}
	return e.make()
}

// Queue is the append-only list of effect factories for one run.
type Queue struct {
	entries []Entry
}

// Enqueue appends an entry and returns its position. f is not called.
func (q *Queue) Enqueue(op Operation, phase Phase, f Factory) int {
	q.entries = append(q.entries, Entry{Op: op, Phase: phase, make: f})
	return len(q.entries) - 1
}

func (q *Queue) Len() int {
	return len(q.entries)
}

func (q *Queue) At(pos int) Entry {
	return q.entries[pos]
}

// Entries returns a copy of the queued entries.
func (q *Queue) Entries() []Entry {
	out := make([]Entry, len(q.entries))
	copy(out, q.entries)
	return out
}
