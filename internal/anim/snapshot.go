package anim

// SlotState is the recorded state of one slot. Pointers store their
// displayed value instead of a height.
type SlotState struct {
	ID        SlotID
	Kind      SlotKind
	X, Y      float64
	Value     int
	Highlight float64
}

type Snapshot []SlotState

// Capture records every slot of s in surface order.
func Capture(s Surface) Snapshot {
	ids := s.Slots()
	snap := make(Snapshot, 0, len(ids))
	for _, id := range ids {
		st := SlotState{
			ID:        id,
			Kind:      s.Kind(id),
			Highlight: s.Highlight(id),
		}
		p := s.Position(id)
		st.X = p.X
		if st.Kind == SlotPointer {
			st.Value = s.PointerValue(id)
		} else {
			st.Y = p.Y
		}
		snap = append(snap, st)
	}
	return snap
}

// Restore writes snap back to s without animating.
func Restore(s Surface, snap Snapshot) {
	for _, st := range snap {
		p := s.Position(st.ID)
		p.X = st.X
		if st.Kind == SlotPointer {
			s.SetPointerValue(st.ID, st.Value)
		} else {
			p.Y = st.Y
		}
		s.SetPosition(st.ID, p)
		s.SetHighlight(st.ID, st.Highlight)
	}
}

// Equal compares two snapshots slot by slot.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}
