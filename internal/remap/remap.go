// Package remap translates algorithm-relative array positions into the
// identities of the slots that are actually animated.
//
// Slots never change order on the render surface; only their drawn position
// moves. The Remapper therefore keeps, for one run, which slot currently
// stands at each logical index, the single slot that is held in the air during
// an insertion, and the slots of the named index pointers.
package remap

import (
	"errors"
	"fmt"
)

// SlotID identifies a rendered slot for its whole lifetime.
type SlotID int

// NoSlot is the zero value of an unset slot reference.
const NoSlot SlotID = -1

var (
	ErrUnmapped     = errors.New("remap: logical index not mapped")
	ErrFloatingHeld = errors.New("remap: a floating slot is already held")
	ErrNoFloating   = errors.New("remap: no floating slot is held")
	ErrNoPointer    = errors.New("remap: unknown pointer")
)

type Remapper struct {
	slots    []SlotID
	members  map[SlotID]struct{}
	floating SlotID
	pointers map[string]SlotID
}

// New maps logical index i to slots[i].
func New(slots []SlotID) *Remapper {
	m := &Remapper{
		slots:    make([]SlotID, len(slots)),
		members:  make(map[SlotID]struct{}, len(slots)),
		floating: NoSlot,
		pointers: make(map[string]SlotID),
	}
	copy(m.slots, slots)
	for _, id := range slots {
		m.members[id] = struct{}{}
	}
	return m
}

func (m *Remapper) Len() int { return len(m.slots) }

func (m *Remapper) check(i int) error {
	if i < 0 || i >= len(m.slots) {
		return fmt.Errorf("%w: %d (n=%d)", ErrUnmapped, i, len(m.slots))
	}
	return nil
}

func (m *Remapper) Get(i int) (SlotID, error) {
	if err := m.check(i); err != nil {
		return NoSlot, err
	}
	return m.slots[i], nil
}

func (m *Remapper) ApplySwap(i, j int) error {
	if err := m.check(i); err != nil {
		return err
	}
	if err := m.check(j); err != nil {
		return err
	}
	m.slots[i], m.slots[j] = m.slots[j], m.slots[i]
	return nil
}

// ApplyShift records that the slot at i moved to j. The entry at i is left
// stale; an insertion pass overwrites it before reading it again.
func (m *Remapper) ApplyShift(i, j int) error {
	if err := m.check(i); err != nil {
		return err
	}
	if err := m.check(j); err != nil {
		return err
	}
	m.slots[j] = m.slots[i]
	return nil
}

// Place puts slot id at logical index j.
func (m *Remapper) Place(j int, id SlotID) error {
	if err := m.check(j); err != nil {
		return err
	}
	m.slots[j] = id
	return nil
}

func (m *Remapper) MarkFloating(id SlotID) error {
	if m.floating != NoSlot {
		return fmt.Errorf("%w: slot %d while marking %d", ErrFloatingHeld, m.floating, id)
	}
	m.floating = id
	return nil
}

// Floating returns the held slot without releasing it.
func (m *Remapper) Floating() (SlotID, bool) {
	return m.floating, m.floating != NoSlot
}

func (m *Remapper) TakeFloating() (SlotID, error) {
	if m.floating == NoSlot {
		return NoSlot, ErrNoFloating
	}
	id := m.floating
	m.floating = NoSlot
	return id, nil
}

// IsPermutation reports whether the mapping holds exactly the slots the run
// started with, each once.
func (m *Remapper) IsPermutation() bool {
	if len(m.members) != len(m.slots) {
		return false
	}
	seen := make(map[SlotID]struct{}, len(m.slots))
	for _, id := range m.slots {
		if _, ok := m.members[id]; !ok {
			return false
		}
		if _, dup := seen[id]; dup {
			return false
		}
		seen[id] = struct{}{}
	}
	return true
}

// Slots returns a copy of the current mapping.
func (m *Remapper) Slots() []SlotID {
	out := make([]SlotID, len(m.slots))
	copy(out, m.slots)
	return out
}

func (m *Remapper) AddPointer(name string, id SlotID) {
	m.pointers[name] = id
}

func (m *Remapper) Pointer(name string) (SlotID, error) {
	id, ok := m.pointers[name]
	if !ok {
		return NoSlot, fmt.Errorf("%w: %q", ErrNoPointer, name)
	}
	return id, nil
}
