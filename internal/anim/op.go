package anim

import (
	"fmt"
)

// Kind tags an Operation.
type Kind int

const (
	KindSwap Kind = iota + 1
	KindRaise
	KindLower
	KindShift
	KindPointer
	KindTrack
)

func (k Kind) String() string {
	switch k {
	case KindSwap:
		return "swap"
	case KindRaise:
		return "raise"
	case KindLower:
		return "lower"
	case KindShift:
		return "shift"
	case KindPointer:
		return "pointer"
	case KindTrack:
		return "track"
	default:
		return "unknown"
	}
}

// Operation is one structural event reported by a sort. Which fields are
// meaningful depends on Kind:
//
//	Swap     I, J
//	Raise    I, Stay
//	Lower    I
//	Shift    I, J, FromFloating
//	Pointer  Pointer, I (new index)
//	Track    Line
type Operation struct {
	Kind         Kind
	I, J         int
	Stay         bool
	FromFloating bool
	Pointer      string
	Line         int
}

func Swap(i, j int) Operation { return Operation{Kind: KindSwap, I: i, J: j} }

func Raise(i int, stay bool) Operation { return Operation{Kind: KindRaise, I: i, Stay: stay} }

func Lower(i int) Operation { return Operation{Kind: KindLower, I: i} }

func Shift(i, j int, fromFloating bool) Operation {
	return Operation{Kind: KindShift, I: i, J: j, FromFloating: fromFloating}
}

func PointerMove(name string, i int) Operation {
	return Operation{Kind: KindPointer, Pointer: name, I: i}
}

func Track(line int) Operation { return Operation{Kind: KindTrack, Line: line} }

func (o Operation) String() string {
	switch o.Kind {
	case KindSwap:
		return fmt.Sprintf("swap(%d,%d)", o.I, o.J)
	case KindRaise:
		if o.Stay {
			return fmt.Sprintf("raise(%d,stay)", o.I)
		}
		return fmt.Sprintf("raise(%d)", o.I)
	case KindLower:
		return fmt.Sprintf("lower(%d)", o.I)
	case KindShift:
		if o.FromFloating {
			return fmt.Sprintf("shift(%d,%d,floating)", o.I, o.J)
		}
		return fmt.Sprintf("shift(%d,%d)", o.I, o.J)
	case KindPointer:
		return fmt.Sprintf("pointer(%s,%d)", o.Pointer, o.I)
	case KindTrack:
		return fmt.Sprintf("track(%d)", o.Line)
	default:
		return fmt.Sprintf("unknown(%d)", int(o.Kind))
	}
}

// Validate checks the payload shape. Index ranges are the Remapper's concern;
// n is only used for the pointer target, which has no mapped slot.
func (o Operation) Validate(n int) error {
	switch o.Kind {
	case KindSwap, KindRaise, KindLower, KindShift:
		return nil
	case KindPointer:
		if o.Pointer == "" {
			return fmt.Errorf("%w: pointer without name", ErrMalformed)
		}
		if o.I < 0 || o.I >= n {
			return fmt.Errorf("%w: pointer %s index %d outside [0,%d)", ErrMalformed, o.Pointer, o.I, n)
		}
		return nil
	case KindTrack:
		if o.Line < 1 {
			return fmt.Errorf("%w: track line %d", ErrMalformed, o.Line)
		}
		return nil
	default:
		return fmt.Errorf("%w: kind %d", ErrMalformed, int(o.Kind))
	}
}
