package anim

import (
	"errors"
	"testing"
)

func TestOperationString(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{Swap(0, 4), "swap(0,4)"},
		{Raise(5, true), "raise(5,stay)"},
		{Raise(2, false), "raise(2)"},
		{Lower(5), "lower(5)"},
		{Shift(4, 5, false), "shift(4,5)"},
		{Shift(5, 3, true), "shift(5,3,floating)"},
		{PointerMove("i", 2), "pointer(i,2)"},
		{Track(3), "track(3)"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestOperationValidate(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
		ok   bool
	}{
		{"swap", Swap(0, 9), true},
		{"pointer", PointerMove("i", 2), true},
		{"pointer unnamed", PointerMove("", 2), false},
		{"pointer past end", PointerMove("j", 3), false},
		{"track", Track(1), true},
		{"track zero", Track(0), false},
		{"zero kind", Operation{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op.Validate(3)
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrMalformed) {
				t.Errorf("got %v, want ErrMalformed", err)
			}
		})
	}
}
