package stage

import "time"

// Geometry places slots on the surface. Y grows downwards.
type Geometry struct {
	Pitch      float64
	Baseline   float64
	IndexRow   float64
	PointerRow float64
	RowGap     float64
	RaiseLow   float64
	RaiseHigh  float64
}

func DefaultGeometry() Geometry {
	return Geometry{
		Pitch:      4,
		Baseline:   4,
		IndexRow:   5,
		PointerRow: 6,
		RowGap:     1,
		RaiseLow:   2,
		RaiseHigh:  4,
	}
}

// Timing sets effect durations at speed 1.
type Timing struct {
	Move time.Duration
	Fade time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		Move: 300 * time.Millisecond,
		Fade: 150 * time.Millisecond,
	}
}

// ease is smoothstep; it maps 0 to 0 and 1 to 1.
func ease(f float64) float64 {
	return f * f * (3 - 2*f)
}

func lerp(a, b, f float64) float64 {
	if f >= 1 {
		return b
	}
	return a + (b-a)*f
}
