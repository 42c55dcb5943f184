// Package metrics provides anim.Metric implementations that summarize the
// operation stream of a run.
package metrics

import "github.com/san-kum/sortviz/internal/anim"

// Standard returns a fresh set of the metrics shown by the CLI and the TUI.
func Standard() []anim.Metric {
	return []anim.Metric{
		NewSwaps(),
		NewShifts(),
		NewPointerMoves(),
		NewSteps(),
		NewMovement(),
		NewEntriesPerStep(),
	}
}
