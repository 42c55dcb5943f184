package config

import "github.com/san-kum/sortviz/internal/stage"

// Geometry converts the layout section into stage units. One cell is one
// terminal column.
func (c *Config) Geometry() stage.Geometry {
	g := stage.DefaultGeometry()
	g.Pitch = float64(c.Layout.CellWidth + c.Layout.Gap)
	g.RaiseLow = float64(c.Layout.RaiseLow)
	g.RaiseHigh = float64(c.Layout.RaiseHigh)
	g.Baseline = g.RaiseHigh + 1
	g.IndexRow = g.Baseline + 1
	g.PointerRow = g.IndexRow + 1
	return g
}

func (c *Config) StageTiming() stage.Timing {
	return stage.Timing{Move: c.MoveDuration(), Fade: c.FadeDuration()}
}

// NewStage builds a stage with the configured geometry, timing and speed.
func (c *Config) NewStage() *stage.Stage {
	st := stage.New(c.Geometry(), c.StageTiming())
	st.SetSpeed(c.Speed)
	return st
}
