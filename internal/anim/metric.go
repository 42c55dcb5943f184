package anim

// Metric observes operations as they are applied during generation. entries
// is the number of queue entries the operation expanded into.
type Metric interface {
	Name() string
	Observe(op Operation, entries int)
	Value() float64
	Reset()
}
