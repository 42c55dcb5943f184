// Package stage is a headless implementation of anim.Renderer.
//
// Slots live in surface units: elements sit on the baseline one pitch apart,
// index labels one row below them and pointers on their own rows further
// down. Effects are tweens; nothing moves until the owner calls Advance with
// the elapsed frame time. The terminal UI drives Advance from its tick loop,
// the CLI and tests use Drain.
package stage
