// Package anim turns the operation stream of an instrumented sort into a
// queue of deferred visual effects and plays them back one at a time.
//
// A run has two phases. Generation runs the algorithm to completion; every
// reported operation is applied to the run's Remapper immediately and
// appended to the Queue as a lazy Factory. Playback then walks the queue with
// a Scheduler: the effect at the cursor is materialized, started, and the next
// one is only materialized from its completion hook. Materializing late is
// what lets an effect read start coordinates as they were left by every prior
// effect rather than as they were during generation.
//
// Track operations pace playback to source lines. On the first traversal of a
// queue the Animator records a Step (queue position, line, snapshot of every
// slot) whenever the cursor reaches one; PreviousStep restores a recorded
// snapshot directly and NextStep replays the bounded range up to the next
// Track marker.
//
// Everything runs on the caller's goroutine. At most one effect is in flight.
package anim
