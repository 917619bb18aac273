// Package errgroup runs a set of goroutines whose lifetimes and failures
// are tied together through one shared context.
//
// The first error cancels the group context so the remaining goroutines can
// stop early; Wait returns it once every goroutine has finished. A panic in
// a group goroutine does not crash the process: it is logged, recorded on
// the active span and surfaced from Wait as ErrPanicRecovered.
package errgroup
