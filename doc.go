// Package spatialhash implements the broad phase of a collision-detection
// pipeline: a uniform-grid cell table, a dynamic-vector table built over it,
// a hierarchical multi-tier table, and the overlap-pair accumulator it feeds.
//
// Every type here is a single-threaded value. None of them are safe for
// concurrent mutation, and a table being read (Find, Each) must not be
// mutated concurrently with those reads. There are no goroutines, channels,
// or locks anywhere in this package; callers that need concurrent access
// must serialize it themselves.
package spatialhash
