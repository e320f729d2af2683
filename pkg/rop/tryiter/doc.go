// Package tryiter provides lazy adapters and eager terminal operations over
// fallible sequences (rop.Iterator), so a pipeline can be written against
// success values while errors are forwarded, dropped, or short-circuited
// according to each operation.
//
// Adapters, all lazy:
// - TryMap: transform successes, forward failures unchanged
// - MapAndThen/TryFlatMap: transform with a function that may fail, converting errors
// - TryFilter: skip successes that fail a predicate, forward failures
// - TakeOk: successes up to the first failure, then stop
// - FilterOk: all successes, failures skipped
//
// Terminal operations, both fail fast:
// - TryCollect/TryCollectSlice: build a container from the successes
// - TryBuffer: collect into a double-ended Buffer
//
// Nothing here is safe for concurrent use; each adapter owns the iterator it
// wraps and is meant to be pulled from a single goroutine.
package tryiter
