// Package chain provides a fluent wrapper around rop.Iterator[T]
// for building lazy pipelines over fallible sequences using tryiter adapters.
//
// Methods keep the element type; functions change it, because Go methods
// cannot introduce type parameters.
//
// Key operations:
// - Start/FromValues/Parse: begin a chain from an iterator, values or tokens
// - Map: transform the successful values (T -> U)
// - Then: switch to a new Result[U] via a function, converting errors
// - ThenTry: call a function (U, error) and turn the error into a failure
// - Filter: keep successes matching a predicate
// - TakeOk/FilterOk: leave the fallible world by halting on or skipping failures
// - Collect/CollectInto/Buffer: drain the chain, failing fast
package chain
