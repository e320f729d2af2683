package chain

import (
	"iter"

	"github.com/ib-77/tryiter/pkg/rop"
	"github.com/ib-77/tryiter/pkg/rop/core"
	"github.com/ib-77/tryiter/pkg/rop/tryiter"
)

// Chain wraps a fallible sequence to enable fluent chaining
type Chain[T any] struct {
	it rop.Iterator[T]
}

// Start creates a new chain from any fallible sequence
func Start[T any](it rop.Iterator[T]) *Chain[T] {
	return &Chain[T]{it: it}
}

// FromValues creates a new chain of successful values
func FromValues[T any](values ...T) *Chain[T] {
	return Start[T](core.FromValues(values...))
}

// Parse creates a new chain yielding parse(input) for each input
func Parse[S, T any](inputs []S, parse func(in S) (T, error)) *Chain[T] {
	return Start[T](core.Parse(inputs, parse))
}

// Next pulls from the chain, so a Chain is itself a rop.Iterator
func (c *Chain[T]) Next() (rop.Result[T], bool) {
	return c.it.Next()
}

// All ranges over the chain as (value, error) pairs
func (c *Chain[T]) All() iter.Seq2[T, error] {
	return core.All[T](c.it)
}

// Map chains a pure transformation of the successes
func Map[T, U any](c *Chain[T], onSuccess func(T) U) *Chain[U] {
	return Start[U](tryiter.TryMap(c.it, onSuccess))
}

// Then chains a function that returns rop.Result[U]; convert may be nil
func Then[T, U any](c *Chain[T], onSuccess func(T) rop.Result[U], convert func(error) error) *Chain[U] {
	return Start[U](tryiter.MapAndThen(c.it, onSuccess, convert))
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(T) (U, error)) *Chain[U] {
	return Start[U](tryiter.TryFlatMap(c.it, tryOnSuccess, nil))
}

// Filter keeps the successes that satisfy predicate; failures pass through
func (c *Chain[T]) Filter(predicate func(T) bool) *Chain[T] {
	return Start[T](tryiter.TryFilter(c.it, predicate))
}

// TakeOk ends the chain at its first failure
func (c *Chain[T]) TakeOk(opts ...core.Option) *tryiter.TakeOkIter[T] {
	return tryiter.TakeOk(c.it, opts...)
}

// FilterOk drops every failure of the chain
func (c *Chain[T]) FilterOk(opts ...core.Option) *tryiter.FilterOkIter[T] {
	return tryiter.FilterOk(c.it, opts...)
}

// Collect drains the chain into a slice, failing fast
func (c *Chain[T]) Collect() rop.Result[[]T] {
	return tryiter.TryCollectSlice(c.it)
}

// Buffer drains the chain into a tryiter.Buffer, failing fast
func (c *Chain[T]) Buffer() rop.Result[*tryiter.Buffer[T]] {
	return tryiter.TryBuffer(c.it)
}

// CollectInto drains the chain into the container made by build
func CollectInto[T, C any](c *Chain[T], build func(iter.Seq[T]) C) rop.Result[C] {
	return tryiter.TryCollect(c.it, build)
}
