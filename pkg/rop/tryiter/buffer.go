package tryiter

import (
	"iter"
	"slices"

	"github.com/ib-77/tryiter/pkg/rop"
	"github.com/ib-77/tryiter/pkg/rop/solo"
)

// Buffer is a finite, non-fallible sequence over values collected by
// TryBuffer. It can be consumed from either end; once empty it stays empty.
type Buffer[T any] struct {
	items []T
	front int
	back  int
}

// TryBuffer drains it like TryCollect. On success the values are returned
// as a Buffer; on failure the first failure is returned and nothing else.
func TryBuffer[T any](it rop.Iterator[T]) rop.Result[*Buffer[T]] {
	return solo.Map(TryCollectSlice(it), newBuffer[T])
}

func newBuffer[T any](items []T) *Buffer[T] {
	return &Buffer[T]{items: items, back: len(items)}
}

// Len is the exact number of values not yet consumed.
func (b *Buffer[T]) Len() int {
	return b.back - b.front
}

func (b *Buffer[T]) Next() (T, bool) {
	if b.front >= b.back {
		var zero T
		return zero, false
	}
	b.front++
	return b.items[b.front-1], true
}

func (b *Buffer[T]) NextBack() (T, bool) {
	if b.front >= b.back {
		var zero T
		return zero, false
	}
	b.back--
	return b.items[b.back], true
}

// All consumes the buffer front to back.
func (b *Buffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := b.Next(); ok; v, ok = b.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward consumes the buffer back to front.
func (b *Buffer[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := b.NextBack(); ok; v, ok = b.NextBack() {
			if !yield(v) {
				return
			}
		}
	}
}

// Clone returns an independent cursor starting at b's current position.
// The values themselves are shared, not copied.
func (b *Buffer[T]) Clone() *Buffer[T] {
	return &Buffer[T]{items: b.items, front: b.front, back: b.back}
}

// Remaining copies out the values not yet consumed without consuming them.
func (b *Buffer[T]) Remaining() []T {
	return slices.Clone(b.items[b.front:b.back])
}
