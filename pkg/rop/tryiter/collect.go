package tryiter

import (
	"iter"
	"slices"

	"github.com/ib-77/tryiter/pkg/rop"
)

// Pair is the element type ToMap builds from.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

func ToSlice[T any](seq iter.Seq[T]) []T {
	return slices.Collect(seq)
}

func ToSet[T comparable](seq iter.Seq[T]) map[T]struct{} {
	set := make(map[T]struct{})
	for v := range seq {
		set[v] = struct{}{}
	}
	return set
}

// ToMap keeps the last value seen for a repeated key.
func ToMap[K comparable, V any](seq iter.Seq[Pair[K, V]]) map[K]V {
	m := make(map[K]V)
	for p := range seq {
		m[p.Key] = p.Value
	}
	return m
}

// TryCollect drains it into the container made by build, which receives
// the successes in order. The first failure stops the drain: whatever build
// made is thrown away and the failure is returned. it is not pulled again
// after that, even if build ranges over its input a second time.
//
// build has the shape of slices.Collect, so the container is up to the
// caller; see ToSlice, ToSet and ToMap.
func TryCollect[T, C any](it rop.Iterator[T], build func(seq iter.Seq[T]) C) rop.Result[C] {
	var failed rop.Result[T]
	hasFailed := false

	c := build(func(yield func(T) bool) {
		if hasFailed {
			return
		}
		for r, ok := it.Next(); ok; r, ok = it.Next() {
			if r.IsFailure() {
				failed, hasFailed = r, true
				return
			}
			if !yield(r.Result()) {
				return
			}
		}
	})

	if hasFailed {
		return rop.FailFrom[T, C](failed)
	}
	return rop.Success(c)
}

func TryCollectSlice[T any](it rop.Iterator[T]) rop.Result[[]T] {
	return TryCollect(it, ToSlice[T])
}
