package tryiter

import (
	"iter"

	"github.com/ib-77/tryiter/pkg/rop"
	"github.com/ib-77/tryiter/pkg/rop/core"
	"github.com/ib-77/tryiter/pkg/rop/solo"
)

// Mapped is the fallible sequence returned by TryMap.
type Mapped[T, U any] struct {
	it rop.Iterator[T]
	f  func(T) U
}

// TryMap applies f to every success of it. Failures are forwarded
// unchanged and f is never called for them, so the output has the same
// length and failure positions as it.
func TryMap[T, U any](it rop.Iterator[T], f func(v T) U) *Mapped[T, U] {
	return &Mapped[T, U]{it: it, f: f}
}

func (m *Mapped[T, U]) Next() (rop.Result[U], bool) {
	r, ok := m.it.Next()
	if !ok {
		return rop.Result[U]{}, false
	}
	return solo.Map(r, m.f), true
}

func (m *Mapped[T, U]) All() iter.Seq2[U, error] {
	return core.All[U](m)
}

// AndThen is the fallible sequence returned by MapAndThen and TryFlatMap.
type AndThen[T, U any] struct {
	it      rop.Iterator[T]
	f       func(T) rop.Result[U]
	convert func(error) error
}

// MapAndThen applies f to every success of it; f may itself fail. Both the
// failures already in it and the ones produced by f go through convert,
// which lets stages with different error types settle on one. A nil
// convert keeps errors as they are.
func MapAndThen[T, U any](it rop.Iterator[T], f func(v T) rop.Result[U],
	convert func(err error) error) *AndThen[T, U] {
	return &AndThen[T, U]{it: it, f: f, convert: convert}
}

// TryFlatMap is MapAndThen for functions in the (value, error) form.
func TryFlatMap[T, U any](it rop.Iterator[T], f func(v T) (U, error),
	convert func(err error) error) *AndThen[T, U] {
	return MapAndThen(it, func(v T) rop.Result[U] {
		return solo.Try(solo.Succeed(v), f)
	}, convert)
}

func (a *AndThen[T, U]) Next() (rop.Result[U], bool) {
	r, ok := a.it.Next()
	if !ok {
		return rop.Result[U]{}, false
	}
	return solo.AndThen(r, a.f, a.convert), true
}

func (a *AndThen[T, U]) All() iter.Seq2[U, error] {
	return core.All[U](a)
}

// Filtered is the fallible sequence returned by TryFilter.
type Filtered[T any] struct {
	it        rop.Iterator[T]
	predicate func(T) bool
}

// TryFilter drops the successes of it that do not satisfy predicate.
// Failures are forwarded as soon as they are pulled and never reach
// predicate; the sequence goes on after them.
func TryFilter[T any](it rop.Iterator[T], predicate func(v T) bool) *Filtered[T] {
	return &Filtered[T]{it: it, predicate: predicate}
}

func (f *Filtered[T]) Next() (rop.Result[T], bool) {
	for {
		r, ok := f.it.Next()
		if !ok {
			return rop.Result[T]{}, false
		}
		if r.IsFailure() || f.predicate(r.Result()) {
			return r, true
		}
	}
}

func (f *Filtered[T]) All() iter.Seq2[T, error] {
	return core.All[T](f)
}
