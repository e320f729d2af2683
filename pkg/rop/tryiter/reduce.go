package tryiter

import (
	"iter"

	"github.com/ib-77/tryiter/pkg/rop"
	"github.com/ib-77/tryiter/pkg/rop/core"
)

// TakeOkIter is the plain sequence returned by TakeOk.
type TakeOkIter[T any] struct {
	it     rop.Iterator[T]
	opts   core.Options
	halted bool
}

// TakeOk yields the successes of it up to its first failure. The failure
// ends the sequence for good and it is not pulled again afterwards. The
// error is dropped unless a discard handler is configured.
func TakeOk[T any](it rop.Iterator[T], opts ...core.Option) *TakeOkIter[T] {
	return &TakeOkIter[T]{it: it, opts: core.NewOptions(opts...)}
}

func (t *TakeOkIter[T]) Next() (T, bool) {
	var zero T
	if t.halted {
		return zero, false
	}

	r, ok := t.it.Next()
	if !ok {
		return zero, false
	}
	if r.IsFailure() {
		t.halted = true
		t.opts.Discarded(r.Err())
		return zero, false
	}
	return r.Result(), true
}

func (t *TakeOkIter[T]) All() iter.Seq[T] {
	return core.Values[T](t)
}

// FilterOkIter is the plain sequence returned by FilterOk.
type FilterOkIter[T any] struct {
	it   rop.Iterator[T]
	opts core.Options
}

// FilterOk yields every success of it, skipping failures and carrying on
// after them.
func FilterOk[T any](it rop.Iterator[T], opts ...core.Option) *FilterOkIter[T] {
	return &FilterOkIter[T]{it: it, opts: core.NewOptions(opts...)}
}

func (f *FilterOkIter[T]) Next() (T, bool) {
	for {
		r, ok := f.it.Next()
		if !ok {
			var zero T
			return zero, false
		}
		if r.IsSuccess() {
			return r.Result(), true
		}
		f.opts.Discarded(r.Err())
	}
}

func (f *FilterOkIter[T]) All() iter.Seq[T] {
	return core.Values[T](f)
}
