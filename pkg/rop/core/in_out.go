package core

import (
	"errors"
	"iter"

	"github.com/ib-77/tryiter/pkg/rop"
	"github.com/ib-77/tryiter/pkg/rop/solo"
)

// ErrUnknownFailure stands in for the error of an Outcome-shaped value that
// reports failure without carrying an error.
var ErrUnknownFailure = errors.New("failure without error")

// Puller is a plain, non-fallible pull sequence.
type Puller[T any] interface {
	Next() (T, bool)
}

func FromValues[T any](values ...T) rop.IteratorFunc[T] {
	pos := 0
	return func() (rop.Result[T], bool) {
		if pos >= len(values) {
			return rop.Result[T]{}, false
		}
		pos++
		return solo.Succeed(values[pos-1]), true
	}
}

func FromResults[T any](results ...rop.Result[T]) rop.IteratorFunc[T] {
	pos := 0
	return func() (rop.Result[T], bool) {
		if pos >= len(results) {
			return rop.Result[T]{}, false
		}
		pos++
		return results[pos-1], true
	}
}

// Parse yields parse(input) for each input in order. Parsing happens on
// pull, not up front.
func Parse[S, T any](inputs []S, parse func(in S) (T, error)) rop.IteratorFunc[T] {
	pos := 0
	return func() (rop.Result[T], bool) {
		if pos >= len(inputs) {
			return rop.Result[T]{}, false
		}
		pos++
		return solo.Try(solo.Succeed(inputs[pos-1]), parse), true
	}
}

// FromChan pulls from ch until it is closed.
func FromChan[T any](ch <-chan rop.Result[T]) rop.IteratorFunc[T] {
	return func() (rop.Result[T], bool) {
		r, ok := <-ch
		return r, ok
	}
}

// Pulled drives a push-style sequence through iter.Pull2. The pull
// coroutine is released once the sequence is exhausted or Stop is called;
// callers that abandon a Pulled early must call Stop.
type Pulled[T any] struct {
	next func() (T, error, bool)
	stop func()
}

func FromSeq2[T any](seq iter.Seq2[T, error]) *Pulled[T] {
	next, stop := iter.Pull2(seq)
	return &Pulled[T]{next: next, stop: stop}
}

// FromSeq accepts any sequence of Outcome-shaped values. T usually has to
// be given explicitly: FromSeq[int](seq).
func FromSeq[T any, R rop.WithError[T]](seq iter.Seq[R]) *Pulled[T] {
	return FromSeq2(func(yield func(T, error) bool) {
		for r := range seq {
			var err error
			if !r.IsSuccess() {
				err = r.Err()
				if err == nil {
					err = ErrUnknownFailure
				}
			}
			if !yield(r.Result(), err) {
				return
			}
		}
	})
}

func (p *Pulled[T]) Next() (rop.Result[T], bool) {
	if p.next == nil {
		return rop.Result[T]{}, false
	}

	v, err, ok := p.next()
	if !ok {
		p.Stop()
		return rop.Result[T]{}, false
	}
	if err != nil {
		return rop.Fail[T](err), true
	}
	return rop.Success(v), true
}

func (p *Pulled[T]) Stop() {
	if p.stop == nil {
		return
	}
	p.stop()
	p.next, p.stop = nil, nil
}

// All ranges over a fallible sequence as (value, error) pairs.
func All[T any](it rop.Iterator[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for r, ok := it.Next(); ok; r, ok = it.Next() {
			if !yield(r.Get()) {
				return
			}
		}
	}
}

// Results ranges over a fallible sequence without unpacking the Results.
func Results[T any](it rop.Iterator[T]) iter.Seq[rop.Result[T]] {
	return func(yield func(rop.Result[T]) bool) {
		for r, ok := it.Next(); ok; r, ok = it.Next() {
			if !yield(r) {
				return
			}
		}
	}
}

// Values ranges over a plain pull sequence.
func Values[T any](p Puller[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := p.Next(); ok; v, ok = p.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
