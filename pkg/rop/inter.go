package rop

import "time"

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

var _ WithError[struct{}] = Result[struct{}]{}

// Iterator is a fallible sequence. Next returns the next Result and true,
// or false once the sequence is exhausted. Every adapter in this module is
// written against Iterator only.
type Iterator[T any] interface {
	Next() (Result[T], bool)
}

// IteratorFunc adapts a plain function to Iterator.
type IteratorFunc[T any] func() (Result[T], bool)

func (f IteratorFunc[T]) Next() (Result[T], bool) {
	return f()
}
