// Package rop defines the two shared contracts of the module: Result[T], the
// success-or-error value carried by every element of a fallible sequence,
// and Iterator[T], the pull-based capability that every source and adapter
// implements.
//
// Concrete sources live in package core, the adapters and terminal
// operations in package tryiter, and the fluent wrapper in package chain.
package rop
