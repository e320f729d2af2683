package core

import "github.com/rs/zerolog"

// DiscardOptions controls what happens to errors that an adapter swallows.
type DiscardOptions struct {
	OnDiscard func(err error)
}

// Options is the resolved configuration of a reduction adapter.
type Options struct {
	Discard DiscardOptions
}

type Option func(o *Options)

// WithDiscardHandler registers h to observe every error an adapter drops
// instead of returning. Without it the errors are dropped silently.
func WithDiscardHandler(h func(err error)) Option {
	return func(o *Options) {
		o.Discard.OnDiscard = h
	}
}

// WithDiscardLogger is WithDiscardHandler(LogDiscarded(logger, stage)).
func WithDiscardLogger(logger zerolog.Logger, stage string) Option {
	return WithDiscardHandler(LogDiscarded(logger, stage))
}

func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Discarded reports err to the discard handler, if any.
func (o Options) Discarded(err error) {
	if o.Discard.OnDiscard != nil {
		o.Discard.OnDiscard(err)
	}
}
