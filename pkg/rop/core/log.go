package core

import "github.com/rs/zerolog"

// LogDiscarded returns a discard handler that writes each dropped error to
// logger at debug level, tagged with stage.
func LogDiscarded(logger zerolog.Logger, stage string) func(err error) {
	return func(err error) {
		logger.Debug().
			Err(err).
			Str("stage", stage).
			Msg("discarded failure")
	}
}
