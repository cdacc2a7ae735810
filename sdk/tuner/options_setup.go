package tuner

import (
	"errors"
	"math"

	"github.com/tonegrid/pitchkit/internal/logger"
	"github.com/tonegrid/pitchkit/sdk/contracts"
)

// ErrInvalidConcertPitch is returned when the configured A4 reference is
// not a positive finite frequency.
var ErrInvalidConcertPitch = errors.New("concert pitch must be a positive finite frequency")

// applyDefaultOptions sets default values for TunerOptions if not explicitly provided.
func applyDefaultOptions(opts ...contracts.Option) (contracts.TunerOptions, error) {
	options := &contracts.TunerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	if options.ConcertPitch == 0 {
		options.ConcertPitch = concertPitchDefault
	}
	if options.ConcertPitch <= 0 || math.IsNaN(options.ConcertPitch) || math.IsInf(options.ConcertPitch, 0) {
		return contracts.TunerOptions{}, ErrInvalidConcertPitch
	}

	options.Logger.SetLevel(options.LogLevel)
	return *options, nil
}
