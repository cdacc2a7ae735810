// Package tuner is the host-facing client for the conversion packages. It
// bundles the pure pitch and note operations with a configurable concert
// pitch and structured diagnostic logging, configured through functional
// options. Hosts that need only the conversions can use the pitch and note
// packages directly.
package tuner

import (
	"github.com/tonegrid/pitchkit/sdk/contracts"
	"github.com/tonegrid/pitchkit/sdk/note"
	"github.com/tonegrid/pitchkit/sdk/pitch"
)

// concertPitchDefault is the standard tuning reference: A4 at 440 Hz.
const concertPitchDefault = 440.0

// Tuner converts between note names, frequencies and MIDI numbers under a
// fixed concert pitch. Safe for concurrent use; it holds no mutable state
// beyond the logger it was built with.
type Tuner struct {
	logger contracts.Logger
	// ratio rescales between the configured concert pitch and the
	// 440 Hz reference the pitch package is anchored to.
	ratio float64
}

// New creates a tuner, applying defaults for any option not provided:
// a zap logger at info level and a 440 Hz concert pitch.
func New(opts ...contracts.Option) (*Tuner, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &Tuner{
		logger: options.Logger,
		ratio:  options.ConcertPitch / concertPitchDefault,
	}, nil
}

// Parse reads a note name such as "C#4" and returns its pitch under the
// tuner's concert pitch.
func (t *Tuner) Parse(s string) (pitch.Pitch, error) {
	p, err := pitch.Parse(s)
	if err != nil {
		t.logger.Debug("note name rejected",
			t.logger.Field().String("input", s),
			t.logger.Field().Error("error", err),
		)
		return pitch.Pitch{}, err
	}
	tuned := pitch.New(p.Frequency() * t.ratio)
	t.logger.Debug("note name parsed",
		t.logger.Field().String("input", s),
		t.logger.Field().Float64("frequency", tuned.Frequency()),
	)
	return tuned, nil
}

// MIDINumber returns the nearest MIDI note number of p under the tuner's
// concert pitch.
func (t *Tuner) MIDINumber(p pitch.Pitch) (int, error) {
	n, err := pitch.New(p.Frequency() / t.ratio).MIDINumber()
	if err != nil {
		t.logger.Debug("frequency outside MIDI range",
			t.logger.Field().Float64("frequency", p.Frequency()),
			t.logger.Field().Error("error", err),
		)
		return 0, err
	}
	return n, nil
}

// FromMIDINumber returns the pitch of a MIDI note number under the tuner's
// concert pitch.
func (t *Tuner) FromMIDINumber(n int) (pitch.Pitch, error) {
	p, err := pitch.FromMIDINumber(n)
	if err != nil {
		t.logger.Debug("MIDI number rejected",
			t.logger.Field().Int("midi", n),
			t.logger.Field().Error("error", err),
		)
		return pitch.Pitch{}, err
	}
	return pitch.New(p.Frequency() * t.ratio), nil
}

// Name spells p as a note name, preferring sharps, under the tuner's
// concert pitch.
func (t *Tuner) Name(p pitch.Pitch) (string, error) {
	n, err := note.FromPitch(pitch.New(p.Frequency() / t.ratio))
	if err != nil {
		t.logger.Debug("pitch cannot be spelled",
			t.logger.Field().Float64("frequency", p.Frequency()),
			t.logger.Field().Error("error", err),
		)
		return "", err
	}
	return n.Name(), nil
}

// Transpose shifts p by a number of semitones, which may be fractional and
// negative. Transposition is relative, so the concert pitch does not
// affect it.
func (t *Tuner) Transpose(p pitch.Pitch, semitones float64) pitch.Pitch {
	return p.Transpose(semitones)
}
