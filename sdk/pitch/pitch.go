// Package pitch models musical pitch as a raw frequency in Hertz and
// converts between frequencies, MIDI note numbers (0-127, 69 = A4 = 440 Hz)
// and parsed note names. All values are immutable and every operation is a
// pure function over equal-tempered (12-TET) tuning; for the symbolic
// letter/accidental/octave view of a pitch, see the note package.
package pitch

import (
	"math"

	"github.com/tonegrid/pitchkit/internal/mathx"
)

const (
	referenceHz   = 440.0 // A4
	referenceMIDI = 69
	semitones     = 12
	midiMax       = 127
)

// Pitch is a musical pitch represented purely by its frequency in Hertz.
// It carries no symbolic context such as letters or accidentals.
type Pitch struct {
	frequency float64
}

// New wraps a raw frequency in Hz. No validation is performed; values that
// are not positive finite numbers are rejected later, at MIDI conversion.
func New(frequency float64) Pitch {
	return Pitch{frequency: frequency}
}

// FromMIDINumber returns the pitch of a MIDI note number.
// It fails with *OutOfRangeError if n is outside 0-127.
func FromMIDINumber(n int) (Pitch, error) {
	if n < 0 || n > midiMax {
		return Pitch{}, &OutOfRangeError{MIDI: n}
	}
	hz := referenceHz * mathx.Exp2(float64(n-referenceMIDI)/semitones)
	return Pitch{frequency: hz}, nil
}

// Frequency returns the frequency of this pitch in Hz.
func (p Pitch) Frequency() float64 {
	return p.frequency
}

// MIDINumber returns the nearest MIDI note number for this frequency.
// It fails with *OutOfRangeError when the rounded result falls outside
// 0-127, or when the frequency is not a positive finite number.
func (p Pitch) MIDINumber() (int, error) {
	if p.frequency <= 0 || math.IsNaN(p.frequency) || math.IsInf(p.frequency, 0) {
		return 0, &OutOfRangeError{MIDI: -1}
	}
	n := mathx.Round(float64(referenceMIDI) + semitones*mathx.Log2(p.frequency/referenceHz))
	if n < 0 || n > midiMax {
		return 0, &OutOfRangeError{MIDI: int(n)}
	}
	return int(n), nil
}

// Transpose shifts this pitch by a number of semitones, which may be
// fractional. Positive values raise the pitch, negative values lower it;
// transposing by 12 moves up one octave.
func (p Pitch) Transpose(semis float64) Pitch {
	return Pitch{frequency: p.frequency * mathx.Exp2(semis / semitones)}
}

// Octave returns the octave number of this pitch under the MIDI mapping:
// MIDI 69 (A4) is octave 4, MIDI 0 (C-1) is octave -1. It fails when the
// pitch has no valid MIDI number.
func (p Pitch) Octave() (int, error) {
	n, err := p.MIDINumber()
	if err != nil {
		return 0, err
	}
	return n/semitones - 1, nil
}
