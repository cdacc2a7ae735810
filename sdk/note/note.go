// Package note models the symbolic side of a pitch: a letter, an
// accidental and an octave, such as C#4 or Bb2. It converts to and from the
// frequency-based pitch package; conversion from a pitch always spells with
// naturals and sharps, never flats.
package note

import (
	"strconv"

	"github.com/tonegrid/pitchkit/sdk/pitch"
)

// spellings maps a semitone within the octave to the spelling used when
// deriving a Note from a Pitch. Sharps are preferred over their flat
// enharmonic equivalents, so semitone 3 is D# rather than Eb.
var spellings = [12]struct {
	letter     Letter
	accidental Accidental
}{
	{C, Natural}, {C, Sharp},
	{D, Natural}, {D, Sharp},
	{E, Natural},
	{F, Natural}, {F, Sharp},
	{G, Natural}, {G, Sharp},
	{A, Natural}, {A, Sharp},
	{B, Natural},
}

// Note is a musical note spelled with a letter, an accidental and an
// octave. It is an immutable value type.
type Note struct {
	letter     Letter
	accidental Accidental
	octave     int
}

// New builds a note from its components. No range check is applied to the
// octave; only conversion to a pitch or MIDI number enforces the 0-127
// range.
func New(letter Letter, accidental Accidental, octave int) Note {
	return Note{letter: letter, accidental: accidental, octave: octave}
}

// FromPitch spells the nearest MIDI note of a pitch, preferring sharps.
// It fails with *pitch.OutOfRangeError when the pitch has no valid MIDI
// number. The conversion is lossy: a pitch parsed from "Db4" comes back
// spelled "C#4".
func FromPitch(p pitch.Pitch) (Note, error) {
	n, err := p.MIDINumber()
	if err != nil {
		return Note{}, err
	}
	s := spellings[n%12]
	return Note{letter: s.letter, accidental: s.accidental, octave: n/12 - 1}, nil
}

// Letter returns the note's base letter.
func (n Note) Letter() Letter {
	return n.letter
}

// Accidental returns the note's accidental.
func (n Note) Accidental() Accidental {
	return n.accidental
}

// Octave returns the note's octave under the MIDI mapping, where A4 is
// octave 4 and C-1 is octave -1.
func (n Note) Octave() int {
	return n.octave
}

// Pitch returns the equal-tempered pitch of this note. It fails with
// *pitch.OutOfRangeError when the note lies outside MIDI 0-127.
func (n Note) Pitch() (pitch.Pitch, error) {
	midi, err := n.MIDINumber()
	if err != nil {
		return pitch.Pitch{}, err
	}
	return pitch.FromMIDINumber(midi)
}

// MIDINumber returns the MIDI note number of this note, failing with
// *pitch.OutOfRangeError outside 0-127.
func (n Note) MIDINumber() (int, error) {
	// Octaves beyond -2..10 can never reach 0-127, and rejecting them
	// before the multiply keeps the arithmetic from wrapping on extreme
	// octaves.
	if n.octave > 10 {
		return 0, &pitch.OutOfRangeError{MIDI: 128}
	}
	if n.octave < -2 {
		return 0, &pitch.OutOfRangeError{MIDI: -1}
	}
	midi := (n.octave+1)*12 + int(n.letter) + int(n.accidental)
	if midi < 0 || midi > 127 {
		return 0, &pitch.OutOfRangeError{MIDI: midi}
	}
	return midi, nil
}

// Name renders the note as letter, accidental and octave, e.g. "C#4",
// "A4" or "C-1".
func (n Note) Name() string {
	return n.letter.String() + n.accidental.String() + strconv.Itoa(n.octave)
}

func (n Note) String() string {
	return n.Name()
}
