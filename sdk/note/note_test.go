package note

import (
	"errors"
	"math"
	"testing"

	"github.com/tonegrid/pitchkit/sdk/pitch"
)

func TestFromPitchSpelling(t *testing.T) {
	cases := []struct {
		midi       int
		letter     Letter
		accidental Accidental
		octave     int
		name       string
	}{
		{0, C, Natural, -1, "C-1"},
		{60, C, Natural, 4, "C4"},
		{61, C, Sharp, 4, "C#4"},
		{62, D, Natural, 4, "D4"},
		{63, D, Sharp, 4, "D#4"},
		{64, E, Natural, 4, "E4"},
		{65, F, Natural, 4, "F4"},
		{66, F, Sharp, 4, "F#4"},
		{67, G, Natural, 4, "G4"},
		{68, G, Sharp, 4, "G#4"},
		{69, A, Natural, 4, "A4"},
		{70, A, Sharp, 4, "A#4"},
		{71, B, Natural, 4, "B4"},
		{72, C, Natural, 5, "C5"},
	}
	for _, tc := range cases {
		p, err := pitch.FromMIDINumber(tc.midi)
		if err != nil {
			t.Fatalf("FromMIDINumber(%d): %v", tc.midi, err)
		}
		n, err := FromPitch(p)
		if err != nil {
			t.Fatalf("FromPitch for MIDI %d: %v", tc.midi, err)
		}
		if n.Letter() != tc.letter {
			t.Errorf("MIDI %d: letter %v; want %v", tc.midi, n.Letter(), tc.letter)
		}
		if n.Accidental() != tc.accidental {
			t.Errorf("MIDI %d: accidental %q; want %q", tc.midi, n.Accidental(), tc.accidental)
		}
		if n.Octave() != tc.octave {
			t.Errorf("MIDI %d: octave %d; want %d", tc.midi, n.Octave(), tc.octave)
		}
		if n.Name() != tc.name {
			t.Errorf("MIDI %d: name %q; want %q", tc.midi, n.Name(), tc.name)
		}
	}
}

func TestFromPitchNeverSpellsFlats(t *testing.T) {
	for midi := 0; midi <= 127; midi++ {
		p, err := pitch.FromMIDINumber(midi)
		if err != nil {
			t.Fatal(err)
		}
		n, err := FromPitch(p)
		if err != nil {
			t.Fatalf("FromPitch for MIDI %d: %v", midi, err)
		}
		if n.Accidental() == Flat {
			t.Errorf("MIDI %d spelled with a flat: %s", midi, n.Name())
		}
	}
}

func TestFromPitchOutOfRange(t *testing.T) {
	for _, f := range []float64{0, -1, 5.0, 30000.0} {
		_, err := FromPitch(pitch.New(f))
		var rangeErr *pitch.OutOfRangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("FromPitch(%v Hz) = %v; want *pitch.OutOfRangeError", f, err)
		}
	}
}

func TestFromPitchNameSharp(t *testing.T) {
	n, err := FromPitch(pitch.New(277.183))
	if err != nil {
		t.Fatal(err)
	}
	if n.Name() != "C#4" {
		t.Errorf("277.183 Hz named %q; want \"C#4\"", n.Name())
	}
}

func TestNoteToPitch(t *testing.T) {
	cases := []struct {
		note Note
		midi int
		hz   float64
	}{
		{New(A, Natural, 4), 69, 440.0},
		{New(C, Natural, 4), 60, 261.63},
		{New(C, Sharp, 4), 61, 277.18},
		{New(B, Flat, 2), 46, 116.54},
		{New(C, Natural, -1), 0, 8.18},
		{New(G, Natural, 9), 127, 12543.85},
	}
	for _, tc := range cases {
		midi, err := tc.note.MIDINumber()
		if err != nil {
			t.Fatalf("%s.MIDINumber(): %v", tc.note, err)
		}
		if midi != tc.midi {
			t.Errorf("%s MIDI = %d; want %d", tc.note, midi, tc.midi)
		}
		p, err := tc.note.Pitch()
		if err != nil {
			t.Fatalf("%s.Pitch(): %v", tc.note, err)
		}
		if math.Abs(p.Frequency()-tc.hz) > 0.01 {
			t.Errorf("%s = %v Hz; want %v", tc.note, p.Frequency(), tc.hz)
		}
	}
}

func TestNoteToPitchOutOfRange(t *testing.T) {
	cases := []Note{
		New(G, Sharp, 9), // 128
		New(C, Flat, -1), // -1
		New(B, Natural, -2),
		New(C, Natural, 42),
		// (octave+1)*12 would wrap an int64 back to 8 without the
		// octave guard.
		New(C, Natural, 1537228672809129301),
		New(C, Natural, -1537228672809129301),
		New(C, Natural, math.MaxInt),
		New(C, Natural, math.MinInt),
	}
	for _, n := range cases {
		var rangeErr *pitch.OutOfRangeError
		if _, err := n.Pitch(); !errors.As(err, &rangeErr) {
			t.Errorf("%s.Pitch() = %v; want *pitch.OutOfRangeError", n, err)
		}
		if _, err := n.MIDINumber(); !errors.As(err, &rangeErr) {
			t.Errorf("%s.MIDINumber() = %v; want *pitch.OutOfRangeError", n, err)
		}
	}
}

// Notes spelled with naturals and sharps survive the trip through the
// frequency domain unchanged.
func TestSymbolicRoundTrip(t *testing.T) {
	for octave := -1; octave <= 9; octave++ {
		for _, letter := range []Letter{C, D, E, F, G, A, B} {
			for _, accidental := range []Accidental{Natural, Sharp} {
				original := New(letter, accidental, octave)
				p, err := original.Pitch()
				if err != nil {
					continue // outside MIDI range, nothing to round-trip
				}
				got, err := FromPitch(p)
				if err != nil {
					t.Fatalf("FromPitch for %s: %v", original, err)
				}
				// E# and B# respell as F and C; all other sharp and
				// natural spellings are canonical and must come back
				// identical.
				if letter == E && accidental == Sharp || letter == B && accidental == Sharp {
					continue
				}
				if got != original {
					t.Errorf("%s round-tripped as %s", original, got)
				}
			}
		}
	}
}

func TestAccidentalStrings(t *testing.T) {
	if Natural.String() != "" || Sharp.String() != "#" || Flat.String() != "b" {
		t.Errorf("accidental symbols = %q %q %q; want \"\" \"#\" \"b\"",
			Natural.String(), Sharp.String(), Flat.String())
	}
}
