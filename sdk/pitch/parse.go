package pitch

import (
	"strconv"
	"strings"

	"github.com/tonegrid/pitchkit/internal/mathx"
)

// letterSemitones maps the upper-cased note letter to its semitone offset
// from C within an octave.
var letterSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// Octaves outside this band can never reach MIDI 0-127 (even B#-3 is -12
// and Cb11 is 143), and checking before the multiply keeps the note-number
// arithmetic from wrapping on extreme octaves.
const (
	octaveMin = -2
	octaveMax = 10
)

// Parse reads a note name such as "C4", "a#3", "Bb2" or "C#-1" and returns
// its equal-tempered pitch. The grammar is one letter A-G in either case,
// an optional accidental ("#", "s" or "S" for sharp, "b" or "B" for flat)
// and a mandatory signed integer octave. A "b" directly after the letter is
// read as a flat accidental only when at least one further character
// remains for the octave, so "B4" is the letter B while "Bb4" is B flat.
//
// Malformed input fails with *ParseError; a well-formed name outside the
// MIDI range (such as "A#9") fails with *OutOfRangeError.
func Parse(s string) (Pitch, error) {
	name := strings.TrimSpace(s)
	if name == "" {
		return Pitch{}, &ParseError{Input: s, Reason: "empty input"}
	}

	semitone, ok := letterSemitones[upper(name[0])]
	if !ok {
		return Pitch{}, &ParseError{Input: s, Reason: "unknown note letter"}
	}

	rest := name[1:]
	if len(rest) >= 2 && !octaveStart(rest[0]) {
		switch rest[0] {
		case '#', 's', 'S':
			semitone++
		case 'b', 'B':
			semitone--
		default:
			return Pitch{}, &ParseError{Input: s, Reason: "unknown accidental"}
		}
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return Pitch{}, &ParseError{Input: s, Reason: "missing or invalid octave"}
	}
	if octave > octaveMax {
		return Pitch{}, &OutOfRangeError{MIDI: midiMax + 1}
	}
	if octave < octaveMin {
		return Pitch{}, &OutOfRangeError{MIDI: -1}
	}

	n := (octave+1)*semitones + semitone
	if n < 0 || n > midiMax {
		return Pitch{}, &OutOfRangeError{MIDI: n}
	}
	hz := referenceHz * mathx.Exp2(float64(n-referenceMIDI)/semitones)
	return Pitch{frequency: hz}, nil
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func octaveStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '-' || c == '+'
}
