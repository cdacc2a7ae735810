package pitch

import "fmt"

// ParseError reports a note-name string that does not match the
// letter + optional accidental + octave grammar accepted by Parse.
type ParseError struct {
	Input  string // the offending input, as given
	Reason string // what part of the grammar was violated
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid note name %q: %s", e.Input, e.Reason)
}

// OutOfRangeError reports a MIDI note number outside the valid 0-127 range,
// either supplied directly or computed from a frequency or note. MIDI holds
// the offending number when it can be computed; inputs with no computable
// number (a zero, negative or non-finite frequency, or an octave too
// extreme for the note arithmetic) report a saturated -1 or 128 instead.
type OutOfRangeError struct {
	MIDI int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("MIDI note %d is outside the valid 0-127 range", e.MIDI)
}
