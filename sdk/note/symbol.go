package note

// Letter is the base letter of a musical note. Each letter's value is its
// semitone offset from C within an octave, so letters index directly into
// the chromatic scale: C=0, D=2, E=4, F=5, G=7, A=9, B=11.
type Letter uint8

const (
	C Letter = 0
	D Letter = 2
	E Letter = 4
	F Letter = 5
	G Letter = 7
	A Letter = 9
	B Letter = 11
)

func (l Letter) String() string {
	switch l {
	case C:
		return "C"
	case D:
		return "D"
	case E:
		return "E"
	case F:
		return "F"
	case G:
		return "G"
	case A:
		return "A"
	case B:
		return "B"
	}
	return "?"
}

// Accidental modifies a letter by a signed semitone offset:
// Flat = -1, Natural = 0, Sharp = +1. Double accidentals are not modeled.
type Accidental int8

const (
	Flat    Accidental = -1
	Natural Accidental = 0
	Sharp   Accidental = 1
)

// String renders the conventional ASCII symbol: "" for Natural, "#" for
// Sharp, "b" for Flat.
func (a Accidental) String() string {
	switch a {
	case Sharp:
		return "#"
	case Flat:
		return "b"
	}
	return ""
}
