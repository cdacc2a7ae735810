package main

import (
	"fmt"

	"github.com/tonegrid/pitchkit/sdk/contracts"
	"github.com/tonegrid/pitchkit/sdk/note"
	"github.com/tonegrid/pitchkit/sdk/pitch"
	"github.com/tonegrid/pitchkit/sdk/tuner"
)

func main() {
	// The pure packages cover most needs: parse, convert, transpose.
	a4, err := pitch.Parse("A4")
	if err != nil {
		fmt.Println("parse failed:", err)
		return
	}
	midi, _ := a4.MIDINumber()
	fmt.Printf("A4 = %.2f Hz, MIDI %d\n", a4.Frequency(), midi)

	up := a4.Transpose(3) // minor third up
	if n, err := note.FromPitch(up); err == nil {
		fmt.Printf("A4 + 3 semitones = %s (%.2f Hz)\n", n.Name(), up.Frequency())
	}

	// The tuner client adds a configurable concert pitch and diagnostics.
	t, err := tuner.New(
		contracts.WithLogLevel(contracts.DebugLevel),
		contracts.WithConcertPitch(432),
	)
	if err != nil {
		fmt.Println("tuner setup failed:", err)
		return
	}

	baroque, err := t.Parse("A4")
	if err != nil {
		fmt.Println("parse failed:", err)
		return
	}
	fmt.Printf("A4 at concert pitch 432 = %.2f Hz\n", baroque.Frequency())

	if _, err := t.Parse("H4"); err != nil {
		fmt.Println("as expected:", err)
	}
}
