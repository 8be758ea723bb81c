package note

// NoteModifier is a pitch class: the number of semitones above C.
type NoteModifier uint8

const (
	C = NoteModifier(iota)
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// Octave is the number of pitch classes in the chromatic scale.
const Octave = 12

var sharpNames = [Octave]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [Octave]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// Mod12 reduces n into [0, 12), wrapping negative values.
func Mod12(n int) int {
	m := n % Octave
	if m < 0 {
		m += Octave
	}
	return m
}

// Name returns the name of the chromatic degree, spelled with sharps or flats.
func Name(degree int, sharp bool) string {
	return Modifier(degree).Name(sharp)
}

func Modifier(degree int) NoteModifier {
	return NoteModifier(Mod12(degree))
}

func (n NoteModifier) Name(sharp bool) string {
	if sharp {
		return sharpNames[n%Octave]
	}
	return flatNames[n%Octave]
}

func (n NoteModifier) String() string {
	return n.Name(true)
}
