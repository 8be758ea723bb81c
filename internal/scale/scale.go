// Package scale renders and transposes pitch-class masks.
package scale

import (
	"errors"
	"fmt"

	"github.com/minikomi/fifths/internal/note"
)

var ErrMaskLength = errors.New("mask must have exactly 12 entries")

// Mask marks which of the twelve semitones above C belong to a scale.
type Mask [note.Octave]bool

// Input is either a Mask or a single Degree.
type Input interface {
	degrees() []int
}

// Degree is a bare chromatic degree, rendered as a single note.
type Degree int

func (d Degree) degrees() []int {
	return []int{int(d)}
}

func (m Mask) degrees() []int {
	out := make([]int, 0, note.Octave)
	for i, on := range m {
		if on {
			out = append(out, i)
		}
	}
	return out
}

func FromSlice(s []bool) (Mask, error) {
	var m Mask
	if len(s) != len(m) {
		return m, fmt.Errorf("scale: got %d entries: %w", len(s), ErrMaskLength)
	}
	copy(m[:], s)
	return m, nil
}

func (m Mask) Count() int {
	return len(m.degrees())
}

func (m Mask) Transpose(steps int) Mask {
	return Transpose(m, steps)
}

// Transpose rotates m right by steps semitones: result[i] = m[(i-steps) mod 12].
func Transpose(m Mask, steps int) Mask {
	var out Mask
	for i := range out {
		out[i] = m[note.Mod12(i-steps)]
	}
	return out
}

type options struct {
	sharp bool
	start int
}

type Option func(*options)

// Sharp selects sharp (true) or flat (false) spelling.
func Sharp(sharp bool) Option {
	return func(o *options) {
		o.sharp = sharp
	}
}

// StartFrom shifts every rendered degree by start semitones.
func StartFrom(start int) Option {
	return func(o *options) {
		o.start = start
	}
}

// Notes names the degrees of in, in mask index order. Spelling defaults to
// sharps and the start offset to 0.
func Notes(in Input, opts ...Option) []string {
	o := options{sharp: true}
	for _, opt := range opts {
		opt(&o)
	}
	degrees := in.degrees()
	names := make([]string, 0, len(degrees))
	for _, d := range degrees {
		names = append(names, note.Name(d+o.start, o.sharp))
	}
	return names
}
