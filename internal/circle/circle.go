// Package circle walks a scale around the circle of fifths.
package circle

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/minikomi/fifths/internal/scale"
)

const (
	Fifth      = 7
	Iterations = 12
	// steps before SharpSteps are spelled with sharps, the rest with flats
	SharpSteps = 5
)

var CMajor = scale.Mask{true, false, true, false, true, true, false, true, false, true, false, true}

type Step struct {
	Index int // -1 for the starting scale
	First int
	Sharp bool
	Scale scale.Mask
}

// Walk returns the starting C major scale followed by Iterations
// transpositions by a fifth.
//
// First accumulates 7 per step without wrapping, so it runs 7, 14, ... 84.
// Names are reduced modulo 12 so the printed notes are unaffected.
func Walk() []Step {
	steps := make([]Step, 0, Iterations+1)
	cur := Step{Index: -1, First: 0, Sharp: true, Scale: CMajor}
	steps = append(steps, cur)
	for i := 0; i < Iterations; i++ {
		cur = Step{
			Index: i,
			First: cur.First + Fifth%12,
			Sharp: i < SharpSteps,
			Scale: scale.Transpose(cur.Scale, Fifth),
		}
		steps = append(steps, cur)
	}
	return steps
}

// Notes returns the rendered degree and scale for the step. The starting
// scale is rendered without an offset.
func (s Step) Notes() (first, notes []string) {
	spelling := scale.Sharp(s.Sharp)
	first = scale.Notes(scale.Degree(s.First), spelling)
	if s.Index < 0 {
		return first, scale.Notes(s.Scale, spelling)
	}
	return first, scale.Notes(s.Scale, spelling, scale.StartFrom(s.First))
}

func (s Step) Line() string {
	first, notes := s.Notes()
	return formatList(first) + " " + formatList(notes)
}

func formatList(names []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, n := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(n)
		b.WriteByte('\'')
	}
	b.WriteByte(']')
	return b.String()
}

// Run writes one line per step of Walk to w.
func Run(w io.Writer, logger *zap.Logger) error {
	for _, s := range Walk() {
		line := s.Line()
		logger.Debug("step",
			zap.Int("index", s.Index),
			zap.Int("first", s.First),
			zap.Bool("sharp", s.Sharp),
			zap.Int("notes", s.Scale.Count()))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing step %d: %w", s.Index, err)
		}
	}
	return nil
}
