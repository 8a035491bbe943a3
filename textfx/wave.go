package textfx

import (
	"math"

	"github.com/automoto/mini-magnets/fonts"
)

// Axis selects the direction glyphs are displaced in.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// Wave is a label whose glyphs ride a sine wave that travels along the text.
type Wave struct {
	Label
	amplitude float64
	phase     float64 // [0, 2π)
	speed     float64 // radians per Update
	shift     float64 // radians between neighbouring glyphs
	active    bool
	axis      Axis
}

// NewWave creates an active, vertically displaced wave text.
func NewWave(x, y int, amplitude, speed, shift float64, text string) *Wave {
	return &Wave{
		Label:     Label{x: x, y: y, text: text},
		amplitude: amplitude,
		speed:     speed,
		shift:     shift,
		active:    true,
	}
}

func (w *Wave) Phase() float64   { return w.phase }
func (w *Wave) Active() bool     { return w.active }
func (w *Wave) Axis() Axis       { return w.axis }
func (w *Wave) SetAxis(a Axis)   { w.axis = a }
func (w *Wave) SetActive(a bool) { w.active = a }

func (w *Wave) Update() {
	if !w.active {
		return
	}
	w.phase += w.speed
	// Wrap rather than reset so the wave keeps its position in the cycle.
	w.phase = math.Mod(w.phase, 2*math.Pi)
	if w.phase < 0 {
		w.phase += 2 * math.Pi
	}
	// -tiny + 2π rounds up to 2π
	if w.phase >= 2*math.Pi {
		w.phase = 0
	}
}

// Offset returns the displacement of the n-th glyph.
func (w *Wave) Offset(n int) int {
	return int(math.Round(w.amplitude * math.Sin(w.phase+float64(n)*w.shift)))
}

// Draw renders the wave. An inactive wave is drawn flat at its base position.
func (w *Wave) Draw(dst fonts.Surface) {
	if !w.active {
		w.Label.Draw(dst)
		return
	}
	if w.atlas == nil {
		return
	}
	x := w.x
	for i := 0; i < len(w.text); i++ {
		d := w.Offset(i)
		if w.axis == AxisHorizontal {
			w.atlas.DrawGlyph(dst, x+d, w.y, w.text[i])
		} else {
			w.atlas.DrawGlyph(dst, x, w.y+d, w.text[i])
		}
		x += w.atlas.CellWidth()
	}
}
