package textfx

import (
	"image"
	"math"
	"testing"

	"github.com/automoto/mini-magnets/fonts"
)

type recordingSurface struct {
	dst []image.Point
}

func (r *recordingSurface) Blit(_ fonts.Sheet, _ image.Rectangle, dst image.Point) {
	r.dst = append(r.dst, dst)
}

func newAtlas(t *testing.T, cellW, cellH int) *fonts.Atlas {
	t.Helper()
	a, err := fonts.NewAtlas(image.Rect(0, 0, 16*cellW, 4*cellH), cellW, cellH)
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}
	return a
}

func TestLabelWidthTracksText(t *testing.T) {
	a := newAtlas(t, 24, 20)
	l := NewLabel(10, 10, "HELLO")
	if l.Width() != 0 || l.Height() != 0 {
		t.Fatalf("size without atlas = %dx%d, want 0x0", l.Width(), l.Height())
	}

	l.SetFont(a)
	for _, s := range []string{"", "A", "HELLO", "SFX VOLUME: 255", "lower case"} {
		l.SetText(s)
		if l.Width() != 24*len(s) {
			t.Errorf("SetText(%q): width = %d, want %d", s, l.Width(), 24*len(s))
		}
		if l.Height() != 20 {
			t.Errorf("SetText(%q): height = %d, want 20", s, l.Height())
		}
	}

	l.SetFont(nil)
	if l.Width() != 0 || l.Height() != 0 {
		t.Errorf("size after detaching atlas = %dx%d, want 0x0", l.Width(), l.Height())
	}
}

func TestLabelDraw(t *testing.T) {
	s := &recordingSurface{}
	l := NewLabel(100, 50, "AbC")
	l.Draw(s)
	if len(s.dst) != 0 {
		t.Fatalf("drew %d glyphs without atlas", len(s.dst))
	}

	l.SetFont(newAtlas(t, 10, 10))
	l.Draw(s)
	// lowercase b is skipped but still advances the cursor
	want := []image.Point{{100, 50}, {120, 50}}
	if len(s.dst) != len(want) {
		t.Fatalf("drew %v, want %v", s.dst, want)
	}
	for i := range want {
		if s.dst[i] != want[i] {
			t.Errorf("glyph %d at %v, want %v", i, s.dst[i], want[i])
		}
	}

	s.dst = nil
	l.DrawOffset(-5, 7, s)
	if s.dst[0] != image.Pt(95, 57) {
		t.Errorf("offset glyph at %v, want (95,57)", s.dst[0])
	}
}

func TestLabelCenter(t *testing.T) {
	l := NewLabel(400, 0, "ABCD")
	l.Center()
	if x, _ := l.Pos(); x != 400 {
		t.Fatalf("Center without atlas moved x to %d", x)
	}

	l.SetFont(newAtlas(t, 10, 10))
	l.Center()
	if x, _ := l.Pos(); x != 380 {
		t.Errorf("x after Center = %d, want 380", x)
	}
	l.Center()
	if x, _ := l.Pos(); x != 360 {
		t.Errorf("x after second Center = %d, want 360", x)
	}

	l.CenterAt(400)
	l.CenterAt(400)
	if x, _ := l.Pos(); x != 380 {
		t.Errorf("x after CenterAt = %d, want 380", x)
	}
}

func TestWavePhaseStaysInRange(t *testing.T) {
	for _, speed := range []float64{0.1, 1.7, 7.5, -0.3, -9, 1e6, -1e6, 1e17, -1e17, math.MaxFloat64} {
		w := NewWave(0, 0, 10, speed, 0.5, "WAVE")
		for i := 0; i < 1000; i++ {
			w.Update()
			if p := w.Phase(); p < 0 || p >= 2*math.Pi {
				t.Fatalf("speed %v: phase %v out of [0, 2π) after %d updates", speed, p, i+1)
			}
		}
	}
}

func TestWaveWrapKeepsRemainder(t *testing.T) {
	w := NewWave(0, 0, 10, 1, 0.5, "W")
	for i := 0; i < 7; i++ {
		w.Update()
	}
	want := 7 - 2*math.Pi
	if math.Abs(w.Phase()-want) > 1e-9 {
		t.Errorf("phase = %v, want %v", w.Phase(), want)
	}
}

func TestWaveInactiveDoesNotAdvance(t *testing.T) {
	w := NewWave(0, 0, 10, 0.5, 0.5, "W")
	w.Update()
	w.SetActive(false)
	w.Update()
	w.Update()
	if w.Phase() != 0.5 {
		t.Errorf("phase = %v, want 0.5", w.Phase())
	}
}

func TestWaveDrawDisplacement(t *testing.T) {
	w := NewWave(10, 100, 10, 0, 0.5, "ABC")
	w.SetFont(newAtlas(t, 8, 8))
	s := &recordingSurface{}
	w.Draw(s)

	if len(s.dst) != 3 {
		t.Fatalf("drew %d glyphs, want 3", len(s.dst))
	}
	for n, p := range s.dst {
		wantY := 100 + int(math.Round(10*math.Sin(float64(n)*0.5)))
		if p.X != 10+8*n || p.Y != wantY {
			t.Errorf("glyph %d at %v, want (%d,%d)", n, p, 10+8*n, wantY)
		}
	}

	w.SetAxis(AxisHorizontal)
	s.dst = nil
	w.Draw(s)
	for n, p := range s.dst {
		wantX := 10 + 8*n + int(math.Round(10*math.Sin(float64(n)*0.5)))
		if p.X != wantX || p.Y != 100 {
			t.Errorf("horizontal glyph %d at %v, want (%d,100)", n, p, wantX)
		}
	}
}

func TestWaveInactiveDrawsFlat(t *testing.T) {
	w := NewWave(0, 100, 10, 1, 0.5, "ABCD")
	w.SetFont(newAtlas(t, 8, 8))
	w.Update()
	w.SetActive(false)

	s := &recordingSurface{}
	w.Draw(s)
	for n, p := range s.dst {
		if p.Y != 100 {
			t.Errorf("glyph %d drawn at y=%d, want 100", n, p.Y)
		}
	}
}

func TestSelectableBreathing(t *testing.T) {
	const m = 25
	s := NewSelectable(0, 0, m, "START")
	s.SetActive(true)
	for i := 1; i < m; i++ {
		s.Update()
		if s.Offset() != i {
			t.Fatalf("offset after %d updates = %d", i, s.Offset())
		}
	}
	s.Update()
	if s.Offset() != 0 {
		t.Errorf("offset after %d updates = %d, want 0", m, s.Offset())
	}
}

func TestSelectableInactiveKeepsOffset(t *testing.T) {
	s := NewSelectable(0, 0, 10, "START")
	s.SetActive(true)
	s.Update()
	s.Update()
	s.Update()

	s.SetActive(false)
	s.Update()
	if s.Offset() != 3 {
		t.Errorf("offset while inactive = %d, want 3", s.Offset())
	}

	s.SetActive(true)
	if s.Offset() != 3 {
		t.Errorf("offset after reactivation = %d, want 3", s.Offset())
	}
	s.ResetAnimation()
	if s.Offset() != 0 {
		t.Errorf("offset after reset = %d, want 0", s.Offset())
	}
}

func TestSelectableMarkers(t *testing.T) {
	s := NewSelectable(400, 200, 25, "BACK")
	s.SetFont(newAtlas(t, 10, 10))

	left, right := s.Markers()
	lx, _ := left.Pos()
	rx, _ := right.Pos()
	if lx != 400-20-25 {
		t.Errorf("left marker rests at %d, want %d", lx, 400-20-25)
	}
	if rx != 400+40+25 {
		t.Errorf("right marker rests at %d, want %d", rx, 400+40+25)
	}

	s.SetText("GO")
	if rx, _ := right.Pos(); rx != 400+20+25 {
		t.Errorf("right marker after SetText at %d, want %d", rx, 400+20+25)
	}

	s.CenterAt(400)
	if lx, _ := left.Pos(); lx != 390-20-25 {
		t.Errorf("left marker after CenterAt at %d, want %d", lx, 390-20-25)
	}
}

func TestSelectableDraw(t *testing.T) {
	s := NewSelectable(100, 0, 5, "AB")
	s.SetFont(newAtlas(t, 10, 10))
	surf := &recordingSurface{}

	s.Draw(surf)
	if len(surf.dst) != 2 {
		t.Fatalf("inactive draw blitted %d glyphs, want 2", len(surf.dst))
	}

	s.SetActive(true)
	s.Update()
	s.Update()
	surf.dst = nil
	s.Draw(surf)
	if len(surf.dst) != 6 {
		t.Fatalf("active draw blitted %d glyphs, want 6", len(surf.dst))
	}
	// left marker: rest 100-20-5 = 75, minus offset 2
	if surf.dst[2].X != 73 {
		t.Errorf("left marker drawn at %d, want 73", surf.dst[2].X)
	}
	// right marker: rest 100+20+5 = 125, plus offset 2
	if surf.dst[4].X != 127 {
		t.Errorf("right marker drawn at %d, want 127", surf.dst[4].X)
	}
}

func TestWidgetsShareAtlas(t *testing.T) {
	a := newAtlas(t, 8, 8)
	widgets := []Widget{
		NewLabel(0, 0, "A"),
		NewWave(0, 0, 1, 1, 1, "B"),
		NewSelectable(0, 0, 3, "C"),
	}
	for _, w := range widgets {
		w.SetFont(a)
		w.SetText("XY")
		w.Update()
		s := &recordingSurface{}
		w.Draw(s)
		if len(s.dst) < 2 {
			t.Errorf("%T drew %d glyphs", w, len(s.dst))
		}
	}
}
