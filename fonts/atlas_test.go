package fonts

import (
	"image"
	"testing"
)

type blit struct {
	src image.Rectangle
	dst image.Point
}

type recordingSurface struct {
	blits []blit
}

func (r *recordingSurface) Blit(_ Sheet, src image.Rectangle, dst image.Point) {
	r.blits = append(r.blits, blit{src: src, dst: dst})
}

func newTestAtlas(t *testing.T) *Atlas {
	t.Helper()
	// 10 columns x 7 rows of 8x12 cells, with 5px of padding on both axes
	a, err := NewAtlas(image.Rect(0, 0, 85, 89), 8, 12)
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}
	return a
}

func TestNewAtlasGrid(t *testing.T) {
	a := newTestAtlas(t)
	if a.Cols() != 10 || a.Rows() != 7 {
		t.Errorf("grid = %dx%d cols x rows, want 10x7", a.Cols(), a.Rows())
	}
	if a.CellWidth() != 8 || a.CellHeight() != 12 {
		t.Errorf("cell = %dx%d, want 8x12", a.CellWidth(), a.CellHeight())
	}
}

func TestNewAtlasRejectsSmallSheet(t *testing.T) {
	// 8 x 7 = 56 cells, fewer than the 64 supported characters
	if _, err := NewAtlas(image.Rect(0, 0, 64, 84), 8, 12); err == nil {
		t.Error("expected error for sheet with too few cells")
	}
	if _, err := NewAtlas(image.Rect(0, 0, 64, 84), 0, 12); err == nil {
		t.Error("expected error for zero cell width")
	}
	if _, err := NewAtlas(nil, 8, 12); err == nil {
		t.Error("expected error for nil sheet")
	}
}

func TestGlyphIndexing(t *testing.T) {
	a := newTestAtlas(t)
	for c := FirstCode; c <= LastCode; c++ {
		code := byte(c)
		idx, ok := a.Index(code)
		if !ok || idx != c-32 {
			t.Fatalf("Index(%d) = %d, %v; want %d, true", c, idx, ok, c-32)
		}
		row, col, ok := a.Cell(code)
		if !ok || row != idx/10 || col != idx%10 {
			t.Fatalf("Cell(%d) = %d,%d; want %d,%d", c, row, col, idx/10, idx%10)
		}
		src, _ := a.Source(code)
		want := image.Rect(col*8, row*12, col*8+8, row*12+12)
		if src != want {
			t.Fatalf("Source(%d) = %v, want %v", c, src, want)
		}
	}
}

func TestDrawGlyphSkipsUnsupportedCodes(t *testing.T) {
	a := newTestAtlas(t)
	s := &recordingSurface{}

	for _, c := range []byte{0, 10, 31, 96, 'a', 'z', 127, 200, 255} {
		a.DrawGlyph(s, 0, 0, c)
	}
	if len(s.blits) != 0 {
		t.Errorf("got %d blits for unsupported codes, want 0", len(s.blits))
	}

	a.DrawGlyph(s, 40, 50, 'A')
	if len(s.blits) != 1 {
		t.Fatalf("got %d blits for 'A', want 1", len(s.blits))
	}
	// 'A' = 65 -> index 33 -> row 3, col 3
	want := blit{src: image.Rect(24, 36, 32, 48), dst: image.Pt(40, 50)}
	if s.blits[0] != want {
		t.Errorf("blit = %+v, want %+v", s.blits[0], want)
	}
}

func TestSourceHonoursSheetOrigin(t *testing.T) {
	a, err := NewAtlas(image.Rect(100, 200, 180, 296), 10, 12)
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}
	src, ok := a.Source(' ')
	if !ok || src != image.Rect(100, 200, 110, 212) {
		t.Errorf("Source(' ') = %v, %v", src, ok)
	}
}

func TestRegistry(t *testing.T) {
	a := newTestAtlas(t)
	Register(Menu, a)
	if Menu.Get() != a {
		t.Error("Menu.Get did not return the registered atlas")
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown font")
		}
	}()
	Name("missing").Get()
}
