package textfx

import (
	"github.com/automoto/mini-magnets/fonts"
)

const (
	LeftMarker  = "->"
	RightMarker = "<-"
)

// Selectable is a label flanked by two markers while active. The markers
// start max offset pixels away from the text and drift outward one pixel
// per update, jumping back when they reach twice that distance.
type Selectable struct {
	Label
	left      *Label
	right     *Label
	active    bool
	offset    int
	maxOffset int
}

func NewSelectable(x, y, maxOffset int, text string) *Selectable {
	if maxOffset < 1 {
		maxOffset = 1
	}
	s := &Selectable{
		Label:     Label{x: x, y: y, text: text},
		left:      NewLabel(x, y, LeftMarker),
		right:     NewLabel(x, y, RightMarker),
		maxOffset: maxOffset,
	}
	s.updateMarkerPos()
	return s
}

func (s *Selectable) Active() bool   { return s.active }
func (s *Selectable) Offset() int    { return s.offset }
func (s *Selectable) MaxOffset() int { return s.maxOffset }

// Markers returns the left and right marker labels.
func (s *Selectable) Markers() (*Label, *Label) { return s.left, s.right }

// SetActive shows or hides the markers. The animation offset is kept.
func (s *Selectable) SetActive(active bool) {
	s.active = active
}

// ResetAnimation restarts the marker cycle.
func (s *Selectable) ResetAnimation() {
	s.offset = 0
}

func (s *Selectable) Update() {
	if !s.active {
		return
	}
	s.offset++
	if s.offset >= s.maxOffset {
		s.offset = 0
	}
}

func (s *Selectable) SetText(text string) {
	s.Label.SetText(text)
	s.updateMarkerPos()
}

func (s *Selectable) SetFont(atlas *fonts.Atlas) {
	s.Label.SetFont(atlas)
	s.left.SetFont(atlas)
	s.right.SetFont(atlas)
	s.updateMarkerPos()
}

func (s *Selectable) SetPos(x, y int) {
	s.Label.SetPos(x, y)
	s.updateMarkerPos()
}

func (s *Selectable) Center() {
	s.Label.Center()
	s.updateMarkerPos()
}

func (s *Selectable) CenterAt(anchor int) {
	s.Label.CenterAt(anchor)
	s.updateMarkerPos()
}

// updateMarkerPos puts both markers at their resting positions, which
// depend on the current text width.
func (s *Selectable) updateMarkerPos() {
	s.left.SetPos(s.x-s.left.Width()-s.maxOffset, s.y)
	s.right.SetPos(s.x+s.width+s.maxOffset, s.y)
}

func (s *Selectable) Draw(dst fonts.Surface) {
	s.Label.Draw(dst)
	if !s.active {
		return
	}
	s.left.DrawOffset(-s.offset, 0, dst)
	s.right.DrawOffset(s.offset, 0, dst)
}
