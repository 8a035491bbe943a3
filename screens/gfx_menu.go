package screens

import (
	"github.com/automoto/mini-magnets/components"
	cfg "github.com/automoto/mini-magnets/config"
	"github.com/automoto/mini-magnets/fonts"
	"github.com/automoto/mini-magnets/menu"
)

const (
	gfxOptFullscreen = iota
	gfxOptResolution
	gfxOptBack
)

// GFXMenu edits fullscreen mode and window resolution.
type GFXMenu struct {
	base *menu.Base
}

func NewGFXMenu(settings *components.GameSettings) *GFXMenu {
	m := &GFXMenu{
		base: menu.New(cfg.Menu.GFX, cfg.Menu.Wave, "GFX OPTIONS", nil,
			[]string{"FULLSCREEN:", "RESOLUTION:", "BACK"}),
	}
	m.updateSettings(settings)
	return m
}

func (m *GFXMenu) Enter(ctx *Context) {
	m.updateSettings(ctx.Settings)
}

func (m *GFXMenu) Process(action cfg.ActionID, ctx *Context) {
	s := ctx.Settings
	switch action {
	case cfg.ActionMenuSelect:
		switch m.base.Selected() {
		case gfxOptFullscreen:
			s.ToggleFullscreen()
			m.updateSettings(s)
		case gfxOptBack:
			ctx.Nav.MainMenu()
		}
	case cfg.ActionMenuBack:
		ctx.Nav.MainMenu()
	case cfg.ActionMenuLeft:
		m.adjust(s, s.DecResolution)
	case cfg.ActionMenuRight:
		m.adjust(s, s.IncResolution)
	default:
		m.base.Process(action)
	}
}

func (m *GFXMenu) adjust(s *components.GameSettings, resolution func()) {
	switch m.base.Selected() {
	case gfxOptFullscreen:
		s.ToggleFullscreen()
		m.updateSettings(s)
	case gfxOptResolution:
		old := s.Resolution
		resolution()
		if s.Resolution != old {
			m.updateSettings(s)
		}
	}
}

func (m *GFXMenu) updateSettings(s *components.GameSettings) {
	m.base.ChangeMenu(gfxOptFullscreen, "FULLSCREEN: "+onOff(s.Fullscreen))
	m.base.ChangeMenu(gfxOptResolution, "RESOLUTION: "+s.ResolutionText())
}

func (m *GFXMenu) Update(float64)             { m.base.Update() }
func (m *GFXMenu) Draw(dst fonts.Surface)     { m.base.Draw(dst) }
func (m *GFXMenu) SetFont(atlas *fonts.Atlas) { m.base.SetFont(atlas) }
