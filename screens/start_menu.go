package screens

import (
	"fmt"

	"github.com/automoto/mini-magnets/components"
	cfg "github.com/automoto/mini-magnets/config"
	"github.com/automoto/mini-magnets/fonts"
	"github.com/automoto/mini-magnets/menu"
)

const (
	startOptLevel = iota
	startOptBack
)

// StartMenu is reached through START and picks the level the game begins
// on.
type StartMenu struct {
	base *menu.Base
}

func NewStartMenu(settings *components.GameSettings) *StartMenu {
	m := &StartMenu{
		base: menu.New(cfg.Menu.Start, cfg.Menu.Wave, "START GAME", nil,
			[]string{"LEVEL:", "BACK"}),
	}
	m.updateSettings(settings)
	return m
}

func (m *StartMenu) Enter(ctx *Context) {
	m.updateSettings(ctx.Settings)
}

func (m *StartMenu) Process(action cfg.ActionID, ctx *Context) {
	s := ctx.Settings
	switch action {
	case cfg.ActionMenuSelect:
		if m.base.Selected() == startOptBack {
			ctx.Nav.MainMenu()
		}
	case cfg.ActionMenuBack:
		ctx.Nav.MainMenu()
	case cfg.ActionMenuLeft, cfg.ActionMenuRight:
		if m.base.Selected() != startOptLevel {
			return
		}
		old := s.StartLevel
		if action == cfg.ActionMenuLeft {
			s.DecStartLevel()
		} else {
			s.IncStartLevel()
		}
		if s.StartLevel != old {
			m.updateSettings(s)
		}
	default:
		m.base.Process(action)
	}
}

func (m *StartMenu) updateSettings(s *components.GameSettings) {
	m.base.ChangeMenu(startOptLevel, fmt.Sprintf("LEVEL: %02d", int(s.StartLevel)+1))
}

func (m *StartMenu) Update(float64)             { m.base.Update() }
func (m *StartMenu) Draw(dst fonts.Surface)     { m.base.Draw(dst) }
func (m *StartMenu) SetFont(atlas *fonts.Atlas) { m.base.SetFont(atlas) }
