package screens

import (
	"fmt"
	"math"

	cfg "github.com/automoto/mini-magnets/config"
	"github.com/automoto/mini-magnets/fonts"
	"github.com/automoto/mini-magnets/menu"
	"github.com/automoto/mini-magnets/textfx"
)

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuStart MainMenuOption = iota
	MainMenuAudio
	MainMenuGFX
	MainMenuControls
	MainMenuHighScore
	MainMenuCredits
	MainMenuExit
)

var mainMenuLabels = []string{
	"START",
	"AUDIO OPTIONS",
	"GFX OPTIONS",
	"CONTROLS",
	"HIGH SCORE",
	"CREDITS",
	"EXIT",
}

// MainMenu is the first screen and the hub every other screen returns to.
type MainMenu struct {
	base *menu.Base
	fps  *textfx.Label
}

func NewMainMenu() *MainMenu {
	return &MainMenu{
		base: menu.New(cfg.Menu.Main, cfg.Menu.Wave, "MAIN MENU", nil, mainMenuLabels),
		fps:  textfx.NewLabel(cfg.Menu.FPSX, cfg.Menu.FPSY, "FPS"),
	}
}

func (m *MainMenu) Selected() MainMenuOption {
	return MainMenuOption(m.base.Selected())
}

func (m *MainMenu) Enter(*Context) {}

func (m *MainMenu) Process(action cfg.ActionID, ctx *Context) {
	if action != cfg.ActionMenuSelect {
		m.base.Process(action)
		return
	}

	switch m.Selected() {
	case MainMenuStart:
		ctx.Nav.StartGame()
	case MainMenuAudio:
		ctx.Nav.AudioOptions()
	case MainMenuGFX:
		ctx.Nav.GfxOptions()
	case MainMenuControls:
		ctx.Nav.Controls()
	case MainMenuHighScore:
		ctx.Nav.HighScore()
	case MainMenuCredits:
		ctx.Nav.Credit()
	case MainMenuExit:
		ctx.Session.Quit = true
	}
}

func (m *MainMenu) Update(fps float64) {
	m.base.Update()
	text := fmt.Sprintf("FPS: %d", int(math.Round(fps)))
	if text != m.fps.Text() {
		m.fps.SetText(text)
	}
}

func (m *MainMenu) Draw(dst fonts.Surface) {
	m.base.Draw(dst)
	if cfg.Debug.ShowFPS {
		m.fps.Draw(dst)
	}
}

func (m *MainMenu) SetFont(atlas *fonts.Atlas) {
	m.base.SetFont(atlas)
	m.fps.SetFont(atlas)
}
