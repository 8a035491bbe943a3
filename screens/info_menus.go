package screens

import (
	"fmt"
	"strings"

	"github.com/automoto/mini-magnets/components"
	cfg "github.com/automoto/mini-magnets/config"
	"github.com/automoto/mini-magnets/fonts"
	"github.com/automoto/mini-magnets/menu"
)

// infoMenu is a read-only page: title, description lines and a single BACK
// entry. Confirm or back returns to the main menu.
type infoMenu struct {
	base *menu.Base
}

func newInfoMenu(layout cfg.LayoutConfig, title string, lines []string) infoMenu {
	return infoMenu{
		base: menu.New(layout, cfg.Menu.Wave, title, lines, []string{"BACK"}),
	}
}

func (m *infoMenu) Process(action cfg.ActionID, ctx *Context) {
	switch action {
	case cfg.ActionMenuSelect, cfg.ActionMenuBack:
		ctx.Nav.MainMenu()
	default:
		m.base.Process(action)
	}
}

func (m *infoMenu) Update(float64)             { m.base.Update() }
func (m *infoMenu) Draw(dst fonts.Surface)     { m.base.Draw(dst) }
func (m *infoMenu) SetFont(atlas *fonts.Atlas) { m.base.SetFont(atlas) }

// CreditMenu lists who made the game.
type CreditMenu struct {
	infoMenu
}

func NewCreditMenu() *CreditMenu {
	return &CreditMenu{infoMenu: newInfoMenu(cfg.Menu.Credit, "CREDITS", cfg.Credits)}
}

func (m *CreditMenu) Enter(*Context) {}

// HighScoreMenu shows the high score table.
type HighScoreMenu struct {
	infoMenu
}

func NewHighScoreMenu(scores *components.HighScoreTable) *HighScoreMenu {
	return &HighScoreMenu{infoMenu: newInfoMenu(cfg.Menu.HighScore, "HIGH SCORE", scores.Lines())}
}

// Enter picks up scores added since the menu was built.
func (m *HighScoreMenu) Enter(ctx *Context) {
	m.base.SetDescriptions(ctx.Scores.Lines())
}

// ControlsMenu lists the menu bindings of the device last used.
type ControlsMenu struct {
	infoMenu
	method components.InputMethod
}

func NewControlsMenu() *ControlsMenu {
	return &ControlsMenu{
		infoMenu: newInfoMenu(cfg.Menu.Controls, "CONTROLS", controlLines(components.InputKeyboard)),
		method:   components.InputKeyboard,
	}
}

// Enter switches between key and gamepad bindings to match the player.
func (m *ControlsMenu) Enter(ctx *Context) {
	if ctx.InputMethod == m.method {
		return
	}
	m.method = ctx.InputMethod
	m.base.SetDescriptions(controlLines(m.method))
}

// Lines returns the binding lines currently shown.
func (m *ControlsMenu) Lines() []string {
	lines := make([]string, 0, len(m.base.Descriptions()))
	for _, d := range m.base.Descriptions() {
		lines = append(lines, d.Text())
	}
	return lines
}

func controlLines(method components.InputMethod) []string {
	lines := make([]string, 0, len(cfg.MenuActions))
	for _, id := range cfg.MenuActions {
		b, ok := cfg.Input.Bindings[id]
		if !ok {
			continue
		}
		var names []string
		if method == components.InputGamepad {
			for _, btn := range b.StandardGamepadButtons {
				names = append(names, cfg.ButtonLabel(btn))
			}
		} else {
			for _, k := range b.Keys {
				names = append(names, cfg.KeyLabel(k))
			}
		}
		if len(names) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", b.Label, strings.Join(names, " / ")))
	}
	return lines
}
