package screens

import (
	"github.com/automoto/mini-magnets/components"
	cfg "github.com/automoto/mini-magnets/config"
	"github.com/automoto/mini-magnets/fonts"
)

// Context carries the state a screen may read or change while handling
// input. It is owned by the game loop and lent to one screen per frame.
type Context struct {
	Nav      *components.NavigationData
	Settings *components.GameSettings
	Scores   *components.HighScoreTable
	Session  *components.SessionData

	// InputMethod is the device that produced the latest input
	InputMethod components.InputMethod
}

// Controller is one menu screen.
type Controller interface {
	// Enter refreshes displayed values when the screen becomes current.
	Enter(ctx *Context)
	Process(action cfg.ActionID, ctx *Context)
	Update(fps float64)
	Draw(dst fonts.Surface)
	SetFont(atlas *fonts.Atlas)
}

// NewControllers builds every screen keyed by the screen it serves.
func NewControllers(settings *components.GameSettings, scores *components.HighScoreTable) map[components.GameScreen]Controller {
	return map[components.GameScreen]Controller{
		components.ScreenMainMenu:  NewMainMenu(),
		components.ScreenAudioMenu: NewAudioMenu(settings),
		components.ScreenGFXMenu:   NewGFXMenu(settings),
		components.ScreenControls:  NewControlsMenu(),
		components.ScreenHighScore: NewHighScoreMenu(scores),
		components.ScreenCredit:    NewCreditMenu(),
		components.ScreenGame:      NewStartMenu(settings),
	}
}

// onOff formats a flag the way option entries show it
func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}
