package systems

import (
	"github.com/automoto/mini-magnets/components"
	cfg "github.com/automoto/mini-magnets/config"
	"github.com/automoto/mini-magnets/fonts"
	"github.com/automoto/mini-magnets/screens"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Screens routes input, ticks and draws to the controller of the current
// GameScreen.
type Screens struct {
	controllers map[components.GameScreen]screens.Controller
}

// NewScreens builds every controller from the initial settings and scores.
func NewScreens(settings *components.GameSettings, scores *components.HighScoreTable) *Screens {
	return &Screens{controllers: screens.NewControllers(settings, scores)}
}

// Current returns the controller serving screen
func (s *Screens) Current(screen components.GameScreen) screens.Controller {
	c, ok := s.controllers[screen]
	if !ok {
		return s.controllers[components.ScreenMainMenu]
	}
	return c
}

func (s *Screens) SetFont(atlas *fonts.Atlas) {
	for _, c := range s.controllers {
		c.SetFont(atlas)
	}
}

// DispatchResult reports what a batch of actions changed
type DispatchResult struct {
	Sounds          []cfg.SoundID
	ScreenChanged   bool
	SettingsChanged bool
}

// Dispatch feeds actions in order to whichever screen is current when each
// arrives. A screen that becomes current is refreshed through Enter.
func (s *Screens) Dispatch(ctx *screens.Context, actions []cfg.ActionID) DispatchResult {
	var res DispatchResult
	for _, action := range actions {
		if ctx.Session.Quit {
			break
		}
		screen := ctx.Nav.Screen
		settings := *ctx.Settings

		s.Current(screen).Process(action, ctx)

		moved := ctx.Nav.Screen != screen
		edited := *ctx.Settings != settings
		if moved {
			s.Current(ctx.Nav.Screen).Enter(ctx)
			res.ScreenChanged = true
		}
		if edited {
			res.SettingsChanged = true
		}

		switch {
		case moved || ctx.Session.Quit:
			res.Sounds = append(res.Sounds, cfg.SoundMenuSelect)
		case edited:
			res.Sounds = append(res.Sounds, cfg.SoundMenuAdjust)
		case action == cfg.ActionMenuUp || action == cfg.ActionMenuDown:
			res.Sounds = append(res.Sounds, cfg.SoundMenuNavigate)
		}
	}
	return res
}

// NewUpdateScreens returns the system that drives the menu screens.
// Must run AFTER UpdateInput.
func NewUpdateScreens(s *Screens) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		ctx := GetScreenContext(e)

		res := s.Dispatch(ctx, JustPressedActions(input))
		if res.ScreenChanged {
			StartTransition(GetOrCreateTransition(e))
		}
		if res.SettingsChanged {
			ApplySettings(*ctx.Settings)
		}
		for _, id := range res.Sounds {
			PlaySFX(e, id)
		}

		ctx.Session.FPS = ebiten.ActualFPS()
		s.Current(ctx.Nav.Screen).Update(ctx.Session.FPS)
	}
}

// NewDrawScreens returns the renderer for the current screen
func NewDrawScreens(s *Screens) func(*ecs.ECS, *ebiten.Image) {
	var target *fonts.Screen
	var targetImage *ebiten.Image
	return func(e *ecs.ECS, screen *ebiten.Image) {
		screen.Fill(cfg.Menu.BackgroundColor)
		if target == nil || targetImage != screen {
			target = fonts.NewScreen(screen)
			targetImage = screen
		}
		s.Current(GetOrCreateNavigation(e).Screen).Draw(target)
	}
}

// ApplySettings pushes settings to the window and the audio players
func ApplySettings(s components.GameSettings) {
	ebiten.SetFullscreen(s.Fullscreen)
	if !s.Fullscreen {
		res := s.ResolutionConfig()
		ebiten.SetWindowSize(res.Width, res.Height)
	}
	SetSFXVolume(VolumeScale(s.SoundVolume))
	SetMusicVolume(VolumeScale(s.MusicVolume))
}

// GetScreenContext gathers the singletons a screen may read or change
func GetScreenContext(e *ecs.ECS) *screens.Context {
	return &screens.Context{
		Nav:         GetOrCreateNavigation(e),
		Settings:    GetOrCreateSettings(e),
		Scores:      GetOrCreateHighScores(e),
		Session:     GetOrCreateSession(e),
		InputMethod: getOrCreateInput(e).LastInputMethod,
	}
}

// GetOrCreateNavigation returns the singleton Navigation component, creating if needed
func GetOrCreateNavigation(e *ecs.ECS) *components.NavigationData {
	entry, ok := components.Navigation.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Navigation))
		// Zero value is ScreenMainMenu
	}
	return components.Navigation.Get(entry)
}

// GetOrCreateSettings returns the singleton Settings component, creating it
// with defaults if needed
func GetOrCreateSettings(e *ecs.ECS) *components.GameSettings {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.DefaultSettings())
	}
	return components.Settings.Get(entry)
}

// GetOrCreateHighScores returns the singleton HighScores component, creating
// it with the default table if needed
func GetOrCreateHighScores(e *ecs.ECS) *components.HighScoreTable {
	entry, ok := components.HighScores.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.HighScores))
		components.HighScores.SetValue(entry, components.DefaultHighScores())
	}
	return components.HighScores.Get(entry)
}

// GetOrCreateSession returns the singleton Session component, creating if needed
func GetOrCreateSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Session))
	}
	return components.Session.Get(entry)
}
