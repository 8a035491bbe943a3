package scenes

import (
	"sync"

	"github.com/automoto/mini-magnets/components"
	cfg "github.com/automoto/mini-magnets/config"
	"github.com/automoto/mini-magnets/fonts"
	"github.com/automoto/mini-magnets/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene hosts every menu screen in one ECS world
type MenuScene struct {
	ecs      *ecs.ECS
	settings components.GameSettings
	scores   components.HighScoreTable
	once     sync.Once
}

// NewMenuScene creates the menu scene seeded with the loaded settings and
// high scores
func NewMenuScene(settings components.GameSettings, scores components.HighScoreTable) *MenuScene {
	return &MenuScene{settings: settings, scores: scores}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	if ms.ecs == nil {
		screen.Fill(cfg.Menu.BackgroundColor)
		return
	}
	ms.ecs.Draw(screen)
}

// Quit reports whether the player asked to leave
func (ms *MenuScene) Quit() bool {
	if ms.ecs == nil {
		return false
	}
	return systems.GetOrCreateSession(ms.ecs).Quit
}

// RequestQuit ends the session, e.g. when the window is closed
func (ms *MenuScene) RequestQuit() {
	ms.once.Do(ms.configure)
	systems.GetOrCreateSession(ms.ecs).Quit = true
}

// State returns the settings and high scores as they are now, for saving
func (ms *MenuScene) State() (components.GameSettings, components.HighScoreTable) {
	if ms.ecs == nil {
		return ms.settings, ms.scores
	}
	return *systems.GetOrCreateSettings(ms.ecs), *systems.GetOrCreateHighScores(ms.ecs)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	*systems.GetOrCreateSettings(ms.ecs) = ms.settings
	*systems.GetOrCreateHighScores(ms.ecs) = ms.scores
	systems.GetOrCreateNavigation(ms.ecs).MainMenu()

	screens := systems.NewScreens(&ms.settings, &ms.scores)
	screens.SetFont(fonts.Menu.Get())

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateScreens(screens))
	ms.ecs.AddSystem(systems.UpdateTransition)
	ms.ecs.AddSystem(systems.UpdateAudio)

	// Fade draws over the screen
	ms.ecs.AddRenderer(cfg.Default, systems.NewDrawScreens(screens))
	ms.ecs.AddRenderer(cfg.Overlay, systems.DrawTransition)

	systems.ApplySettings(ms.settings)
	systems.PreloadAllSFX()
	systems.PlayMusic(cfg.Sound.MenuMusic)
}
