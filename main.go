package main

import (
	"image"
	"log"

	"github.com/automoto/mini-magnets/assets"
	"github.com/automoto/mini-magnets/config"
	"github.com/automoto/mini-magnets/fonts"
	"github.com/automoto/mini-magnets/scenes"
	"github.com/automoto/mini-magnets/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  *scenes.MenuScene
}

func NewGame(p *systems.Persistence) *Game {
	atlas, err := assets.LoadFontAtlas(config.Font)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	fonts.Register(fonts.Menu, atlas)

	return &Game{
		bounds: image.Rectangle{},
		scene: scenes.NewMenuScene(
			systems.LoadSettingsOrDefault(p),
			systems.LoadHighScoresOrDefault(p),
		),
	}
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.scene.RequestQuit()
	}
	if g.scene.Quit() {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowClosingHandled(true)

	// Persistence is optional; without it defaults are used and nothing is saved
	var persistence *systems.Persistence
	if store, err := systems.OpenStore(); err != nil {
		log.Printf("Warning: %v", err)
	} else {
		persistence = systems.NewPersistence(store)
	}

	game := NewGame(persistence)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}

	systems.StopMusic()
	settings, scores := game.scene.State()
	systems.SaveAll(persistence, settings, scores)
}
