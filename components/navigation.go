package components

import "github.com/yohamta/donburi"

// GameScreen identifies the screen the game loop dispatches to
type GameScreen int

const (
	ScreenMainMenu GameScreen = iota
	ScreenAudioMenu
	ScreenGFXMenu
	ScreenControls
	ScreenHighScore
	ScreenCredit
	ScreenGame
)

func (s GameScreen) String() string {
	switch s {
	case ScreenMainMenu:
		return "MainMenu"
	case ScreenAudioMenu:
		return "AudioMenu"
	case ScreenGFXMenu:
		return "GFXMenu"
	case ScreenControls:
		return "Controls"
	case ScreenHighScore:
		return "HighScore"
	case ScreenCredit:
		return "Credit"
	case ScreenGame:
		return "Game"
	default:
		return "Unknown"
	}
}

// NavigationData holds the current screen. Screens request transitions
// through the named methods instead of assigning Screen directly.
type NavigationData struct {
	Screen GameScreen
}

func (n *NavigationData) MainMenu()     { n.Screen = ScreenMainMenu }
func (n *NavigationData) AudioOptions() { n.Screen = ScreenAudioMenu }
func (n *NavigationData) GfxOptions()   { n.Screen = ScreenGFXMenu }
func (n *NavigationData) HighScore()    { n.Screen = ScreenHighScore }
func (n *NavigationData) Credit()       { n.Screen = ScreenCredit }
func (n *NavigationData) StartGame()    { n.Screen = ScreenGame }
func (n *NavigationData) Controls()     { n.Screen = ScreenControls }

var Navigation = donburi.NewComponentType[NavigationData]()

// SessionData stores process-wide loop state (singleton component)
type SessionData struct {
	Quit bool
	FPS  float64
}

var Session = donburi.NewComponentType[SessionData]()
