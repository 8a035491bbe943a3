package systems

import (
	"testing"

	"github.com/automoto/mini-magnets/components"
	cfg "github.com/automoto/mini-magnets/config"
	"github.com/automoto/mini-magnets/screens"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newScreensFixture() (*Screens, *screens.Context) {
	settings := components.DefaultSettings()
	scores := components.DefaultHighScores()
	ctx := &screens.Context{
		Nav:      &components.NavigationData{},
		Settings: &settings,
		Scores:   &scores,
		Session:  &components.SessionData{},
	}
	return NewScreens(ctx.Settings, ctx.Scores), ctx
}

func TestDispatchFollowsScreenChanges(t *testing.T) {
	s, ctx := newScreensFixture()

	// Down, Select opens audio options; Right then lands on the new screen
	res := s.Dispatch(ctx, []cfg.ActionID{cfg.ActionMenuDown, cfg.ActionMenuSelect})
	if ctx.Nav.Screen != components.ScreenAudioMenu {
		t.Fatalf("screen = %v", ctx.Nav.Screen)
	}
	if !res.ScreenChanged || res.SettingsChanged {
		t.Errorf("result = %+v", res)
	}
	want := []cfg.SoundID{cfg.SoundMenuNavigate, cfg.SoundMenuSelect}
	if len(res.Sounds) != len(want) || res.Sounds[0] != want[0] || res.Sounds[1] != want[1] {
		t.Errorf("sounds = %v, want %v", res.Sounds, want)
	}

	res = s.Dispatch(ctx, []cfg.ActionID{cfg.ActionMenuLeft})
	if ctx.Settings.SoundVolume != 250 {
		t.Errorf("sound volume = %d, want 250", ctx.Settings.SoundVolume)
	}
	if !res.SettingsChanged || res.ScreenChanged {
		t.Errorf("result = %+v", res)
	}
	if len(res.Sounds) != 1 || res.Sounds[0] != cfg.SoundMenuAdjust {
		t.Errorf("sounds = %v", res.Sounds)
	}

	// Saturated right edit changes nothing and stays quiet
	ctx.Settings.SoundVolume = 255
	res = s.Dispatch(ctx, []cfg.ActionID{cfg.ActionMenuRight})
	if res.SettingsChanged || len(res.Sounds) != 0 {
		t.Errorf("result = %+v", res)
	}

	s.Dispatch(ctx, []cfg.ActionID{cfg.ActionMenuBack})
	if ctx.Nav.Screen != components.ScreenMainMenu {
		t.Errorf("back left screen at %v", ctx.Nav.Screen)
	}
}

func TestDispatchStopsAfterQuit(t *testing.T) {
	s, ctx := newScreensFixture()
	s.Dispatch(ctx, []cfg.ActionID{cfg.ActionMenuUp, cfg.ActionMenuSelect, cfg.ActionMenuDown, cfg.ActionMenuSelect})
	if !ctx.Session.Quit {
		t.Fatal("quit not set")
	}
	if ctx.Nav.Screen != components.ScreenMainMenu {
		t.Errorf("screen = %v after quit", ctx.Nav.Screen)
	}
}

func TestCurrentFallsBackToMainMenu(t *testing.T) {
	s, _ := newScreensFixture()
	if _, ok := s.Current(components.GameScreen(99)).(*screens.MainMenu); !ok {
		t.Error("unknown screen did not map to main menu")
	}
}

func TestJustPressedActionsOrder(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionMenuBack] = true
	input.Current[cfg.ActionMenuUp] = true
	input.Current[cfg.ActionMenuSelect] = true
	input.Previous[cfg.ActionMenuSelect] = true

	got := JustPressedActions(input)
	if len(got) != 2 || got[0] != cfg.ActionMenuUp || got[1] != cfg.ActionMenuBack {
		t.Errorf("actions = %v", got)
	}
}

func TestStickActions(t *testing.T) {
	got := stickActions(-0.8, 0.9, 0.25)
	if len(got) != 2 || got[0] != cfg.ActionMenuLeft || got[1] != cfg.ActionMenuDown {
		t.Errorf("actions = %v", got)
	}
	if got := stickActions(0.2, -0.2, 0.25); len(got) != 0 {
		t.Errorf("deadzone leaked %v", got)
	}
}

func TestSingletonsAreShared(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	ctx := GetScreenContext(e)
	if *ctx.Settings != components.DefaultSettings() {
		t.Errorf("settings = %+v", *ctx.Settings)
	}
	if len(ctx.Scores.Entries) != components.HighScoreCapacity {
		t.Errorf("got %d scores", len(ctx.Scores.Entries))
	}

	ctx.Nav.Credit()
	ctx.Settings.StartLevel = 4
	again := GetScreenContext(e)
	if again.Nav.Screen != components.ScreenCredit || again.Settings.StartLevel != 4 {
		t.Error("singletons were recreated")
	}
	if again.InputMethod != components.InputKeyboard {
		t.Errorf("input method = %d, want keyboard", again.InputMethod)
	}

	getOrCreateInput(e).LastInputMethod = components.InputGamepad
	if GetScreenContext(e).InputMethod != components.InputGamepad {
		t.Error("context did not pick up the gamepad")
	}
}

func TestDispatchEnterSeesInputMethod(t *testing.T) {
	s, ctx := newScreensFixture()
	ctx.InputMethod = components.InputGamepad
	ctx.Nav.Controls()

	// Back from controls, then open it again from the main menu
	s.Dispatch(ctx, []cfg.ActionID{cfg.ActionMenuBack})
	for i := 0; i < int(screens.MainMenuControls); i++ {
		s.Dispatch(ctx, []cfg.ActionID{cfg.ActionMenuDown})
	}
	s.Dispatch(ctx, []cfg.ActionID{cfg.ActionMenuSelect})
	if ctx.Nav.Screen != components.ScreenControls {
		t.Fatalf("screen = %v", ctx.Nav.Screen)
	}

	controls := s.Current(components.ScreenControls).(*screens.ControlsMenu)
	if got := controls.Lines()[0]; got != "UP: DPAD UP" {
		t.Errorf("first line = %q", got)
	}
}

func TestTransitionFades(t *testing.T) {
	tr := &components.TransitionData{}
	StepTransition(tr, 0.1)
	if tr.Active() || tr.Alpha != 0 {
		t.Fatal("idle transition moved")
	}

	StartTransition(tr)
	if !tr.Active() || tr.Alpha != 1 {
		t.Fatalf("start: active=%v alpha=%v", tr.Active(), tr.Alpha)
	}

	prev := tr.Alpha
	for i := 0; i < 5; i++ {
		StepTransition(tr, cfg.Transition.Duration/10)
		if tr.Alpha >= prev {
			t.Fatalf("step %d: alpha %v did not fall from %v", i, tr.Alpha, prev)
		}
		prev = tr.Alpha
	}

	StepTransition(tr, cfg.Transition.Duration)
	if tr.Active() || tr.Alpha != 0 {
		t.Errorf("end: active=%v alpha=%v", tr.Active(), tr.Alpha)
	}
}

func TestVolumeScale(t *testing.T) {
	if VolumeScale(255) != 1 || VolumeScale(0) != 0 {
		t.Error("volume scale endpoints wrong")
	}
}
