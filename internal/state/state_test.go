package state

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"horde-in-town/internal/audio"
	"horde-in-town/internal/event"
	"horde-in-town/internal/storage"
)

type recordingState struct {
	name string
	log  *[]string
}

func (s *recordingState) Enter()             { *s.log = append(*s.log, s.name+".enter") }
func (s *recordingState) Update(float64)     {}
func (s *recordingState) Draw(*ebiten.Image) {}
func (s *recordingState) Exit()              { *s.log = append(*s.log, s.name+".exit") }

type fakeGame struct {
	paused, over           bool
	restarts, menus, plays int
}

func (g *fakeGame) StartGame()     { g.plays++ }
func (g *fakeGame) Restart()       { g.restarts++; g.paused = false; g.over = false }
func (g *fakeGame) ReturnToMenu()  { g.menus++ }
func (g *fakeGame) Pause()         { g.paused = true }
func (g *fakeGame) Resume()        { g.paused = false }
func (g *fakeGame) IsPaused() bool { return g.paused }
func (g *fakeGame) IsOver() bool   { return g.over }

func testServices() (*Services, *audio.Silent) {
	silent := audio.NewSilent()
	return &Services{
		Audio:    silent,
		Settings: storage.NewSettingsManager(nil),
		Scores:   storage.NewHighScoreBoard(nil),
	}, silent
}

func TestStateMachineOrder(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	a := &recordingState{"a", &log}
	b := &recordingState{"b", &log}

	sm.SetState(a)
	sm.SetState(b)
	sm.SetState(nil)

	want := []string{"a.enter", "a.exit", "b.enter", "b.exit"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
	if sm.Current() != nil {
		t.Error("current state should be nil")
	}
}

func center(r image.Rectangle) (int, int) {
	return r.Min.X + r.Dx()/2, r.Min.Y + r.Dy()/2
}

func TestPauseStateFromGame(t *testing.T) {
	services, silent := testServices()
	var log []string
	sm := NewStateMachine()
	prev := &recordingState{"game", &log}
	g := &fakeGame{}

	p := NewPauseState(sm, prev, g, services)
	sm.SetState(p)
	if !g.paused {
		t.Fatal("entering pause did not pause the game")
	}

	t.Run("sound toggle mutes effects", func(t *testing.T) {
		r := p.soundToggle.Rect
		p.click(center(r))
		if services.Settings.Settings().SoundEnabled {
			t.Fatal("sound still enabled")
		}
		before := len(silent.Played)
		services.Click()
		if len(silent.Played) != before {
			t.Error("muted audio still plays clicks")
		}
	})

	t.Run("volume slider", func(t *testing.T) {
		r := p.musicSlider.Rect
		p.click(r.Max.X, r.Min.Y+r.Dy()/2)
		if got := services.Settings.Settings().MusicVolume; got != 1 {
			t.Errorf("music volume = %v, want 1", got)
		}
		p.drag(r.Min.X)
		p.musicSlider.Release()
		if got := services.Settings.Settings().MusicVolume; got != 0 {
			t.Errorf("music volume after drag = %v, want 0", got)
		}
	})

	t.Run("restart", func(t *testing.T) {
		r := p.restartButton.Rect
		if !p.click(center(r)) {
			t.Fatal("restart click not handled")
		}
		if g.restarts != 1 || sm.Current() != prev {
			t.Errorf("restarts=%d current=%v", g.restarts, sm.Current())
		}
	})
}

func TestPauseStateResumeAndMenu(t *testing.T) {
	services, _ := testServices()
	var log []string
	sm := NewStateMachine()
	prev := &recordingState{"game", &log}
	g := &fakeGame{}

	p := NewPauseState(sm, prev, g, services)
	sm.SetState(p)
	r := p.resumeButton.Rect
	p.click(center(r))
	if g.paused || sm.Current() != prev {
		t.Fatalf("resume: paused=%v current=%v", g.paused, sm.Current())
	}

	p = NewPauseState(sm, prev, g, services)
	sm.SetState(p)
	r = p.menuButton.Rect
	p.click(center(r))
	if g.menus != 1 {
		t.Errorf("ReturnToMenu calls = %d", g.menus)
	}
	if _, ok := sm.Current().(*MenuState); !ok {
		t.Errorf("current = %T, want *MenuState", sm.Current())
	}
}

func TestPauseStateFromMenu(t *testing.T) {
	services, _ := testServices()
	var log []string
	sm := NewStateMachine()
	menu := &recordingState{"menu", &log}

	p := NewPauseState(sm, menu, nil, services)
	sm.SetState(p)
	r := p.restartButton.Rect
	if p.click(center(r)) {
		t.Fatal("restart must be disabled without a game")
	}
	r = p.resumeButton.Rect
	p.click(center(r))
	if sm.Current() != menu {
		t.Errorf("back did not return to the menu")
	}
}

func TestGameOverState(t *testing.T) {
	services, _ := testServices()
	var log []string
	sm := NewStateMachine()
	back := &recordingState{"game", &log}
	g := &fakeGame{over: true}
	result := event.GameOverData{Score: 140, SurvivalTime: 75, Kills: 14, WavesCleared: 2}

	s := NewGameOverState(sm, back, g, result, services)
	sm.SetState(s)
	if !s.newBest {
		t.Error("first run must be a new record")
	}
	if best := services.Scores.Best(); best.BestScore != 140 || best.BestKills != 14 {
		t.Errorf("best = %+v", best)
	}
	if len(s.panel.Lines) != 5 {
		t.Errorf("summary lines = %d, want 5", len(s.panel.Lines))
	}

	r := s.restartButton.Rect
	s.click(center(r))
	if g.restarts != 1 || sm.Current() != back {
		t.Errorf("restart: restarts=%d current=%v", g.restarts, sm.Current())
	}

	s2 := NewGameOverState(sm, back, g, event.GameOverData{Score: 10}, services)
	sm.SetState(s2)
	if s2.newBest {
		t.Error("lower score reported as record")
	}
	r = s2.menuButton.Rect
	s2.click(center(r))
	if g.menus != 1 {
		t.Errorf("menu: ReturnToMenu calls = %d", g.menus)
	}
	if _, ok := sm.Current().(*MenuState); !ok {
		t.Errorf("current = %T, want *MenuState", sm.Current())
	}
}

func TestTutorialMarksSeen(t *testing.T) {
	services, _ := testServices()
	var log []string
	sm := NewStateMachine()
	back := &recordingState{"game", &log}
	g := &fakeGame{}

	tut := newTutorialState(sm, back, g, services)
	sm.SetState(tut)
	if !g.paused {
		t.Fatal("tutorial must pause the run")
	}

	tut.finishIfDone()
	if sm.Current() != tut {
		t.Fatal("tutorial closed before it was done")
	}

	tut.panel.Skip()
	tut.finishIfDone()
	if !services.Settings.Settings().TutorialSeen {
		t.Error("tutorial not marked as seen")
	}
	if g.paused || sm.Current() != back {
		t.Errorf("after tutorial: paused=%v current=%v", g.paused, sm.Current())
	}
}

func TestMenuQuit(t *testing.T) {
	services, silent := testServices()
	sm := NewStateMachine()
	m := NewMenuState(sm, services)
	sm.SetState(m)
	if silent.Music != audio.MusicMainMenu {
		t.Errorf("menu music = %q", silent.Music)
	}
	r := m.quitButton.Rect
	m.click(center(r))
	if !services.QuitRequested {
		t.Error("quit button did not request quit")
	}
}
