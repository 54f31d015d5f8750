// internal/state/pause_state.go
package state

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"horde-in-town/internal/config"
	"horde-in-town/internal/interfaces"
	"horde-in-town/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState — пауза и настройки. Открывается из игры (game != nil)
// или из меню (game == nil, доступна только кнопка возврата).
type PauseState struct {
	sm            *StateMachine
	previousState State
	game          interfaces.Game
	services      *Services

	musicToggle      *ui.Toggle
	soundToggle      *ui.Toggle
	fullscreenToggle *ui.Toggle
	musicSlider      *ui.Slider
	soundSlider      *ui.Slider

	resumeButton  *ui.Button
	restartButton *ui.Button
	menuButton    *ui.Button
	cursor        image.Point
}

func NewPauseState(sm *StateMachine, prevState State, game interfaces.Game, services *Services) *PauseState {
	cx := config.ScreenWidth / 2
	s := services.Settings.Settings()
	p := &PauseState{
		sm:            sm,
		previousState: prevState,
		game:          game,
		services:      services,

		musicToggle:      &ui.Toggle{Rect: image.Rect(cx+60, 150, cx+120, 180), Label: "Music", On: s.MusicEnabled},
		musicSlider:      &ui.Slider{Rect: image.Rect(cx+60, 200, cx+300, 220), Label: "Music volume", Value: s.MusicVolume},
		soundToggle:      &ui.Toggle{Rect: image.Rect(cx+60, 250, cx+120, 280), Label: "Sound", On: s.SoundEnabled},
		soundSlider:      &ui.Slider{Rect: image.Rect(cx+60, 300, cx+300, 320), Label: "Sound volume", Value: s.SoundVolume},
		fullscreenToggle: &ui.Toggle{Rect: image.Rect(cx+60, 350, cx+120, 380), Label: "Fullscreen", On: s.Fullscreen},

		resumeButton:  ui.NewButton(image.Rect(cx-140, 430, cx+140, 480), "Resume"),
		restartButton: ui.NewButton(image.Rect(cx-140, 495, cx+140, 545), "Restart"),
		menuButton:    ui.NewButton(image.Rect(cx-140, 560, cx+140, 610), "Main Menu"),
	}
	if game == nil {
		p.resumeButton.Text = "Back"
		p.restartButton.Disabled = true
		p.menuButton.Disabled = true
	}
	return p
}

func (s *PauseState) Enter() {
	if s.game != nil {
		s.game.Pause()
	}
}

func (s *PauseState) Update(deltaTime float64) {
	for _, b := range []*ui.Button{s.resumeButton, s.restartButton, s.menuButton} {
		b.Update(deltaTime)
	}
	if keyPressed(ebiten.KeyP, ebiten.KeyEscape, ebiten.KeyF9) {
		s.resume()
		return
	}

	in := readInput()
	s.cursor = in.Cursor
	for _, p := range in.Pressed {
		if s.click(p.X, p.Y) {
			return
		}
	}
	for _, p := range in.Held {
		s.drag(p.X)
	}
	for range in.Released {
		s.musicSlider.Release()
		s.soundSlider.Release()
	}
}

// click обрабатывает нажатие; true, если состояние сменилось.
func (s *PauseState) click(x, y int) bool {
	settings := s.services.Settings
	switch {
	case s.musicToggle.Click(x, y):
		settings.SetMusicEnabled(s.musicToggle.On)
	case s.soundToggle.Click(x, y):
		settings.SetSoundEnabled(s.soundToggle.On)
	case s.fullscreenToggle.Click(x, y):
		settings.SetFullscreen(s.fullscreenToggle.On)
	case s.musicSlider.Press(x, y):
		settings.SetMusicVolume(s.musicSlider.Value)
	case s.soundSlider.Press(x, y):
		settings.SetSoundVolume(s.soundSlider.Value)
	case s.resumeButton.Click(x, y):
		s.services.Click()
		s.resume()
		return true
	case s.restartButton.Click(x, y):
		s.services.Click()
		s.game.Restart()
		s.sm.SetState(s.previousState)
		return true
	case s.menuButton.Click(x, y):
		s.services.Click()
		s.game.ReturnToMenu()
		s.sm.SetState(NewMenuState(s.sm, s.services))
		return true
	default:
		return false
	}
	s.services.Click()
	s.services.ApplySettings()
	return false
}

func (s *PauseState) drag(x int) {
	if s.musicSlider.Drag(x) {
		s.services.Settings.SetMusicVolume(s.musicSlider.Value)
		s.services.ApplySettings()
	}
	if s.soundSlider.Drag(x) {
		s.services.Settings.SetSoundVolume(s.soundSlider.Value)
		s.services.ApplySettings()
	}
}

func (s *PauseState) resume() {
	if s.game != nil {
		s.game.Resume()
	}
	s.sm.SetState(s.previousState)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PanelColor, false)

	fonts := s.services.Fonts
	title := "Paused"
	if s.game == nil {
		title = "Settings"
	}
	ui.DrawCentered(screen, title, fonts.Title, config.ScreenWidth/2, 90, config.TextLightColor)

	for _, t := range []*ui.Toggle{s.musicToggle, s.soundToggle, s.fullscreenToggle} {
		t.Draw(screen, fonts.Button)
	}
	s.musicSlider.Draw(screen, fonts.Button)
	s.soundSlider.Draw(screen, fonts.Button)
	for _, b := range []*ui.Button{s.resumeButton, s.restartButton, s.menuButton} {
		b.Draw(screen, fonts.Button, s.cursor.In(b.Rect))
	}
}

// Exit сохраняет настройки при уходе с экрана.
func (s *PauseState) Exit() {
	s.services.Settings.SaveOrLog()
}
