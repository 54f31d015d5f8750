// internal/state/menu_state.go
package state

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"horde-in-town/internal/audio"
	"horde-in-town/internal/config"
	"horde-in-town/internal/ui"
)

// MenuState — главное меню
type MenuState struct {
	sm       *StateMachine
	services *Services

	startButton    *ui.Button
	settingsButton *ui.Button
	quitButton     *ui.Button
	guard          ui.ClickGuard
	cursor         image.Point
}

func NewMenuState(sm *StateMachine, services *Services) *MenuState {
	cx := config.ScreenWidth / 2
	return &MenuState{
		sm:             sm,
		services:       services,
		startButton:    ui.NewButton(image.Rect(cx-140, 300, cx+140, 360), "Start"),
		settingsButton: ui.NewButton(image.Rect(cx-140, 380, cx+140, 440), "Settings"),
		quitButton:     ui.NewButton(image.Rect(cx-140, 460, cx+140, 520), "Quit"),
	}
}

func (m *MenuState) Enter() {
	m.services.Audio.PlayMusic(audio.MusicMainMenu)
}

func (m *MenuState) Update(deltaTime float64) {
	m.startButton.Update(deltaTime)
	m.settingsButton.Update(deltaTime)
	m.quitButton.Update(deltaTime)

	in := readInput()
	m.cursor = in.Cursor
	if keyPressed(ebiten.KeyEnter, ebiten.KeySpace) {
		m.start()
		return
	}
	for _, p := range in.Pressed {
		if m.click(p.X, p.Y) {
			return
		}
	}
}

// click обрабатывает нажатие; true, если экран сменился или нажатие принято.
func (m *MenuState) click(x, y int) bool {
	switch {
	case m.startButton.Click(x, y):
		m.services.Click()
		m.start()
	case m.settingsButton.Click(x, y):
		m.services.Click()
		m.sm.SetState(NewPauseState(m.sm, m, nil, m.services))
	case m.quitButton.Click(x, y):
		m.services.Click()
		m.services.QuitRequested = true
	default:
		return false
	}
	return true
}

func (m *MenuState) start() {
	if !m.guard.Allow(timeNow()) {
		return
	}
	m.sm.SetState(NewGameState(m.sm, m.services))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	fonts := m.services.Fonts
	cx := config.ScreenWidth / 2

	ui.DrawCentered(screen, config.WindowTitle, fonts.Title, cx, 170, config.TextLightColor)
	best := m.services.Scores.Best()
	if best.BestScore > 0 {
		line := fmt.Sprintf("Best score %d   Longest night %s", best.BestScore, ui.FormatDuration(best.BestSurvivalTime))
		ui.DrawCentered(screen, line, fonts.HUD, cx, 240, config.CooldownColor)
	}
	for _, b := range []*ui.Button{m.startButton, m.settingsButton, m.quitButton} {
		b.Draw(screen, fonts.Button, m.cursor.In(b.Rect))
	}
}

func (m *MenuState) Exit() {}
