package state

import (
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"horde-in-town/internal/config"
	"horde-in-town/internal/event"
	"horde-in-town/internal/interfaces"
	"horde-in-town/internal/storage"
	"horde-in-town/internal/ui"
)

// GameOverState показывает итоги забега поверх замершей арены.
type GameOverState struct {
	sm       *StateMachine
	back     State
	game     interfaces.Game
	result   event.GameOverData
	services *Services

	panel         *ui.InfoPanel
	restartButton *ui.Button
	menuButton    *ui.Button
	newBest       bool
	cursor        image.Point
}

func NewGameOverState(sm *StateMachine, back State, game interfaces.Game, result event.GameOverData, services *Services) *GameOverState {
	cx := config.ScreenWidth / 2
	return &GameOverState{
		sm:            sm,
		back:          back,
		game:          game,
		result:        result,
		services:      services,
		panel:         ui.NewInfoPanel(),
		restartButton: ui.NewButton(image.Rect(cx-250, 600, cx-20, 650), "Restart"),
		menuButton:    ui.NewButton(image.Rect(cx+20, 600, cx+250, 650), "Main Menu"),
	}
}

// Enter записывает рекорд и выдвигает панель итогов.
func (s *GameOverState) Enter() {
	s.newBest = s.services.Scores.Record(storage.RunResult{
		Score:        s.result.Score,
		SurvivalTime: s.result.SurvivalTime,
		WavesCleared: s.result.WavesCleared,
		Kills:        s.result.Kills,
	})
	best := s.services.Scores.Best()
	log.Printf("[GameOver] Score %d, best %d, new record: %v", s.result.Score, best.BestScore, s.newBest)

	title := "Game Over"
	if s.newBest {
		title = "New Record!"
	}
	s.panel.Show(title, []ui.InfoLine{
		{Label: "Score", Value: fmt.Sprint(s.result.Score)},
		{Label: "Survived", Value: ui.FormatDuration(s.result.SurvivalTime)},
		{Label: "Waves cleared", Value: fmt.Sprint(s.result.WavesCleared)},
		{Label: "Zombies killed", Value: fmt.Sprint(s.result.Kills)},
		{Label: "Best score", Value: fmt.Sprint(best.BestScore)},
	})
}

func (s *GameOverState) Update(deltaTime float64) {
	s.panel.Update(deltaTime)
	s.restartButton.Update(deltaTime)
	s.menuButton.Update(deltaTime)

	if keyPressed(ebiten.KeyEnter, ebiten.KeyR) {
		s.restart()
		return
	}
	in := readInput()
	s.cursor = in.Cursor
	for _, p := range in.Pressed {
		if s.click(p.X, p.Y) {
			return
		}
	}
}

func (s *GameOverState) click(x, y int) bool {
	switch {
	case s.restartButton.Click(x, y):
		s.services.Click()
		s.restart()
	case s.menuButton.Click(x, y):
		s.services.Click()
		s.game.ReturnToMenu()
		s.sm.SetState(NewMenuState(s.sm, s.services))
	default:
		return false
	}
	return true
}

func (s *GameOverState) restart() {
	s.services.Audio.StopMusic()
	s.game.Restart()
	s.sm.SetState(s.back)
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	if s.back != nil {
		s.back.Draw(screen)
	}
	s.panel.Draw(screen, s.services.Fonts)
	if s.panel.Settled() {
		s.restartButton.Draw(screen, s.services.Fonts.Button, s.cursor.In(s.restartButton.Rect))
		s.menuButton.Draw(screen, s.services.Fonts.Button, s.cursor.In(s.menuButton.Rect))
	}
}

func (s *GameOverState) Exit() {}
