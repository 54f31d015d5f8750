package state

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"horde-in-town/internal/interfaces"
	"horde-in-town/internal/ui"
)

// TutorialState показывает обучение поверх остановленного забега.
type TutorialState struct {
	sm       *StateMachine
	back     State
	game     interfaces.Game
	services *Services
	panel    *ui.TutorialPanel
	cursor   image.Point
}

// NewTutorialState: back — экран, куда вернуться после обучения.
func NewTutorialState(sm *StateMachine, back *GameState, services *Services) *TutorialState {
	return newTutorialState(sm, back, back.game, services)
}

func newTutorialState(sm *StateMachine, back State, g interfaces.Game, services *Services) *TutorialState {
	return &TutorialState{
		sm:       sm,
		back:     back,
		game:     g,
		services: services,
		panel:    ui.NewTutorialPanel(ui.DefaultTutorialPages),
	}
}

func (t *TutorialState) Enter() {
	t.game.Pause()
	t.panel.Reset()
}

func (t *TutorialState) Update(deltaTime float64) {
	t.panel.Update(deltaTime)
	in := readInput()
	t.cursor = in.Cursor

	switch {
	case keyPressed(ebiten.KeyRight, ebiten.KeyEnter):
		t.panel.Next()
	case keyPressed(ebiten.KeyLeft):
		t.panel.Prev()
	case keyPressed(ebiten.KeyEscape):
		t.panel.Skip()
	}
	for _, p := range in.Pressed {
		if t.panel.Click(p.X, p.Y) {
			t.services.Click()
		}
	}
	t.finishIfDone()
}

// finishIfDone запоминает, что обучение пройдено, и возвращает игру.
func (t *TutorialState) finishIfDone() {
	if !t.panel.Done {
		return
	}
	t.services.Settings.SetTutorialSeen(true)
	t.services.Settings.SaveOrLog()
	t.game.Resume()
	t.sm.SetState(t.back)
}

func (t *TutorialState) Draw(screen *ebiten.Image) {
	t.back.Draw(screen)
	t.panel.Draw(screen, t.services.Fonts, t.cursor)
}

func (t *TutorialState) Exit() {}
