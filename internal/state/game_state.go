// internal/state/game_state.go
package state

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	game "horde-in-town/internal/app"
	"horde-in-town/internal/audio"
	"horde-in-town/internal/config"
	"horde-in-town/internal/event"
	"horde-in-town/internal/ui"
	"horde-in-town/pkg/render"
)

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	services *Services
	game     *game.Game

	arenaRenderer  *render.ArenaRenderer
	entityRenderer *render.EntityRenderer

	healthBar     *ui.PlayerHealthIndicator
	scoreLabel    *ui.ScoreLabel
	waveIndicator *ui.WaveIndicator
	joystick      *ui.Joystick
	fireButton    *ui.FireButton
	pauseButton   *ui.PauseButton

	started       bool
	needsTutorial bool
	lastCursor    image.Point
}

func NewGameState(sm *StateMachine, services *Services) *GameState {
	g := game.NewGame(services.Defs, services.Seed)
	g.Listen(services.Audio, audio.Events...)

	healthBar := ui.NewPlayerHealthIndicator(20, 16, 260, 24)
	scoreLabel := ui.NewScoreLabel(20, 64)
	g.Listen(healthBar, event.HealthChanged, event.PlayerHealed)
	g.Listen(scoreLabel, event.ScoreChanged)

	return &GameState{
		sm:             sm,
		services:       services,
		game:           g,
		arenaRenderer:  render.NewArenaRenderer(g.Arena, render.DefaultArenaColors(), config.ScreenWidth, config.ScreenHeight),
		entityRenderer: render.NewEntityRenderer(g.ECS),
		healthBar:      healthBar,
		scoreLabel:     scoreLabel,
		waveIndicator:  ui.NewWaveIndicator(20, 80),
		joystick:       ui.NewJoystick(100, config.ScreenHeight-100, config.JoystickRange),
		fireButton:     ui.NewFireButton(config.ScreenWidth-100, config.ScreenHeight-100),
		pauseButton:    ui.NewPauseButton(config.ScreenWidth-40, 36, 20, config.TextLightColor, config.HealthyColor),
	}
}

// GetGame возвращает логику забега
func (g *GameState) GetGame() *game.Game { return g.game }

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
	if g.started {
		return
	}
	g.started = true
	g.services.Audio.StopMusic()
	g.game.StartGame()
	g.needsTutorial = !g.services.Settings.Settings().TutorialSeen
	log.Printf("[GameState] Run started (tutorial: %v)", g.needsTutorial)
}

func (g *GameState) Update(deltaTime float64) {
	if g.needsTutorial {
		g.needsTutorial = false
		g.sm.SetState(NewTutorialState(g.sm, g, g.services))
		return
	}
	if keyPressed(ebiten.KeyEscape, ebiten.KeyP) {
		g.openPause()
		return
	}

	in := readInput()
	for _, p := range in.Pressed {
		switch {
		case g.pauseButton.Contains(p.X, p.Y):
			g.openPause()
			return
		case g.fireButton.Contains(float64(p.X), float64(p.Y)):
			g.game.Fire()
		case g.joystick.Press(p.ID, float64(p.X), float64(p.Y)):
		case p.ID == mousePointer:
			// на десктопе клик по арене — выстрел в точку клика
			g.game.AimAt(float64(p.X), float64(p.Y))
			g.game.Fire()
		}
	}
	for _, p := range in.Held {
		g.joystick.Drag(p.ID, float64(p.X), float64(p.Y))
	}
	for _, p := range in.Released {
		g.joystick.Release(p.ID)
	}

	if in.Cursor != g.lastCursor && !g.joystick.Active() {
		g.game.AimAt(float64(in.Cursor.X), float64(in.Cursor.Y))
	}
	g.lastCursor = in.Cursor

	if keyPressed(ebiten.KeySpace) {
		g.game.Fire()
	}
	dx, dy := g.joystick.Direction()
	g.game.AimJoystick(dx, dy, deltaTime)

	g.game.Update(deltaTime)
	g.healthBar.Update(deltaTime)
	g.scoreLabel.Update(deltaTime)

	if g.game.IsOver() && g.game.LastOver != nil {
		g.sm.SetState(NewGameOverState(g.sm, g, g.game, *g.game.LastOver, g.services))
	}
}

func (g *GameState) openPause() {
	g.services.Click()
	g.pauseButton.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g, g.game, g.services))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.arenaRenderer.Draw(screen)
	g.entityRenderer.Draw(screen)
	g.drawHUD(screen)
}

func (g *GameState) drawHUD(screen *ebiten.Image) {
	fonts := g.services.Fonts
	p := g.game.ECS.Player

	g.healthBar.Draw(screen, fonts.HUD, p.MaxHealth)
	g.scoreLabel.Draw(screen, fonts.HUD, p.Kills, p.SurvivalTime)
	g.waveIndicator.Draw(screen, fonts.HUD, g.game.WavesCleared(), g.game.WaveTitle)

	g.joystick.Draw(screen)
	g.fireButton.Draw(screen, fonts.Button, g.game.CooldownProgress())
	g.pauseButton.Draw(screen)
}

func (g *GameState) Exit() {}
