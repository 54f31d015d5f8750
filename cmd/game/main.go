// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"horde-in-town/internal/audio"
	"horde-in-town/internal/config"
	"horde-in-town/internal/defs"
	"horde-in-town/internal/state"
	"horde-in-town/internal/storage"
	"horde-in-town/internal/ui"
	"horde-in-town/internal/utils"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	services       *state.Services
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if a.services.QuitRequested {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "seed for arena and spawns (0 = from clock)")
	wavesPath := flag.String("waves", "", "path to a YAML file with waves and archetypes")
	pprofAddr := flag.String("pprof", "localhost:6060", "pprof listen address, empty to disable")
	skipMenu := flag.Bool("skip-menu", false, "start straight into a run")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	fonts, err := ui.LoadFonts()
	if err != nil {
		log.Fatal(err)
	}

	store := storage.Open(storage.AppName)
	audioContext := ebaudio.NewContext(config.SampleRate)
	bank := audio.BuildBank(config.SampleRate, 1)

	services := &state.Services{
		Fonts:        fonts,
		Audio:        audio.NewEbitenManager(audioContext, bank, utils.NewPRNGService(*seed)),
		Settings:     storage.NewSettingsManager(store),
		Scores:       storage.NewHighScoreBoard(store),
		Defs:         defs.LoadOrDefault(*wavesPath),
		Seed:         *seed,
		OnFullscreen: ebiten.SetFullscreen,
	}
	services.ApplySettings()

	sm := state.NewStateMachine() // Создаём машину состояний
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, services))
	} else {
		sm.SetState(state.NewMenuState(sm, services))
	}
	app := &AppGame{
		stateMachine:   sm,
		services:       services,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
