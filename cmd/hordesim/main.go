// cmd/hordesim runs a game without a window: an autopilot archer defends
// the barricade and the result is printed at the end. With -serve the run
// is paced in real time and streamed to websocket viewers.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	game "horde-in-town/internal/app"
	"horde-in-town/internal/audio"
	"horde-in-town/internal/config"
	"horde-in-town/internal/defs"
	"horde-in-town/internal/spectate"
)

func main() {
	seed := flag.Int64("seed", 1, "seed for arena and spawns")
	wavesPath := flag.String("waves", "", "path to a YAML file with waves and archetypes")
	duration := flag.Float64("duration", 300, "simulated seconds before the run is stopped")
	dt := flag.Float64("dt", 1.0/60, "simulation step in seconds")
	serve := flag.String("serve", "", "address for the spectator feed, e.g. :8080")
	speed := flag.Float64("speed", config.DefaultSimSpeed, "playback speed when serving")
	flag.Parse()

	if *dt <= 0 || *dt > config.MaxDeltaTime {
		log.Fatalf("[Sim] -dt must be in (0, %.2f]", config.MaxDeltaTime)
	}

	g := game.NewGame(defs.LoadOrDefault(*wavesPath), *seed)
	sounds := audio.NewSilent()
	audio.Subscribe(sounds, g.EventDispatcher)
	pilot := game.NewAutopilot(g)

	var hub *spectate.Hub
	var srv *http.Server
	if *serve != "" {
		hub = spectate.NewHub()
		srv = &http.Server{Addr: *serve, Handler: hub.Handler(), ReadHeaderTimeout: 10 * time.Second}
		go func() {
			log.Println("[Sim] spectator feed on", *serve)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("[Sim] server: %v", err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g.StartGame()
	var pace <-chan time.Time
	if hub != nil {
		ticker := time.NewTicker(time.Duration(*dt / *speed * float64(time.Second)))
		defer ticker.Stop()
		pace = ticker.C
	}

	interrupted := simulate(ctx, g, pilot, hub, pace, *dt, *duration)
	if interrupted {
		log.Println("[Sim] interrupted")
	}

	p := g.ECS.Player
	fmt.Printf("seed:          %d\n", g.Rng.Seed())
	fmt.Printf("survived:      %.1fs (game over: %v)\n", p.SurvivalTime, p.Over)
	fmt.Printf("score:         %d\n", p.Score)
	fmt.Printf("kills:         %d\n", p.Kills)
	fmt.Printf("waves cleared: %d\n", g.WavesCleared())
	fmt.Printf("arrows shot:   %d\n", g.ECS.Bow.Shots)
	fmt.Printf("health:        %.0f/%.0f\n", p.Health, p.MaxHealth)
	fmt.Printf("sounds:        %d\n", len(sounds.Played))

	if hub != nil {
		publish(hub, g)
		if !interrupted {
			log.Println("[Sim] run finished, press Ctrl+C to stop the feed")
			<-ctx.Done()
		}
		shutdown, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		hub.Close()
		if err := srv.Shutdown(shutdown); err != nil {
			log.Printf("[Sim] shutdown: %v", err)
		}
	}
}

// simulate крутит игру до конца времени, конца игры или отмены ctx.
// С хабом каждый шаг ждёт pace и шлёт снимок каждые SpectateEveryN тиков.
// Возвращает true, если прервано через ctx.
func simulate(ctx context.Context, g *game.Game, pilot *game.Autopilot, hub *spectate.Hub, pace <-chan time.Time, dt, duration float64) bool {
	for g.ECS.Now() < duration && !g.IsOver() {
		pilot.Update(dt)
		g.Update(dt)
		if hub == nil {
			select {
			case <-ctx.Done():
				return true
			default:
			}
			continue
		}
		if g.Tick%config.SpectateEveryN == 0 {
			publish(hub, g)
		}
		select {
		case <-pace:
		case <-ctx.Done():
			return true
		}
	}
	return false
}

func publish(hub *spectate.Hub, g *game.Game) {
	if err := hub.Publish(g.Snapshot()); err != nil {
		log.Printf("[Sim] publish: %v", err)
	}
}
