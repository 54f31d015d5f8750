package main

import (
	"context"
	"testing"
	"time"

	game "horde-in-town/internal/app"
	"horde-in-town/internal/config"
	"horde-in-town/internal/defs"
	"horde-in-town/internal/spectate"
)

func newRun(t *testing.T) (*game.Game, *game.Autopilot) {
	t.Helper()
	g := game.NewGame(defs.LoadDefault(), 4)
	g.StartGame()
	return g, game.NewAutopilot(g)
}

func TestSimulateStopsOnCancel(t *testing.T) {
	tests := []struct {
		name string
		hub  bool
	}{
		{"headless", false},
		{"serving", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, pilot := newRun(t)
			var hub *spectate.Hub
			if tt.hub {
				hub = spectate.NewHub()
				defer hub.Close()
			}
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			// pace never fires, only ctx can end the serving loop
			if !simulate(ctx, g, pilot, hub, make(chan time.Time), 1.0/60, 300) {
				t.Fatal("simulate ignored a cancelled context")
			}
			if g.Tick != 1 {
				t.Errorf("ran %d ticks after cancel, want 1", g.Tick)
			}
		})
	}
}

func TestSimulateRunsForDuration(t *testing.T) {
	g, pilot := newRun(t)
	if simulate(context.Background(), g, pilot, nil, nil, 0.05, 2) {
		t.Fatal("uncancelled run reported an interrupt")
	}
	if g.ECS.Now() < 2 {
		t.Errorf("stopped at %.2fs, want 2s", g.ECS.Now())
	}
}

func TestSimulatePublishesSnapshots(t *testing.T) {
	g, pilot := newRun(t)
	hub := spectate.NewHub()
	defer hub.Close()

	pace := make(chan time.Time, config.SpectateEveryN)
	for i := 0; i < config.SpectateEveryN; i++ {
		pace <- time.Time{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// отменяем после того, как буфер pace исчерпан
	go func() {
		for len(pace) > 0 {
			time.Sleep(time.Millisecond)
		}
		cancel()
	}()

	simulate(ctx, g, pilot, hub, pace, 1.0/60, 300)
	if hub.Latest() == nil {
		t.Fatal("no snapshot published")
	}
}
