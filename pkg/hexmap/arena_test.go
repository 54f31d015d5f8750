package hexmap

import (
	"math"
	"math/rand"
	"testing"
)

func testConfig() ArenaConfig {
	return ArenaConfig{
		Cols:         12,
		Rows:         10,
		HexSize:      20,
		OriginX:      50,
		OriginY:      40,
		BarrierRow:   7,
		SpawnColStep: 3,
		RubbleCount:  6,
	}
}

func TestOffsetRoundTrip(t *testing.T) {
	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			h := OffsetToHex(col, row)
			c, r := h.Offset()
			if c != col || r != row {
				t.Fatalf("OffsetToHex(%d, %d).Offset() = (%d, %d)", col, row, c, r)
			}
		}
	}
}

func TestPixelRoundTrip(t *testing.T) {
	a := NewArena(testConfig(), nil)
	for h := range a.Tiles {
		x, y := a.Center(h)
		if got := a.PixelToHex(x+3, y-2); got != h {
			t.Fatalf("PixelToHex(Center(%v)) = %v", h, got)
		}
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b Hex
		want int
	}{
		{Hex{0, 0}, Hex{0, 0}, 0},
		{Hex{0, 0}, Hex{1, 0}, 1},
		{Hex{0, 0}, Hex{2, -1}, 2},
		{Hex{-2, 3}, Hex{1, -1}, 4},
	}
	for _, tt := range tests {
		if got := tt.a.Distance(tt.b); got != tt.want {
			t.Errorf("%v.Distance(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestArenaLayout(t *testing.T) {
	cfg := testConfig()
	a := NewArena(cfg, nil)

	if len(a.Tiles) != cfg.Cols*cfg.Rows {
		t.Fatalf("expected %d tiles, got %d", cfg.Cols*cfg.Rows, len(a.Tiles))
	}
	if len(a.SpawnHexes) != cfg.Cols/cfg.SpawnColStep {
		t.Errorf("expected %d spawn hexes, got %d", cfg.Cols/cfg.SpawnColStep, len(a.SpawnHexes))
	}
	if len(a.BarrierHexes) != cfg.Cols {
		t.Errorf("expected a full barrier row, got %d hexes", len(a.BarrierHexes))
	}
	for _, h := range a.SpawnHexes {
		if _, row := h.Offset(); row != 0 {
			t.Errorf("spawn hex %v is not on the top row", h)
		}
	}
	if a.Tiles[a.PlayerHex].Kind != TileYard {
		t.Errorf("player hex must be in the yard, got kind %v", a.Tiles[a.PlayerHex].Kind)
	}
}

func TestPathReachesBarrier(t *testing.T) {
	a := NewArena(testConfig(), rand.New(rand.NewSource(11)))

	for _, spawn := range a.SpawnHexes {
		sx, _ := a.Center(spawn)
		goal := a.NearestBarrierHex(sx)
		path := a.Path(spawn, goal)
		if path == nil {
			t.Fatalf("no path from %v to %v", spawn, goal)
		}
		if path[0] != spawn || path[len(path)-1] != goal {
			t.Fatalf("path must run from spawn to goal, got %v", path)
		}
		if len(path)-1 < spawn.Distance(goal) {
			t.Fatalf("path shorter than hex distance: %v", path)
		}
		for i := 1; i < len(path); i++ {
			if path[i-1].Distance(path[i]) != 1 {
				t.Fatalf("path step %d is not between neighbours: %v -> %v", i, path[i-1], path[i])
			}
			if !a.IsPassable(path[i]) {
				t.Fatalf("path goes through impassable hex %v", path[i])
			}
		}
	}
}

func TestRubbleKeepsSpawnsConnected(t *testing.T) {
	cfg := testConfig()
	cfg.RubbleCount = 20
	a := NewArena(cfg, rand.New(rand.NewSource(5)))

	rubble := 0
	for _, tile := range a.Tiles {
		if tile.Kind == TileRubble {
			rubble++
			if tile.Passable {
				t.Error("rubble must be impassable")
			}
		}
	}
	if rubble == 0 {
		t.Error("expected some rubble to be placed")
	}
	if !a.allSpawnsReach(a.PlayerHex) {
		t.Error("rubble cut a spawn point off from the player")
	}
}

func TestPathBlocked(t *testing.T) {
	a := NewArena(testConfig(), nil)
	goal := a.BarrierHexes[3]
	a.Tiles[goal] = Tile{Kind: TileRubble}
	if p := a.Path(a.SpawnHexes[0], goal); p != nil {
		t.Errorf("expected nil path to an impassable goal, got %v", p)
	}
}

func TestCorners(t *testing.T) {
	pts := Corners(0, 0, 10)
	for i, p := range pts {
		if d := math.Hypot(p[0], p[1]); math.Abs(d-10) > 1e-9 {
			t.Errorf("corner %d at distance %f", i, d)
		}
	}
	// pointy top: одна из вершин строго сверху
	if math.Abs(pts[5][0]) > 1e-9 || pts[5][1] > -9.99 {
		t.Errorf("expected a top vertex, got %v", pts[5])
	}
}
