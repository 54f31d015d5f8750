// pkg/hexmap/arena.go
package hexmap

import "math"

// TileKind — назначение гекса арены
type TileKind int

const (
	TileGround TileKind = iota
	TileRubble
	TileSpawn
	TileBarrier
	TileYard // территория игрока за баррикадой
)

type Tile struct {
	Kind     TileKind
	Passable bool
}

// Rand is the subset of the PRNG the arena generator needs.
type Rand interface {
	Intn(n int) int
}

// ArenaConfig describes the rectangular arena layout.
type ArenaConfig struct {
	Cols, Rows       int
	HexSize          float64
	OriginX, OriginY float64 // пиксельный центр гекса (0, 0)
	BarrierRow       int
	SpawnColStep     int
	RubbleCount      int
}

// Arena is a rectangular pointy-top hex field. Zombies appear on the top
// row, walk down and meet the barrier row; the player stands in the yard
// below it.
type Arena struct {
	Tiles        map[Hex]Tile
	Cols, Rows   int
	HexSize      float64
	OriginX      float64
	OriginY      float64
	BarrierRow   int
	SpawnHexes   []Hex
	BarrierHexes []Hex
	PlayerHex    Hex
}

// NewArena builds the arena. Rubble is placed with rng and never cuts a
// spawn hex off from the player; pass nil for an arena without rubble.
func NewArena(cfg ArenaConfig, rng Rand) *Arena {
	a := &Arena{
		Tiles:      make(map[Hex]Tile, cfg.Cols*cfg.Rows),
		Cols:       cfg.Cols,
		Rows:       cfg.Rows,
		HexSize:    cfg.HexSize,
		OriginX:    cfg.OriginX,
		OriginY:    cfg.OriginY,
		BarrierRow: cfg.BarrierRow,
	}

	step := cfg.SpawnColStep
	if step <= 0 {
		step = 1
	}

	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			h := OffsetToHex(col, row)
			tile := Tile{Kind: TileGround, Passable: true}
			switch {
			case row == 0 && col%step == step/2:
				tile.Kind = TileSpawn
				a.SpawnHexes = append(a.SpawnHexes, h)
			case row == cfg.BarrierRow:
				tile.Kind = TileBarrier
				a.BarrierHexes = append(a.BarrierHexes, h)
			case row > cfg.BarrierRow:
				tile.Kind = TileYard
			}
			a.Tiles[h] = tile
		}
	}
	a.PlayerHex = OffsetToHex(cfg.Cols/2, cfg.Rows-1)

	if rng != nil {
		a.placeRubble(cfg.RubbleCount, rng)
	}
	return a
}

// placeRubble ставит завалы в средней части арены, откатывая те, что
// перекрывают путь от какой-либо точки спавна к игроку.
func (a *Arena) placeRubble(count int, rng Rand) {
	minRow, maxRow := 2, a.BarrierRow-2
	if maxRow < minRow || a.Cols < 3 {
		return
	}
	attempts := count * 8
	for placed := 0; placed < count && attempts > 0; attempts-- {
		col := 1 + rng.Intn(a.Cols-2)
		row := minRow + rng.Intn(maxRow-minRow+1)
		h := OffsetToHex(col, row)
		if t := a.Tiles[h]; t.Kind != TileGround {
			continue
		}
		a.Tiles[h] = Tile{Kind: TileRubble, Passable: false}
		if !a.allSpawnsReach(a.PlayerHex) {
			a.Tiles[h] = Tile{Kind: TileGround, Passable: true}
			continue
		}
		placed++
	}
}

func (a *Arena) allSpawnsReach(goal Hex) bool {
	for _, s := range a.SpawnHexes {
		if a.Path(s, goal) == nil {
			return false
		}
	}
	return true
}

// Contains reports whether h lies inside the arena.
func (a *Arena) Contains(h Hex) bool {
	_, ok := a.Tiles[h]
	return ok
}

// IsPassable reports whether zombies may walk through h.
func (a *Arena) IsPassable(h Hex) bool {
	t, ok := a.Tiles[h]
	return ok && t.Passable
}

// Neighbors возвращает существующих соседей гекса
func (a *Arena) Neighbors(h Hex) []Hex {
	out := make([]Hex, 0, 6)
	for _, n := range h.AllPossibleNeighbors() {
		if a.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// Center возвращает экранные координаты центра гекса
func (a *Arena) Center(h Hex) (x, y float64) {
	x, y = h.ToPixel(a.HexSize)
	return x + a.OriginX, y + a.OriginY
}

// PixelToHex конвертирует экранные координаты в гекс арены
func (a *Arena) PixelToHex(x, y float64) Hex {
	return PixelToHex(x-a.OriginX, y-a.OriginY, a.HexSize)
}

// Bounds returns the pixel rectangle covering every hex of the arena.
func (a *Arena) Bounds() (minX, minY, maxX, maxY float64) {
	halfW := a.HexSize * Sqrt3 / 2
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for h := range a.Tiles {
		x, y := a.Center(h)
		minX = math.Min(minX, x-halfW)
		maxX = math.Max(maxX, x+halfW)
		minY = math.Min(minY, y-a.HexSize)
		maxY = math.Max(maxY, y+a.HexSize)
	}
	return
}

// BarrierLine returns the y coordinate of the barrier row centre and its
// horizontal extent.
func (a *Arena) BarrierLine() (y, minX, maxX float64) {
	minX, _, maxX, _ = a.Bounds()
	_, y = a.Center(OffsetToHex(0, a.BarrierRow))
	return
}

// NearestBarrierHex returns the barrier hex closest to the pixel x.
func (a *Arena) NearestBarrierHex(x float64) Hex {
	best := a.PlayerHex
	bestDist := math.Inf(1)
	for _, h := range a.BarrierHexes {
		cx, _ := a.Center(h)
		if d := math.Abs(cx - x); d < bestDist {
			best, bestDist = h, d
		}
	}
	return best
}
