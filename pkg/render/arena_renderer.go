package render

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"horde-in-town/internal/config"
	"horde-in-town/pkg/hexmap"
)

// ArenaRenderer рисует статичную арену один раз в mapImage и потом
// копирует её на экран одним вызовом.
type ArenaRenderer struct {
	arena       *hexmap.Arena
	colors      ArenaColors
	fillImg     *ebiten.Image
	sortedHexes []hexmap.Hex
	fillVs      []ebiten.Vertex
	fillIs      []uint16
	strokeVs    []ebiten.Vertex
	strokeIs    []uint16
	mapImage    *ebiten.Image
}

func NewArenaRenderer(arena *hexmap.Arena, colors ArenaColors, screenWidth, screenHeight int) *ArenaRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &ArenaRenderer{
		arena:       arena,
		colors:      colors,
		fillImg:     fillImg,
		sortedHexes: SortedHexes(arena),
		fillVs:      make([]ebiten.Vertex, 0, 18),
		fillIs:      make([]uint16, 0, 18),
		strokeVs:    make([]ebiten.Vertex, 0, 36),
		strokeIs:    make([]uint16, 0, 36),
		mapImage:    ebiten.NewImage(screenWidth, screenHeight),
	}
	r.RenderMapImage()
	return r
}

// SortedHexes возвращает гексы арены построчно, сверху вниз.
func SortedHexes(arena *hexmap.Arena) []hexmap.Hex {
	hexes := make([]hexmap.Hex, 0, len(arena.Tiles))
	for h := range arena.Tiles {
		hexes = append(hexes, h)
	}
	slices.SortFunc(hexes, func(a, b hexmap.Hex) int {
		if c := cmp.Compare(a.R, b.R); c != 0 {
			return c
		}
		return cmp.Compare(a.Q, b.Q)
	})
	return hexes
}

// RenderMapImage создаёт предрендеренное изображение арены
func (r *ArenaRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.Background)

	for _, hex := range r.sortedHexes {
		r.drawHex(r.mapImage, hex)
	}

	// Баррикада — сплошная полоса поверх ряда барьера
	y, minX, maxX := r.arena.BarrierLine()
	h := float32(config.BarrierHeight)
	vector.DrawFilledRect(r.mapImage, float32(minX), float32(y)-h/2, float32(maxX-minX), h, DarkenColor(r.colors.Barrier), true)
	vector.StrokeRect(r.mapImage, float32(minX), float32(y)-h/2, float32(maxX-minX), h, 2, r.colors.Barrier, true)
}

func (r *ArenaRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.mapImage, nil)
}

func hexPath(cx, cy, size float64) *vector.Path {
	path := &vector.Path{}
	for i, p := range hexmap.Corners(cx, cy, size) {
		if i == 0 {
			path.MoveTo(float32(p[0]), float32(p[1]))
		} else {
			path.LineTo(float32(p[0]), float32(p[1]))
		}
	}
	path.Close()
	return path
}

func (r *ArenaRenderer) drawHex(target *ebiten.Image, hex hexmap.Hex) {
	x, y := r.arena.Center(hex)
	path := hexPath(x, y, r.arena.HexSize)
	fillColor := r.colors.TileColor(r.arena.Tiles[hex].Kind)

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paintVertices(r.fillVs, fillColor)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: r.colors.StrokeWidth,
	})
	paintVertices(r.strokeVs, LightenColor(fillColor, 40))
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func paintVertices(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
