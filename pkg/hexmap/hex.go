// pkg/hexmap/hex.go
package hexmap

import "math"

// Hex представляет гекс в осевых координатах (Q, R)
type Hex struct {
	Q, R int
}

// NeighborDirections defines the 6 possible directions from a hex, starting from East and going counter-clockwise.
var NeighborDirections = []Hex{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// ToPixel конвертирует гекс в пиксельные координаты (pointy top ориентация)
// относительно гекса (0, 0).
func (h Hex) ToPixel(hexSize float64) (x, y float64) {
	x = hexSize * (Sqrt3*float64(h.Q) + Sqrt3/2*float64(h.R))
	y = hexSize * (3.0 / 2.0 * float64(h.R))
	return
}

// PixelToHex конвертирует пиксельные координаты (относительно гекса (0, 0)) в гекс
func PixelToHex(x, y, hexSize float64) Hex {
	q := (Sqrt3/3*x - 1.0/3*y) / hexSize
	r := (2.0 / 3 * y) / hexSize
	return axialRound(q, r)
}

// OffsetToHex переводит координаты столбец/ряд (odd-r) в осевые
func OffsetToHex(col, row int) Hex {
	return Hex{Q: col - (row-(row&1))/2, R: row}
}

// Offset возвращает столбец и ряд гекса в odd-r раскладке
func (h Hex) Offset() (col, row int) {
	return h.Q + (h.R-(h.R&1))/2, h.R
}

// AllPossibleNeighbors возвращает всех возможных соседей гекса
func (h Hex) AllPossibleNeighbors() []Hex {
	out := make([]Hex, 0, len(NeighborDirections))
	for _, d := range NeighborDirections {
		out = append(out, h.Add(d))
	}
	return out
}

// Add возвращает сумму двух гексов
func (h Hex) Add(other Hex) Hex {
	return Hex{Q: h.Q + other.Q, R: h.R + other.R}
}

// Distance вычисляет расстояние между гексами
func (h Hex) Distance(to Hex) int {
	dq := h.Q - to.Q
	dr := h.R - to.R
	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}

// Corners возвращает вершины гекса с центром в (cx, cy)
func Corners(cx, cy, hexSize float64) [6][2]float64 {
	var pts [6][2]float64
	for i := 0; i < 6; i++ {
		angle := math.Pi/180*float64(60*i) - math.Pi/6
		pts[i] = [2]float64{cx + hexSize*math.Cos(angle), cy + hexSize*math.Sin(angle)}
	}
	return pts
}
