// internal/utils/math.go
package utils

import (
	"image/color"
	"math"
)

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает v отрезком [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Length — длина вектора (x, y)
func Length(x, y float64) float64 {
	return math.Hypot(x, y)
}

// Normalize возвращает единичный вектор. Нулевой вектор остаётся нулевым.
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

// ClampMagnitude укорачивает вектор до maxLen, сохраняя направление
func ClampMagnitude(x, y, maxLen float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l <= maxLen || l == 0 {
		return x, y
	}
	k := maxLen / l
	return x * k, y * k
}

// LerpColor смешивает два цвета покомпонентно
func LerpColor(from, to color.RGBA, t float64) color.RGBA {
	t = Clamp(t, 0, 1)
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(Lerp(float64(a), float64(b), t)))
	}
	return color.RGBA{
		R: mix(from.R, to.R),
		G: mix(from.G, to.G),
		B: mix(from.B, to.B),
		A: mix(from.A, to.A),
	}
}
