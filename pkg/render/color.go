// pkg/render/color.go
package render

import (
	"image/color"

	"horde-in-town/internal/config"
	"horde-in-town/internal/utils"
	"horde-in-town/pkg/hexmap"
)

// ArenaColors holds all the color definitions needed to render the static arena background.
type ArenaColors struct {
	Background  color.RGBA
	Ground      color.RGBA
	Rubble      color.RGBA
	Spawn       color.RGBA
	Barrier     color.RGBA
	Yard        color.RGBA
	StrokeWidth float32
}

// DefaultArenaColors берёт палитру из config.
func DefaultArenaColors() ArenaColors {
	return ArenaColors{
		Background:  config.BackgroundColor,
		Ground:      config.PassableColor,
		Rubble:      config.ImpassableColor,
		Spawn:       config.SpawnColor,
		Barrier:     config.BarrierColor,
		Yard:        DarkenColor(config.PassableColor),
		StrokeWidth: 1.5,
	}
}

// TileColor возвращает заливку гекса по его назначению.
func (c ArenaColors) TileColor(kind hexmap.TileKind) color.RGBA {
	switch kind {
	case hexmap.TileRubble:
		return c.Rubble
	case hexmap.TileSpawn:
		return c.Spawn
	case hexmap.TileBarrier:
		return c.Barrier
	case hexmap.TileYard:
		return c.Yard
	}
	return c.Ground
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor adds a fixed amount to each channel, saturating at 255.
func LightenColor(c color.RGBA, amount int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+amount)),
		G: uint8(min(255, int(c.G)+amount)),
		B: uint8(min(255, int(c.B)+amount)),
		A: c.A,
	}
}

// Tint смешивает базовый цвет со вспышкой урона и применяет прозрачность.
func Tint(base color.RGBA, flash float32, alpha float32) color.RGBA {
	c := base
	if flash > 0 {
		c = utils.LerpColor(base, config.HitFlashColor, float64(flash))
	}
	return WithAlpha(c, float64(alpha))
}

// WithAlpha умножает все каналы на a: color.RGBA хранит premultiplied alpha.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	a = utils.Clamp(a, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
