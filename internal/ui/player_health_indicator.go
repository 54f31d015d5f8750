// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"

	"horde-in-town/internal/config"
	"horde-in-town/internal/event"
	"horde-in-town/internal/utils"
)

const healFlashDuration = 0.8

// PlayerHealthIndicator — полоса здоровья игрока, цвет от красного к зелёному.
// Доля здоровья приходит событием HealthChanged, лечение подсвечивает полосу.
type PlayerHealthIndicator struct {
	X, Y          float32
	Width, Height float32

	fraction float64
	healed   float64 // сколько вылечило последнее PlayerHealed
	glow     float32
	flash    *gween.Tween
}

func NewPlayerHealthIndicator(x, y, width, height float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, Width: width, Height: height, fraction: 1}
}

// OnEvent принимает HealthChanged (float64 доля) и PlayerHealed (float64 прибавка).
func (i *PlayerHealthIndicator) OnEvent(e event.Event) {
	switch e.Type {
	case event.HealthChanged:
		if f, ok := e.Data.(float64); ok {
			i.fraction = utils.Clamp(f, 0, 1)
		}
	case event.PlayerHealed:
		if amount, ok := e.Data.(float64); ok && amount > 0 {
			i.healed = amount
			i.flash = gween.New(1, 0, healFlashDuration, ease.OutQuad)
			i.glow = 1
		}
	}
}

// Update гасит вспышку лечения.
func (i *PlayerHealthIndicator) Update(deltaTime float64) {
	if i.flash == nil {
		return
	}
	v, done := i.flash.Update(float32(deltaTime))
	i.glow = v
	if done {
		i.flash = nil
		i.glow = 0
	}
}

// Fraction — последняя полученная доля здоровья.
func (i *PlayerHealthIndicator) Fraction() float64 { return i.fraction }

// Glow — яркость вспышки лечения, 0..1.
func (i *PlayerHealthIndicator) Glow() float32 { return i.glow }

// FillWidth возвращает ширину заливки для доли здоровья.
func (i *PlayerHealthIndicator) FillWidth(fraction float64) float32 {
	return float32(utils.Clamp(fraction, 0, 1)) * (i.Width - 4)
}

// Draw рисует полосу и числовое значение над ней.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, face font.Face, maxHealth float64) {
	vector.DrawFilledRect(screen, i.X, i.Y, i.Width, i.Height, config.PanelColor, true)
	if w := i.FillWidth(i.fraction); w > 0 {
		fill := utils.LerpColor(config.LowHealthColor, config.HealthyColor, i.fraction)
		if i.glow > 0 {
			fill = utils.LerpColor(fill, config.HitFlashColor, float64(i.glow)*0.6)
		}
		vector.DrawFilledRect(screen, i.X+2, i.Y+2, w, i.Height-4, fill, true)
	}
	vector.StrokeRect(screen, i.X, i.Y, i.Width, i.Height, 1, config.ButtonStrokeColor, true)

	label := fmt.Sprintf("%.0f/%.0f", i.fraction*maxHealth, maxHealth)
	DrawCentered(screen, label, face, int(i.X+i.Width/2), int(i.Y+i.Height/2), config.TextLightColor)
	if i.glow > 0 {
		heal := fmt.Sprintf("+%.0f", i.healed)
		DrawCentered(screen, heal, face, int(i.X+i.Width+24), int(i.Y+i.Height/2), config.HealthyColor)
	}
}
