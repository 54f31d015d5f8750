// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"

	"horde-in-town/internal/config"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
	Disabled   bool

	scale float32
	pulse *gween.Tween
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, text string) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHoverColor,
		scale:      1,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return !b.Disabled && image.Pt(x, y).In(b.Rect)
}

// Click запускает анимацию нажатия, если точка внутри кнопки.
func (b *Button) Click(x, y int) bool {
	if !b.Contains(x, y) {
		return false
	}
	b.pulse = gween.New(1.15, 1, 0.2, ease.OutQuad)
	return true
}

// Update продвигает анимацию нажатия.
func (b *Button) Update(deltaTime float64) {
	if b.pulse == nil {
		return
	}
	v, done := b.pulse.Update(float32(deltaTime))
	b.scale = v
	if done {
		b.pulse = nil
		b.scale = 1
	}
}

// Scale — текущий масштаб кнопки, больше 1 сразу после нажатия.
func (b *Button) Scale() float32 { return b.scale }

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, hovered bool) {
	bg := b.BgColor
	if hovered && !b.Disabled {
		bg = b.HoverColor
	}
	if b.Disabled {
		bg.A /= 2
	}

	w := float32(b.Rect.Dx()) * b.scale
	h := float32(b.Rect.Dy()) * b.scale
	cx := float32(b.Rect.Min.X) + float32(b.Rect.Dx())/2
	cy := float32(b.Rect.Min.Y) + float32(b.Rect.Dy())/2

	vector.DrawFilledRect(screen, cx-w/2, cy-h/2, w, h, bg, true)
	vector.StrokeRect(screen, cx-w/2, cy-h/2, w, h, 2, config.ButtonStrokeColor, true)
	DrawCentered(screen, b.Text, face, int(cx), int(cy), b.TextColor)
}
