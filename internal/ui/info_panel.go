// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"horde-in-town/internal/config"
)

const (
	panelWidth     = 520
	panelHeight    = 420
	animationSpeed = 1400.0 // пикселей в секунду
	lineHeight     = 38
)

// InfoLine — строка панели итогов.
type InfoLine struct {
	Label string
	Value string
}

// InfoPanel выезжает сверху и показывает итоги забега.
type InfoPanel struct {
	Title    string
	Lines    []InfoLine
	currentY float64
	targetY  float64
	visible  bool
}

func NewInfoPanel() *InfoPanel {
	return &InfoPanel{currentY: -panelHeight, targetY: -panelHeight}
}

// Show запускает выезд панели с новым содержимым.
func (p *InfoPanel) Show(title string, lines []InfoLine) {
	p.Title = title
	p.Lines = lines
	p.visible = true
	p.currentY = -panelHeight
	p.targetY = float64(config.ScreenHeight-panelHeight) / 2
}

func (p *InfoPanel) Hide() {
	p.targetY = -panelHeight
}

func (p *InfoPanel) Visible() bool { return p.visible }

// Settled сообщает, что панель доехала до места.
func (p *InfoPanel) Settled() bool { return p.currentY == p.targetY }

// Origin — левый верхний угол панели в текущем кадре.
func (p *InfoPanel) Origin() image.Point {
	return image.Pt((config.ScreenWidth-panelWidth)/2, int(p.currentY))
}

func (p *InfoPanel) Update(deltaTime float64) {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	step := animationSpeed * deltaTime
	if math.Abs(diff) <= step {
		p.currentY = p.targetY
	} else {
		p.currentY += math.Copysign(step, diff)
	}
	if p.currentY <= -panelHeight {
		p.visible = false
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, fonts *Fonts) {
	if !p.visible {
		return
	}
	o := p.Origin()
	vector.DrawFilledRect(screen, float32(o.X), float32(o.Y), panelWidth, panelHeight, config.PanelColor, true)
	vector.StrokeRect(screen, float32(o.X), float32(o.Y), panelWidth, panelHeight, 2, config.ButtonColor, true)

	DrawCentered(screen, p.Title, fonts.Title, o.X+panelWidth/2, o.Y+50, config.TextLightColor)
	for i, line := range p.Lines {
		y := o.Y + 120 + i*lineHeight
		DrawOutlined(screen, line.Label, fonts.Button, o.X+40, y, 1, config.TextLightColor, config.TextDarkColor)
		DrawOutlined(screen, line.Value, fonts.Button, o.X+panelWidth-180, y, 1, config.CooldownColor, config.TextDarkColor)
	}
}

// FormatDuration выводит секунды как м:сс.
func FormatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
