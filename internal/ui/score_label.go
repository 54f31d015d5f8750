package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"

	"horde-in-town/internal/config"
	"horde-in-town/internal/event"
	"horde-in-town/internal/utils"
)

// ScoreLabel — строка счёта в HUD. Счёт приходит событием ScoreChanged,
// каждое начисление коротко подсвечивает строку.
type ScoreLabel struct {
	X, Y  int
	Score int

	glow  float32
	pulse *gween.Tween
}

func NewScoreLabel(x, y int) *ScoreLabel {
	return &ScoreLabel{X: x, Y: y}
}

func (l *ScoreLabel) OnEvent(e event.Event) {
	if e.Type != event.ScoreChanged {
		return
	}
	score, ok := e.Data.(int)
	if !ok {
		return
	}
	if score > l.Score {
		l.pulse = gween.New(1, 0, 0.4, ease.OutQuad)
		l.glow = 1
	}
	l.Score = score
}

func (l *ScoreLabel) Update(deltaTime float64) {
	if l.pulse == nil {
		return
	}
	v, done := l.pulse.Update(float32(deltaTime))
	l.glow = v
	if done {
		l.pulse = nil
		l.glow = 0
	}
}

// Glow — яркость подсветки, 0..1.
func (l *ScoreLabel) Glow() float32 { return l.glow }

func (l *ScoreLabel) Draw(screen *ebiten.Image, face font.Face, kills int, survival float64) {
	c := utils.LerpColor(config.TextLightColor, config.CooldownColor, float64(l.glow))
	line := fmt.Sprintf("Score %d   Kills %d   Time %s", l.Score, kills, FormatDuration(survival))
	text.Draw(screen, line, face, l.X, l.Y, c)
}
