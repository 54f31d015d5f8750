package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"horde-in-town/internal/config"
	"horde-in-town/internal/utils"
)

// Toggle — переключатель с подписью слева.
type Toggle struct {
	Rect  image.Rectangle // сам переключатель
	Label string
	On    bool
}

// Click переключает состояние при попадании и сообщает, было ли попадание.
func (t *Toggle) Click(x, y int) bool {
	if !image.Pt(x, y).In(t.Rect) {
		return false
	}
	t.On = !t.On
	return true
}

func (t *Toggle) Draw(screen *ebiten.Image, face font.Face) {
	r := t.Rect
	text.Draw(screen, t.Label, face, r.Min.X-220, r.Max.Y-6, config.TextLightColor)
	bg := config.PanelColor
	if t.On {
		bg = config.HealthyColor
	}
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, true)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, config.ButtonStrokeColor, true)
	knob := float32(r.Dy()) / 2
	kx := float32(r.Min.X) + knob
	if t.On {
		kx = float32(r.Max.X) - knob
	}
	vector.DrawFilledCircle(screen, kx, float32(r.Min.Y)+knob, knob-3, config.TextLightColor, true)
}

// Slider — горизонтальный ползунок 0..1.
type Slider struct {
	Rect     image.Rectangle
	Label    string
	Value    float64
	dragging bool
}

// Press начинает перетаскивание, если нажатие попало в ползунок.
func (s *Slider) Press(x, y int) bool {
	if !image.Pt(x, y).In(s.Rect.Inset(-6)) {
		return false
	}
	s.dragging = true
	s.SetFromX(x)
	return true
}

// Drag обновляет значение, пока ползунок захвачен.
func (s *Slider) Drag(x int) bool {
	if !s.dragging {
		return false
	}
	s.SetFromX(x)
	return true
}

func (s *Slider) Release() { s.dragging = false }

// SetFromX переводит экранную координату в значение.
func (s *Slider) SetFromX(x int) {
	if s.Rect.Dx() <= 0 {
		return
	}
	s.Value = utils.Clamp(float64(x-s.Rect.Min.X)/float64(s.Rect.Dx()), 0, 1)
}

func (s *Slider) Draw(screen *ebiten.Image, face font.Face) {
	r := s.Rect
	text.Draw(screen, s.Label, face, r.Min.X-220, r.Max.Y-2, config.TextLightColor)
	midY := float32(r.Min.Y) + float32(r.Dy())/2
	vector.StrokeLine(screen, float32(r.Min.X), midY, float32(r.Max.X), midY, 4, config.PanelColor, true)
	kx := float32(r.Min.X) + float32(s.Value)*float32(r.Dx())
	vector.StrokeLine(screen, float32(r.Min.X), midY, kx, midY, 4, config.ButtonColor, true)
	vector.DrawFilledCircle(screen, kx, midY, float32(r.Dy())/2, config.ButtonHoverColor, true)
}
