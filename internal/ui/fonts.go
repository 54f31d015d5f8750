// internal/ui/fonts.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"horde-in-town/internal/config"
)

// Fonts — шрифты интерфейса трёх размеров.
type Fonts struct {
	HUD    font.Face
	Title  font.Face
	Button font.Face
}

// LoadFonts собирает шрифты из встроенного Go Regular, без файлов на диске.
func LoadFonts() (*Fonts, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := func(size float64) (font.Face, error) {
		return opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	f := &Fonts{}
	if f.HUD, err = face(config.HUDFontSize); err != nil {
		return nil, fmt.Errorf("failed to create HUD font: %w", err)
	}
	if f.Title, err = face(config.TitleFontSize); err != nil {
		return nil, fmt.Errorf("failed to create title font: %w", err)
	}
	if f.Button, err = face(config.ButtonFontSize); err != nil {
		return nil, fmt.Errorf("failed to create button font: %w", err)
	}
	return f, nil
}

// DrawCentered рисует строку с центром в (cx, cy).
func DrawCentered(screen *ebiten.Image, s string, face font.Face, cx, cy int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, cx-b.Dx()/2-b.Min.X, cy-b.Dy()/2-b.Min.Y, clr)
}

// DrawOutlined рисует текст с обводкой толщиной thickness.
func DrawOutlined(screen *ebiten.Image, s string, face font.Face, x, y, thickness int, clr, outline color.Color) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, s, face, x+dx, y+dy, outline)
		}
	}
	text.Draw(screen, s, face, x, y, clr)
}
