package ui

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"horde-in-town/internal/config"
)

// WaveIndicator отображает число пройденных волн римскими цифрами
// и название текущей волны.
type WaveIndicator struct {
	X, Y             int
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, OutlineThickness: 2}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Label собирает подпись индикатора.
func (i *WaveIndicator) Label(wavesCleared int, waveName string) string {
	label := "Waves: " + toRoman(wavesCleared)
	if wavesCleared == 0 {
		label = "Waves: 0"
	}
	if waveName != "" {
		label += " - " + waveName
	}
	return label
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, wavesCleared int, waveName string) {
	textColor := config.TextLightColor
	if wavesCleared > 0 && wavesCleared%10 == 0 {
		textColor = config.LowHealthColor
	}
	DrawOutlined(screen, i.Label(wavesCleared, waveName), face, i.X, i.Y, i.OutlineThickness, textColor, config.TextDarkColor)
}
