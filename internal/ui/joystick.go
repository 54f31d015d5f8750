// internal/ui/joystick.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"horde-in-town/internal/config"
	"horde-in-town/internal/utils"
)

// Joystick — виртуальный стик. Захватывается нажатием рядом с основанием,
// ручка не уходит дальше Range.
type Joystick struct {
	BaseX, BaseY float64
	Range        float64

	active       bool
	pointer      int // id касания или -1 для мыши
	knobX, knobY float64
}

func NewJoystick(x, y, rng float64) *Joystick {
	return &Joystick{BaseX: x, BaseY: y, Range: rng, knobX: x, knobY: y}
}

// Press захватывает стик, если нажатие попало в зону захвата.
func (j *Joystick) Press(pointer int, x, y float64) bool {
	if j.active || utils.Length(x-j.BaseX, y-j.BaseY) > j.Range*1.5 {
		return false
	}
	j.active = true
	j.pointer = pointer
	j.Drag(pointer, x, y)
	return true
}

// Drag двигает ручку; чужие указатели игнорируются.
func (j *Joystick) Drag(pointer int, x, y float64) {
	if !j.active || pointer != j.pointer {
		return
	}
	dx, dy := utils.ClampMagnitude(x-j.BaseX, y-j.BaseY, j.Range)
	j.knobX, j.knobY = j.BaseX+dx, j.BaseY+dy
}

// Release отпускает стик и возвращает ручку в центр.
func (j *Joystick) Release(pointer int) {
	if !j.active || pointer != j.pointer {
		return
	}
	j.active = false
	j.knobX, j.knobY = j.BaseX, j.BaseY
}

func (j *Joystick) Active() bool { return j.active }
func (j *Joystick) Pointer() int { return j.pointer }

// Direction возвращает отклонение ручки в долях Range (-1..1 по осям).
func (j *Joystick) Direction() (float64, float64) {
	if j.Range <= 0 {
		return 0, 0
	}
	return (j.knobX - j.BaseX) / j.Range, (j.knobY - j.BaseY) / j.Range
}

func (j *Joystick) Draw(screen *ebiten.Image) {
	vector.DrawFilledCircle(screen, float32(j.BaseX), float32(j.BaseY), float32(j.Range), config.JoystickBaseColor, true)
	vector.DrawFilledCircle(screen, float32(j.knobX), float32(j.knobY), float32(j.Range*0.45), config.JoystickKnobColor, true)
}
