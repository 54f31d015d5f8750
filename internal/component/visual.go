// internal/component/visual.go
package component

import "github.com/tanema/gween"

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Tween     *gween.Tween
	Intensity float32 // 1 сразу после удара, затухает до 0
}

// DeathFade гасит мёртвого зомби до его удаления.
type DeathFade struct {
	Tween *gween.Tween
}

// Puff — облачко на месте смерти или попадания.
type Puff struct {
	X, Y      float64
	MaxRadius float32
	Radius    float32
	Alpha     float32
	Tween     *gween.Tween
}

// HealthBar — полоска здоровья над зомби со сглаживанием.
type HealthBar struct {
	Displayed float32 // отображаемая доля здоровья
	Target    float32
	TweenTo   float32 // цель текущего твина
	Tween     *gween.Tween
	Hidden    bool
}
