// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 0.06
	WindowTitle  = "Horde in Town"

	// Арена: гексы pointy-top, смещённые ряды (odd-r)
	HexSize       = 22.0
	ArenaCols     = 24
	ArenaRows     = 15
	ArenaOriginX  = 120.0
	ArenaOriginY  = 40.0
	BarrierRow    = ArenaRows - 3 // ряд гексов, на котором стоит баррикада
	RubbleCount   = 9             // число непроходимых гексов-завалов
	SpawnColStep  = 3             // точка спавна в каждом третьем столбце верхнего ряда
	ColliderCell  = 8             // размер ячейки resolv-пространства
	BarrierHeight = 18.0

	// Игрок
	MaxPlayerHealth = 100.0
	HealAmount      = 10.0 // лечение за каждые KillsPerHeal убийств
	KillsPerHeal    = 10

	// Лук и стрелы
	ShootCooldown    = 5.0
	MinArrowDamage   = 10.0
	MaxArrowDamage   = 30.0
	ArrowSpeed       = 620.0 // pixels per second
	ArrowLifetime    = 10.0
	ArrowStickTime   = 5.0 // сколько стрела торчит в зомби после попадания
	ArrowRadius      = 4.0
	ArrowLength      = 22.0
	ArrowMaxStep     = 8.0 // максимальный шаг при интегрировании полёта
	CrosshairSpeed   = 520.0
	CrosshairMarginX = 40.0
	CrosshairMarginY = 30.0
	JoystickRange    = 50.0
	JoystickDeadZone = 0.1

	// Зомби по умолчанию (перекрываются определениями из YAML)
	ZombieMinHealth     = 50.0
	ZombieMaxHealth     = 100.0
	ZombieSpeed         = 40.0
	ZombieScoreValue    = 10
	ZombieDamagePerTick = 5.0
	ZombieDamageEvery   = 1.0
	ZombieHitReaction   = 0.5
	ZombieDeathDelay    = 2.0
	ZombieRadius        = 11.0

	// Спавнер
	TimeBetweenWaves = 5.0

	// Эффекты
	HitFlashDuration   = 0.25
	DeathFadeDuration  = ZombieDeathDelay
	PuffDuration       = 0.6
	PuffMaxRadius      = 26.0
	HealthBarSmoothing = 0.3
	HealthBarWidth     = 28.0
	HealthBarHeight    = 4.0

	// Аудио
	SampleRate = 44100

	// UI
	ClickCooldown   = 150 // ms
	HUDFontSize     = 18
	TitleFontSize   = 48
	ButtonFontSize  = 22
	FireButtonSize  = 46.0
	CooldownRadius  = 54.0
	TutorialPages   = 4
	SpectateEveryN  = 3 // каждый N-й тик отправляется наблюдателям
	DefaultSimSpeed = 1.0
)

var (
	BackgroundColor   = color.RGBA{18, 20, 26, 255}
	PassableColor     = color.RGBA{58, 74, 60, 255}
	ImpassableColor   = color.RGBA{92, 70, 58, 255}
	SpawnColor        = color.RGBA{120, 40, 40, 255}
	BarrierColor      = color.RGBA{150, 110, 60, 255}
	HexStrokeColor    = color.RGBA{30, 36, 32, 255}
	PlayerColor       = color.RGBA{70, 130, 220, 255}
	BowColor          = color.RGBA{200, 160, 90, 255}
	ArrowColor        = color.RGBA{235, 225, 200, 255}
	CrosshairColor    = color.RGBA{255, 80, 80, 230}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	HealthyColor      = color.RGBA{70, 200, 90, 255}
	LowHealthColor    = color.RGBA{220, 50, 50, 255}
	PanelColor        = color.RGBA{10, 10, 16, 220}
	ButtonColor       = color.RGBA{70, 130, 180, 230}
	ButtonHoverColor  = color.RGBA{100, 160, 210, 240}
	ButtonStrokeColor = color.RGBA{240, 240, 240, 255}
	JoystickBaseColor = color.RGBA{255, 255, 255, 50}
	JoystickKnobColor = color.RGBA{255, 255, 255, 140}
	CooldownColor     = color.RGBA{255, 215, 0, 230}
	PuffColor         = color.RGBA{190, 190, 190, 200}
	HitFlashColor     = color.RGBA{255, 255, 255, 255}
	ZombieColors      = []color.RGBA{
		{90, 140, 70, 255},  // walker
		{120, 160, 60, 255}, // runner
		{70, 100, 60, 255},  // brute
	}
)
