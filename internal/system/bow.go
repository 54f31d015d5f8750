package system

import (
	"horde-in-town/internal/config"
	"horde-in-town/internal/entity"
	"horde-in-town/internal/event"
	"horde-in-town/internal/types"
	"horde-in-town/internal/utils"
)

// BowSystem двигает прицел и стреляет с перезарядкой.
type BowSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	arrows          *ArrowSystem
	rng             *utils.PRNGService
}

func NewBowSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, arrows *ArrowSystem, rng *utils.PRNGService) *BowSystem {
	return &BowSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		arrows:          arrows,
		rng:             rng,
	}
}

// Reset ставит лучника в (x, y), прицел — над ним, лук сразу готов к выстрелу.
func (s *BowSystem) Reset(x, y, minX, minY, maxX, maxY float64) {
	b := s.ecs.Bow
	b.X, b.Y = x, y
	b.MinX, b.MinY, b.MaxX, b.MaxY = minX, minY, maxX, maxY
	b.Cooldown = config.ShootCooldown
	b.LastShot = s.ecs.Now() - b.Cooldown
	b.Shots = 0
	s.AimAt(x, (minY+maxY)/2)
}

// AimJoystick двигает прицел по направлению джойстика (-1..1 по осям).
// Слабое отклонение в мёртвой зоне игнорируется.
func (s *BowSystem) AimJoystick(dx, dy, deltaTime float64) {
	if utils.Length(dx, dy) <= config.JoystickDeadZone {
		return
	}
	b := s.ecs.Bow
	s.AimAt(b.CrosshairX+dx*config.CrosshairSpeed*deltaTime, b.CrosshairY+dy*config.CrosshairSpeed*deltaTime)
}

// AimAt ставит прицел в точку, ограниченную прямоугольником прицеливания.
func (s *BowSystem) AimAt(x, y float64) {
	b := s.ecs.Bow
	b.CrosshairX = utils.Clamp(x, b.MinX, b.MaxX)
	b.CrosshairY = utils.Clamp(y, b.MinY, b.MaxY)
}

// Ready reports whether the cooldown has elapsed.
func (s *BowSystem) Ready() bool {
	b := s.ecs.Bow
	return s.ecs.Now()-b.LastShot >= b.Cooldown
}

// CooldownProgress возвращает прогресс перезарядки 0..1.
func (s *BowSystem) CooldownProgress() float64 {
	b := s.ecs.Bow
	if b.Cooldown <= 0 {
		return 1
	}
	return utils.Clamp((s.ecs.Now()-b.LastShot)/b.Cooldown, 0, 1)
}

// Fire натягивает лук и, если перезарядка прошла, выпускает стрелу в прицел.
func (s *BowSystem) Fire() (types.EntityID, bool) {
	s.sound("bow_loading")
	if !s.Ready() {
		return 0, false
	}

	b := s.ecs.Bow
	dx, dy := b.AimDirection()
	damage := s.rng.Range(config.MinArrowDamage, config.MaxArrowDamage)
	id := s.arrows.Spawn(b.X+dx*config.ArrowLength, b.Y+dy*config.ArrowLength, dx, dy, damage)

	b.LastShot = s.ecs.Now()
	b.Shots++
	s.sound("arrow_shot")
	return id, true
}

func (s *BowSystem) sound(name string) {
	s.eventDispatcher.Dispatch(event.Event{Type: event.SoundRequested, Data: name})
}
