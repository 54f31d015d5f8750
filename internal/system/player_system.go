// internal/system/player_system.go
package system

import (
	"log"
	"math"

	"horde-in-town/internal/config"
	"horde-in-town/internal/entity"
	"horde-in-town/internal/event"
)

// PlayerSystem ведёт сессию игрока: здоровье, очки, убийства, время выживания.
// Убийства лечат игрока каждые config.KillsPerHeal, урон доводит до конца игры.
type PlayerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *PlayerSystem {
	s := &PlayerSystem{ecs: ecs, eventDispatcher: eventDispatcher}
	s.ResetGame()
	eventDispatcher.Subscribe(event.ZombieKilled, s)
	eventDispatcher.Subscribe(event.PlayerDamaged, s)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.ZombieKilled:
		data, ok := e.Data.(event.ZombieKilledData)
		if !ok {
			return
		}
		s.AddScore(data.ScoreValue)
		s.OnZombieKilled()
	case event.PlayerDamaged:
		if amount, ok := e.Data.(float64); ok {
			s.TakeDamage(amount)
		}
	}
}

// Update копит время выживания, пока игра идёт.
func (s *PlayerSystem) Update(deltaTime float64) {
	p := s.ecs.Player
	if p.Started && !p.Paused && !p.Over {
		p.SurvivalTime += deltaTime
	}
}

// StartGame начинает забег.
func (s *PlayerSystem) StartGame() {
	p := s.ecs.Player
	p.Started = true
	p.Paused = false
	p.Over = false
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameStarted})
	s.notifyHealth()
	s.notifyScore()
}

// ResetGame возвращает сессию к начальному состоянию.
func (s *PlayerSystem) ResetGame() {
	p := s.ecs.Player
	p.MaxHealth = config.MaxPlayerHealth
	p.Health = p.MaxHealth
	p.Score = 0
	p.Kills = 0
	p.SurvivalTime = 0
	p.Started = false
	p.Paused = false
	p.Over = false
}

func (s *PlayerSystem) Pause() {
	p := s.ecs.Player
	if p.Paused {
		return
	}
	p.Paused = true
	s.eventDispatcher.Dispatch(event.Event{Type: event.GamePaused})
}

func (s *PlayerSystem) Resume() {
	p := s.ecs.Player
	if !p.Paused {
		return
	}
	p.Paused = false
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameResumed})
}

// AddScore начисляет очки.
func (s *PlayerSystem) AddScore(points int) {
	if s.ecs.Player.Over {
		return
	}
	s.ecs.Player.Score += points
	s.notifyScore()
}

// OnZombieKilled считает убийство; каждое KillsPerHeal-е лечит игрока.
func (s *PlayerSystem) OnZombieKilled() {
	p := s.ecs.Player
	if p.Over {
		return
	}
	p.Kills++
	if p.Kills%config.KillsPerHeal == 0 {
		s.Heal(config.HealAmount)
	}
}

// Heal лечит игрока, не выше максимума.
func (s *PlayerSystem) Heal(amount float64) {
	p := s.ecs.Player
	if p.Over || amount <= 0 {
		return
	}
	before := p.Health
	p.Health = math.Min(p.MaxHealth, p.Health+amount)
	log.Printf("[Player] Healed %.0f after %d kills (%.0f -> %.0f)", amount, p.Kills, before, p.Health)
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHealed, Data: p.Health - before})
	s.notifyHealth()
}

// TakeDamage снимает здоровье, не ниже нуля. Конец игры срабатывает один раз.
func (s *PlayerSystem) TakeDamage(amount float64) {
	p := s.ecs.Player
	if p.Over || amount <= 0 {
		return
	}
	p.Health = math.Max(0, p.Health-amount)
	s.notifyHealth()
	if p.Health <= 0 {
		s.gameOver()
	}
}

func (s *PlayerSystem) gameOver() {
	p := s.ecs.Player
	p.Over = true
	info := event.GameOverData{
		Score:        p.Score,
		SurvivalTime: p.SurvivalTime,
		Kills:        p.Kills,
		WavesCleared: s.ecs.Wave.Cleared,
	}
	log.Printf("[Player] Game over: score %d, %d kills, %d waves, %.1fs", info.Score, info.Kills, info.WavesCleared, info.SurvivalTime)
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: info})
}

func (s *PlayerSystem) notifyHealth() {
	s.eventDispatcher.Dispatch(event.Event{Type: event.HealthChanged, Data: s.ecs.Player.HealthFraction()})
}

func (s *PlayerSystem) notifyScore() {
	s.eventDispatcher.Dispatch(event.Event{Type: event.ScoreChanged, Data: s.ecs.Player.Score})
}
