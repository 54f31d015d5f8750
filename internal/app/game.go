// internal/app/game.go
package app

import (
	"log"

	"horde-in-town/internal/config"
	"horde-in-town/internal/defs"
	"horde-in-town/internal/entity"
	"horde-in-town/internal/event"
	"horde-in-town/internal/interfaces"
	"horde-in-town/internal/system"
	"horde-in-town/internal/utils"
	"horde-in-town/pkg/hexmap"
)

// Game holds the simulation: ECS, systems, arena and the commands the
// screens and the headless runner issue.
type Game struct {
	Arena              *hexmap.Arena
	Defs               *defs.Definitions
	ECS                *entity.ECS
	World              *system.CollisionWorld
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	SpawnerSystem      *system.SpawnerSystem
	ZombieSystem       *system.ZombieSystem
	MovementSystem     *system.MovementSystem
	BarrierSystem      *system.BarrierSystem
	ArrowSystem        *system.ArrowSystem
	BowSystem          *system.BowSystem
	PlayerSystem       *system.PlayerSystem
	VisualEffectSystem *system.VisualEffectSystem

	Tick      uint64
	attached  []attachment        // внешние подписчики, снимаются в ReturnToMenu
	LastOver  *event.GameOverData // итоги последнего забега
	WaveTitle string              // имя волны для HUD, пусто между волнами
}

// NewGame initializes a new game instance. A zero seed picks one from the clock.
func NewGame(d *defs.Definitions, seed int64) *Game {
	if d == nil {
		panic("definitions cannot be nil")
	}

	rng := utils.NewPRNGService(seed)
	arena := hexmap.NewArena(ArenaConfig(), rng)
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	world := system.NewCollisionWorld(arena)

	g := &Game{
		Arena:           arena,
		Defs:            d,
		ECS:             ecs,
		World:           world,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
	}
	g.ZombieSystem = system.NewZombieSystem(ecs, eventDispatcher, arena, world, rng)
	g.SpawnerSystem = system.NewSpawnerSystem(ecs, eventDispatcher, g.ZombieSystem, rng, d)
	g.MovementSystem = system.NewMovementSystem(ecs, arena, world)
	g.BarrierSystem = system.NewBarrierSystem(ecs, world, g.ZombieSystem)
	g.ArrowSystem = system.NewArrowSystem(ecs, eventDispatcher, world, g.ZombieSystem)
	g.BowSystem = system.NewBowSystem(ecs, eventDispatcher, g.ArrowSystem, rng)
	g.PlayerSystem = system.NewPlayerSystem(ecs, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.GameOver, listener)
	eventDispatcher.Subscribe(event.WaveStarted, listener)
	eventDispatcher.Subscribe(event.WaveCleared, listener)
	eventDispatcher.Subscribe(event.AllWavesComplete, listener)

	g.resetBow()
	log.Printf("[Game] Arena %dx%d, %d spawn points, seed %d", arena.Cols, arena.Rows, len(arena.SpawnHexes), rng.Seed())
	return g
}

// ArenaConfig собирает параметры арены из констант.
func ArenaConfig() hexmap.ArenaConfig {
	return hexmap.ArenaConfig{
		Cols:         config.ArenaCols,
		Rows:         config.ArenaRows,
		HexSize:      config.HexSize,
		OriginX:      config.ArenaOriginX,
		OriginY:      config.ArenaOriginY,
		BarrierRow:   config.BarrierRow,
		SpawnColStep: config.SpawnColStep,
		RubbleCount:  config.RubbleCount,
	}
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.GameOver:
		if info, ok := e.Data.(event.GameOverData); ok {
			l.game.LastOver = &info
		}
		l.game.SpawnerSystem.Stop()
	case event.WaveStarted:
		if data, ok := e.Data.(event.WaveData); ok {
			l.game.WaveTitle = data.Name
		}
	case event.WaveCleared, event.AllWavesComplete:
		l.game.WaveTitle = ""
	}
}

// Update advances the simulation. Nothing moves before StartGame, while
// paused or after game over.
func (g *Game) Update(deltaTime float64) {
	if !g.Running() {
		return
	}
	g.ECS.Advance(deltaTime)
	g.PlayerSystem.Update(deltaTime)
	g.SpawnerSystem.Update(deltaTime)
	g.ZombieSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.BarrierSystem.Update(deltaTime)
	g.ArrowSystem.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)
	g.Tick++
}

// Running reports whether the simulation advances on Update.
func (g *Game) Running() bool {
	p := g.ECS.Player
	return p.Started && !p.Paused && !p.Over
}

// StartGame начинает забег: лук готов, волны пошли.
func (g *Game) StartGame() {
	g.LastOver = nil
	g.resetBow()
	g.PlayerSystem.StartGame()
	g.SpawnerSystem.Start()
}

// Restart останавливает волны, убирает всех зомби и стрелы и начинает заново.
func (g *Game) Restart() {
	g.clearField()
	g.PlayerSystem.ResetGame()
	g.StartGame()
}

// ReturnToMenu завершает забег без перезапуска и отключает внешних подписчиков.
func (g *Game) ReturnToMenu() {
	g.clearField()
	g.PlayerSystem.ResetGame()
	for _, a := range g.attached {
		g.EventDispatcher.Unsubscribe(a.eventType, a.listener)
	}
	g.attached = nil
}

type attachment struct {
	eventType event.EventType
	listener  event.Listener
}

// Listen subscribes a listener from outside the simulation (audio, HUD).
// Such listeners stay until ReturnToMenu.
func (g *Game) Listen(l event.Listener, eventTypes ...event.EventType) {
	for _, t := range eventTypes {
		g.EventDispatcher.Subscribe(t, l)
		g.attached = append(g.attached, attachment{eventType: t, listener: l})
	}
}

func (g *Game) clearField() {
	g.SpawnerSystem.Stop()
	g.SpawnerSystem.DestroyAll()
	g.ArrowSystem.Clear()
	g.VisualEffectSystem.Clear()
	g.World.Clear()
	g.WaveTitle = ""
}

func (g *Game) Pause()  { g.PlayerSystem.Pause() }
func (g *Game) Resume() { g.PlayerSystem.Resume() }

// AimJoystick двигает прицел по нормированному направлению джойстика.
func (g *Game) AimJoystick(dx, dy, deltaTime float64) {
	if !g.Running() {
		return
	}
	g.BowSystem.AimJoystick(dx, dy, deltaTime)
}

// AimAt ставит прицел в экранную точку.
func (g *Game) AimAt(x, y float64) {
	if !g.Running() {
		return
	}
	g.BowSystem.AimAt(x, y)
}

// Fire стреляет, если игра идёт и лук перезаряжен.
func (g *Game) Fire() bool {
	if !g.Running() {
		return false
	}
	_, ok := g.BowSystem.Fire()
	return ok
}

func (g *Game) CooldownProgress() float64 { return g.BowSystem.CooldownProgress() }
func (g *Game) HealthFraction() float64   { return g.ECS.Player.HealthFraction() }
func (g *Game) WavesCleared() int         { return g.SpawnerSystem.WavesCleared() }
func (g *Game) IsOver() bool              { return g.ECS.Player.Over }
func (g *Game) IsPaused() bool            { return g.ECS.Player.Paused }

func (g *Game) resetBow() {
	// Прицел ходит по экрану над баррикадой
	x, y := g.Arena.Center(g.Arena.PlayerHex)
	barrierY, _, _ := g.Arena.BarrierLine()
	g.BowSystem.Reset(x, y,
		config.CrosshairMarginX, config.CrosshairMarginY,
		config.ScreenWidth-config.CrosshairMarginX, barrierY)
}

var _ interfaces.Session = (*Game)(nil)
