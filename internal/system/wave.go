// internal/system/wave.go
package system

import (
	"log"

	"horde-in-town/internal/component"
	"horde-in-town/internal/defs"
	"horde-in-town/internal/entity"
	"horde-in-town/internal/event"
	"horde-in-town/internal/types"
	"horde-in-town/internal/utils"
)

// ZombieFactory создаёт и удаляет зомби по запросу спавнера.
type ZombieFactory interface {
	SpawnPoints() int
	SpawnZombie(arch defs.ZombieArchetype, spawnPoint, waveIndex int) (types.EntityID, bool)
	DestroyZombie(id types.EntityID)
}

// SpawnerSystem — машина состояний волн:
// спавн → ожидание зачистки → пауза между волнами → следующая волна.
// Состояние текущей волны лежит в ecs.Wave.
type SpawnerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	factory         ZombieFactory
	rng             *utils.PRNGService
	waves           []defs.Wave
	archetypes      []defs.ZombieArchetype
	settings        defs.SpawnerSettings

	alive       []types.EntityID // все живые зомби
	currentWave []types.EntityID // зомби текущей волны
}

func NewSpawnerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, factory ZombieFactory, rng *utils.PRNGService, d *defs.Definitions) *SpawnerSystem {
	s := &SpawnerSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		factory:         factory,
		rng:             rng,
		waves:           d.Waves,
		archetypes:      d.Archetypes,
		settings:        d.Spawner,
	}
	eventDispatcher.Subscribe(event.ZombieDestroyed, s)
	return s
}

// Start запускает волны с первой. Без волн — предупреждение и ничего больше.
func (s *SpawnerSystem) Start() {
	if len(s.waves) == 0 {
		log.Println("[Spawner] WARNING: no waves configured, spawning disabled")
		return
	}
	w := s.ecs.Wave
	w.Index = -1
	w.Cleared = 0
	w.LastSpawnPos = -1
	s.startNextWave()
}

// Stop останавливает спавн. Живые зомби остаются на поле.
func (s *SpawnerSystem) Stop() {
	s.ecs.Wave.Phase = component.PhaseIdle
}

// Update продвигает машину состояний на deltaTime.
func (s *SpawnerSystem) Update(deltaTime float64) {
	w := s.ecs.Wave
	now := s.ecs.Now()

	switch w.Phase {
	case component.PhaseBetweenWaves:
		if now-w.StartedAt >= s.settings.TimeBetweenWaves {
			s.startNextWave()
		}

	case component.PhaseWaitingForClear:
		if len(s.currentWave) == 0 {
			w.Cleared++
			w.Phase = component.PhaseBetweenWaves
			w.StartedAt = now
			log.Printf("[Spawner] Wave %d (%s) cleared, %d total", w.Index+1, w.Name, w.Cleared)
			s.dispatchWave(event.WaveCleared)
		}

	case component.PhaseSpawning:
		wave := s.waves[w.Index]
		if now-w.StartedAt < wave.WaveDelay {
			return
		}
		if w.Spawned >= w.ZombieCount {
			w.Phase = component.PhaseWaitingForClear
			s.dispatchWave(event.WaveSpawnComplete)
			return
		}
		w.SpawnTimer += deltaTime
		if w.SpawnTimer >= wave.SpawnRate {
			s.spawnOne()
			w.SpawnTimer = 0
			// Неудачная попытка тоже засчитывается, иначе волна не закончится
			w.Spawned++
		}
	}
}

func (s *SpawnerSystem) startNextWave() {
	w := s.ecs.Wave
	w.Index++
	if w.Index >= len(s.waves) {
		if !s.settings.LoopWaves {
			w.Index = len(s.waves) - 1
			w.Phase = component.PhaseComplete
			log.Printf("[Spawner] All %d waves complete", len(s.waves))
			s.dispatchWave(event.AllWavesComplete)
			return
		}
		w.Index = 0
	}

	wave := s.waves[w.Index]
	w.Name = wave.Name
	w.ZombieCount = wave.ZombieCount
	w.Spawned = 0
	w.SpawnTimer = 0
	w.StartedAt = s.ecs.Now()
	w.Phase = component.PhaseSpawning
	s.currentWave = s.currentWave[:0]

	log.Printf("[Spawner] Wave %d (%s): %d zombies every %.2fs after %.2fs", w.Index+1, wave.Name, wave.ZombieCount, wave.SpawnRate, wave.WaveDelay)
	s.dispatchWave(event.WaveStarted)
}

func (s *SpawnerSystem) spawnOne() {
	w := s.ecs.Wave

	archIdx := s.rng.ChooseIndex(len(s.archetypes), s.settings.UseRandomZombieTypes)
	if archIdx < 0 {
		log.Println("[Spawner] WARNING: no zombie archetypes configured")
		return
	}
	spawnIdx := s.rng.ChooseSpawnIndex(s.factory.SpawnPoints(), w.LastSpawnPos, s.settings.UseRandomSpawnPoints, s.settings.AllowSameSpawnPoint)
	if spawnIdx < 0 {
		log.Println("[Spawner] WARNING: no spawn points configured")
		return
	}
	w.LastSpawnPos = spawnIdx

	id, ok := s.factory.SpawnZombie(s.archetypes[archIdx], spawnIdx, w.Index)
	if !ok {
		return
	}
	s.alive = append(s.alive, id)
	s.currentWave = append(s.currentWave, id)
}

// DestroyAll удаляет всех зомби, которых создал спавнер.
func (s *SpawnerSystem) DestroyAll() {
	ids := append([]types.EntityID(nil), s.alive...)
	for _, id := range ids {
		s.factory.DestroyZombie(id)
	}
	s.alive = s.alive[:0]
	s.currentWave = s.currentWave[:0]
}

// OnEvent убирает удалённого зомби из обоих списков.
func (s *SpawnerSystem) OnEvent(e event.Event) {
	if e.Type != event.ZombieDestroyed {
		return
	}
	id, ok := e.Data.(types.EntityID)
	if !ok {
		return
	}
	s.alive = removeID(s.alive, id)
	s.currentWave = removeID(s.currentWave, id)
}

func (s *SpawnerSystem) dispatchWave(t event.EventType) {
	w := s.ecs.Wave
	s.eventDispatcher.Dispatch(event.Event{Type: t, Data: event.WaveData{Index: w.Index, Name: w.Name, Cleared: w.Cleared}})
}

// WavesCleared — сколько волн зачищено с последнего Start.
func (s *SpawnerSystem) WavesCleared() int { return s.ecs.Wave.Cleared }

func (s *SpawnerSystem) Phase() component.WavePhase { return s.ecs.Wave.Phase }

// CurrentWave возвращает индекс и описание текущей волны. ok == false до первого Start.
func (s *SpawnerSystem) CurrentWave() (int, defs.Wave, bool) {
	idx := s.ecs.Wave.Index
	if idx < 0 || idx >= len(s.waves) {
		return idx, defs.Wave{}, false
	}
	return idx, s.waves[idx], true
}

// AliveCount и CurrentWaveCount — размеры списков отслеживания.
func (s *SpawnerSystem) AliveCount() int       { return len(s.alive) }
func (s *SpawnerSystem) CurrentWaveCount() int { return len(s.currentWave) }

// WaveCount — число настроенных волн.
func (s *SpawnerSystem) WaveCount() int { return len(s.waves) }
