// internal/event/types.go
package event

import "horde-in-town/internal/types"

const (
	ZombieSpawned     EventType = "ZombieSpawned"   // Data: ZombieSpawnedData
	ZombieKilled      EventType = "ZombieKilled"    // Data: ZombieKilledData
	ZombieDestroyed   EventType = "ZombieDestroyed" // Data: types.EntityID, зомби удалён из мира
	PlayerDamaged     EventType = "PlayerDamaged"   // Data: float64 урон
	HealthChanged     EventType = "HealthChanged"   // Data: float64 доля здоровья 0..1
	ScoreChanged      EventType = "ScoreChanged"    // Data: int
	PlayerHealed      EventType = "PlayerHealed"    // Data: float64 сколько вылечено
	GameStarted       EventType = "GameStarted"
	GamePaused        EventType = "GamePaused"
	GameResumed       EventType = "GameResumed"
	GameOver          EventType = "GameOver" // Data: GameOverData
	WaveStarted       EventType = "WaveStarted"
	WaveSpawnComplete EventType = "WaveSpawnComplete"
	WaveCleared       EventType = "WaveCleared"
	AllWavesComplete  EventType = "AllWavesComplete"
	ArrowFired        EventType = "ArrowFired"     // Data: types.EntityID
	ArrowHit          EventType = "ArrowHit"       // Data: ArrowHitData
	SoundRequested    EventType = "SoundRequested" // Data: string, имя звука
)

type ZombieSpawnedData struct {
	ID         types.EntityID
	Archetype  string
	WaveIndex  int
	SpawnPoint int
}

type ZombieKilledData struct {
	ID         types.EntityID
	ScoreValue int
	WaveIndex  int
	X, Y       float64
}

type ArrowHitData struct {
	Arrow  types.EntityID
	Zombie types.EntityID
	Damage float64
	X, Y   float64
}

// WaveData сопровождает события волн.
type WaveData struct {
	Index   int
	Name    string
	Cleared int
}

// GameOverData — итоги забега.
type GameOverData struct {
	Score        int
	SurvivalTime float64
	Kills        int
	WavesCleared int
}
