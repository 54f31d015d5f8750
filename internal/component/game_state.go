package component

// WavePhase — фаза спавнера волн
type WavePhase int

const (
	PhaseIdle WavePhase = iota
	PhaseSpawning
	PhaseWaitingForClear
	PhaseBetweenWaves
	PhaseComplete
)

func (p WavePhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSpawning:
		return "spawning"
	case PhaseWaitingForClear:
		return "waiting_for_clear"
	case PhaseBetweenWaves:
		return "between_waves"
	case PhaseComplete:
		return "complete"
	}
	return "unknown"
}

// Wave — состояние текущей волны
type Wave struct {
	Index        int
	Name         string
	Phase        WavePhase
	ZombieCount  int
	Spawned      int
	SpawnTimer   float64
	StartedAt    float64 // начало волны или паузы между волнами
	Cleared      int     // сколько волн зачищено с начала игры
	LastSpawnPos int
}
