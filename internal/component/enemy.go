package component

// ZombieState — наблюдаемое состояние агента
type ZombieState int

const (
	ZombieApproaching ZombieState = iota
	ZombieAtBarrier
	ZombieHitReaction
	ZombieDead
)

func (s ZombieState) String() string {
	switch s {
	case ZombieApproaching:
		return "approaching"
	case ZombieAtBarrier:
		return "barrier"
	case ZombieHitReaction:
		return "hit"
	case ZombieDead:
		return "dead"
	}
	return "unknown"
}

// Zombie представляет зомби-агента. Все отметки времени берутся из игровых часов ECS.
type Zombie struct {
	ArchetypeID string
	WaveIndex   int
	SpawnPoint  int

	ScoreValue          int
	DamagePerTick       float64
	DamageInterval      float64
	HitReactionDuration float64
	DeathDelay          float64

	Dead              bool
	DiedAt            float64
	AtBarrier         bool
	HitReacting       bool
	HitReactionEnd    float64
	LastBarrierDamage float64
}

// State сводит флаги агента к одному состоянию
func (z *Zombie) State() ZombieState {
	switch {
	case z.Dead:
		return ZombieDead
	case z.HitReacting:
		return ZombieHitReaction
	case z.AtBarrier:
		return ZombieAtBarrier
	}
	return ZombieApproaching
}
