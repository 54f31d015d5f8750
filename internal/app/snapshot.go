package app

import (
	"sort"

	"horde-in-town/internal/types"
)

// ZombieView — зомби в снимке для наблюдателей.
type ZombieView struct {
	ID        uint64  `json:"id"`
	Archetype string  `json:"archetype"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Health    float64 `json:"health"`
	MaxHealth float64 `json:"max_health"`
	State     string  `json:"state"`
}

// ArrowView — стрела в снимке.
type ArrowView struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle"`
	Stuck bool    `json:"stuck"`
}

// Snapshot is a self-contained copy of the simulation state.
type Snapshot struct {
	Tick         uint64       `json:"tick"`
	Time         float64      `json:"time"`
	Wave         int          `json:"wave"`
	WaveName     string       `json:"wave_name"`
	Phase        string       `json:"phase"`
	WavesCleared int          `json:"waves_cleared"`
	WaveCount    int          `json:"wave_count"`
	Alive        int          `json:"alive"`
	Health       float64      `json:"health"`
	MaxHealth    float64      `json:"max_health"`
	Score        int          `json:"score"`
	Kills        int          `json:"kills"`
	SurvivalTime float64      `json:"survival_time"`
	GameOver     bool         `json:"game_over"`
	Zombies      []ZombieView `json:"zombies"`
	Arrows       []ArrowView  `json:"arrows"`
}

// Snapshot копирует текущее состояние; результат не ссылается на ECS.
func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	p := ecs.Player
	w := ecs.Wave
	snap := Snapshot{
		Tick:         g.Tick,
		Time:         ecs.Now(),
		Wave:         w.Index + 1,
		WaveName:     w.Name,
		Phase:        w.Phase.String(),
		WavesCleared: w.Cleared,
		WaveCount:    g.SpawnerSystem.WaveCount(),
		Alive:        g.ZombieSystem.Alive(),
		Health:       p.Health,
		MaxHealth:    p.MaxHealth,
		Score:        p.Score,
		Kills:        p.Kills,
		SurvivalTime: p.SurvivalTime,
		GameOver:     p.Over,
		Zombies:      make([]ZombieView, 0, len(ecs.Zombies)),
		Arrows:       make([]ArrowView, 0, len(ecs.Arrows)),
	}

	for _, id := range sortedKeys(ecs.Zombies) {
		z := ecs.Zombies[id]
		view := ZombieView{ID: uint64(id), Archetype: z.ArchetypeID, State: z.State().String()}
		if pos, ok := ecs.Positions[id]; ok {
			view.X, view.Y = pos.X, pos.Y
		}
		if h, ok := ecs.Healths[id]; ok {
			view.Health, view.MaxHealth = h.Value, h.Max
		}
		snap.Zombies = append(snap.Zombies, view)
	}
	for _, id := range sortedKeys(ecs.Arrows) {
		a := ecs.Arrows[id]
		view := ArrowView{Angle: a.Angle, Stuck: a.HasHit}
		if pos, ok := ecs.Positions[id]; ok {
			view.X, view.Y = pos.X, pos.Y
		}
		snap.Arrows = append(snap.Arrows, view)
	}
	return snap
}

func sortedKeys[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
