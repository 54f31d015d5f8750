// internal/defs/types.go
package defs

import (
	"errors"
	"fmt"
)

// Definitions — всё, что загружается из файла волн.
type Definitions struct {
	Spawner    SpawnerSettings   `yaml:"spawner"`
	Archetypes []ZombieArchetype `yaml:"archetypes"`
	Waves      []Wave            `yaml:"waves"`
}

// ErrInvalidDefinition is wrapped by every validation failure.
var ErrInvalidDefinition = errors.New("invalid definition")

// Archetype returns the archetype with the given id.
func (d *Definitions) Archetype(id string) (ZombieArchetype, bool) {
	for _, a := range d.Archetypes {
		if a.ID == id {
			return a, true
		}
	}
	return ZombieArchetype{}, false
}

// Validate checks ranges. Empty wave or archetype lists are allowed: the
// spawner treats them as a logged no-op.
func (d *Definitions) Validate() error {
	if d.Spawner.TimeBetweenWaves < 0 {
		return fmt.Errorf("%w: spawner time_between_waves must be >= 0, got %.2f", ErrInvalidDefinition, d.Spawner.TimeBetweenWaves)
	}

	seen := make(map[string]bool, len(d.Archetypes))
	for i, a := range d.Archetypes {
		if a.ID == "" {
			return fmt.Errorf("%w: archetype #%d has no id", ErrInvalidDefinition, i)
		}
		if seen[a.ID] {
			return fmt.Errorf("%w: archetype %s declared twice", ErrInvalidDefinition, a.ID)
		}
		seen[a.ID] = true
		if a.MinHealth <= 0 || a.MaxHealth < a.MinHealth {
			return fmt.Errorf("%w: archetype %s health range [%.1f, %.1f) is invalid", ErrInvalidDefinition, a.ID, a.MinHealth, a.MaxHealth)
		}
		if a.Speed < 0 {
			return fmt.Errorf("%w: archetype %s speed must be >= 0", ErrInvalidDefinition, a.ID)
		}
		if a.DamageInterval <= 0 {
			return fmt.Errorf("%w: archetype %s damage_interval must be > 0", ErrInvalidDefinition, a.ID)
		}
		if a.DamagePerTick < 0 || a.HitReactionDuration < 0 || a.DeathDelay < 0 {
			return fmt.Errorf("%w: archetype %s has negative timings or damage", ErrInvalidDefinition, a.ID)
		}
	}

	for i, w := range d.Waves {
		if w.ZombieCount < 0 {
			return fmt.Errorf("%w: wave #%d (%s) zombie_count must be >= 0", ErrInvalidDefinition, i, w.Name)
		}
		if w.SpawnRate < 0 || w.WaveDelay < 0 {
			return fmt.Errorf("%w: wave #%d (%s) spawn_rate and wave_delay must be >= 0", ErrInvalidDefinition, i, w.Name)
		}
	}
	return nil
}
