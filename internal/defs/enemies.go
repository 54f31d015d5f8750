// internal/defs/enemies.go
package defs

// ZombieArchetype holds all the static data for a specific type of zombie.
type ZombieArchetype struct {
	ID                  string  `yaml:"id"`
	Name                string  `yaml:"name"`
	MinHealth           float64 `yaml:"min_health"`
	MaxHealth           float64 `yaml:"max_health"`
	Speed               float64 `yaml:"speed"` // pixels per second
	ScoreValue          int     `yaml:"score_value"`
	DamagePerTick       float64 `yaml:"damage_per_tick"`
	DamageInterval      float64 `yaml:"damage_interval"`
	HitReactionDuration float64 `yaml:"hit_reaction_duration"`
	DeathDelay          float64 `yaml:"death_delay"`
	Radius              float64 `yaml:"radius"`
	Visuals             Visuals `yaml:"visuals"`
}

// Visuals describes how an archetype is drawn.
type Visuals struct {
	Color       [3]uint8 `yaml:"color"`
	StrokeWidth float32  `yaml:"stroke_width"`
}
