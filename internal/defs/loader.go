// internal/defs/loader.go
package defs

import (
	_ "embed"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"horde-in-town/internal/config"
)

//go:embed data/horde.yaml
var defaultHorde []byte

// Parse decodes a horde file. Missing archetype fields are filled from the
// config defaults so a file may describe only what it changes.
func Parse(data []byte) (*Definitions, error) {
	d := &Definitions{Spawner: DefaultSpawnerSettings()}
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("failed to parse horde definitions: %w", err)
	}
	for i := range d.Archetypes {
		fillArchetypeDefaults(&d.Archetypes[i])
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Load reads the horde file at path.
func Load(path string) (*Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read horde definitions file: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("[Defs] Loaded %d waves and %d archetypes from %s", len(d.Waves), len(d.Archetypes), path)
	return d, nil
}

// LoadDefault returns the definitions embedded in the binary.
func LoadDefault() *Definitions {
	d, err := Parse(defaultHorde)
	if err != nil {
		// Встроенный файл проверяется тестами, сюда попасть нельзя
		panic(fmt.Sprintf("embedded horde definitions are broken: %v", err))
	}
	return d
}

// LoadOrDefault loads path when it is set and falls back to the embedded
// definitions on any error.
func LoadOrDefault(path string) *Definitions {
	if path == "" {
		return LoadDefault()
	}
	d, err := Load(path)
	if err != nil {
		log.Printf("[Defs] WARNING: %v, using embedded definitions", err)
		return LoadDefault()
	}
	return d
}

func fillArchetypeDefaults(a *ZombieArchetype) {
	if a.Name == "" {
		a.Name = a.ID
	}
	if a.MinHealth == 0 && a.MaxHealth == 0 {
		a.MinHealth = config.ZombieMinHealth
		a.MaxHealth = config.ZombieMaxHealth
	}
	if a.Speed == 0 {
		a.Speed = config.ZombieSpeed
	}
	if a.ScoreValue == 0 {
		a.ScoreValue = config.ZombieScoreValue
	}
	if a.DamagePerTick == 0 {
		a.DamagePerTick = config.ZombieDamagePerTick
	}
	if a.DamageInterval == 0 {
		a.DamageInterval = config.ZombieDamageEvery
	}
	if a.HitReactionDuration == 0 {
		a.HitReactionDuration = config.ZombieHitReaction
	}
	if a.DeathDelay == 0 {
		a.DeathDelay = config.ZombieDeathDelay
	}
	if a.Radius == 0 {
		a.Radius = config.ZombieRadius
	}
	if a.Visuals.StrokeWidth == 0 {
		a.Visuals.StrokeWidth = 1.5
	}
}
