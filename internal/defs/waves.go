package defs

// Wave описывает одну волну: сколько зомби, с каким интервалом и с какой
// задержкой перед первым появлением.
type Wave struct {
	Name        string  `yaml:"name"`
	ZombieCount int     `yaml:"zombie_count"`
	SpawnRate   float64 `yaml:"spawn_rate"` // seconds between spawns
	WaveDelay   float64 `yaml:"wave_delay"` // seconds before the first spawn
}

// SpawnerSettings holds the switches that control wave progression and selection.
type SpawnerSettings struct {
	TimeBetweenWaves     float64 `yaml:"time_between_waves"`
	LoopWaves            bool    `yaml:"loop_waves"`
	UseRandomZombieTypes bool    `yaml:"use_random_zombie_types"`
	UseRandomSpawnPoints bool    `yaml:"use_random_spawn_points"`
	AllowSameSpawnPoint  bool    `yaml:"allow_same_spawn_point"`
}

// DefaultSpawnerSettings returns the settings used when a file omits the section.
func DefaultSpawnerSettings() SpawnerSettings {
	return SpawnerSettings{
		TimeBetweenWaves:     5,
		LoopWaves:            false,
		UseRandomZombieTypes: true,
		UseRandomSpawnPoints: true,
		AllowSameSpawnPoint:  true,
	}
}
