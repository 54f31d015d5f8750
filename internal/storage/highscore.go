package storage

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// HighScore — лучшие результаты. Каждое поле обновляется независимо.
type HighScore struct {
	BestScore        int     `yaml:"bestScore"`
	BestSurvivalTime float64 `yaml:"bestSurvivalTime"`
	BestWaves        int     `yaml:"bestWaves"`
	BestKills        int     `yaml:"bestKills"`
	GamesPlayed      int     `yaml:"gamesPlayed"`
}

// RunResult — итоги одного забега.
type RunResult struct {
	Score        int
	SurvivalTime float64
	WavesCleared int
	Kills        int
}

const (
	scoresObject   = "scores"
	scoresProperty = "best"
)

// HighScoreBoard хранит рекорды. gdataManager может быть nil.
type HighScoreBoard struct {
	gdataManager *gdata.Manager
	best         HighScore
}

func NewHighScoreBoard(gdataManager *gdata.Manager) *HighScoreBoard {
	b := &HighScoreBoard{gdataManager: gdataManager}
	if _, err := loadYAML(gdataManager, scoresObject, scoresProperty, &b.best); err != nil {
		log.Printf("[HighScore] Warning: %v (starting from zero)", err)
		b.best = HighScore{}
	}
	return b
}

func (b *HighScoreBoard) Best() HighScore { return b.best }

// Record учитывает забег и сохраняет рекорды. Возвращает true, если побит рекорд очков.
func (b *HighScoreBoard) Record(r RunResult) bool {
	newBest := r.Score > b.best.BestScore
	if newBest {
		b.best.BestScore = r.Score
	}
	if r.SurvivalTime > b.best.BestSurvivalTime {
		b.best.BestSurvivalTime = r.SurvivalTime
	}
	if r.WavesCleared > b.best.BestWaves {
		b.best.BestWaves = r.WavesCleared
	}
	if r.Kills > b.best.BestKills {
		b.best.BestKills = r.Kills
	}
	b.best.GamesPlayed++

	if err := saveYAML(b.gdataManager, scoresObject, scoresProperty, b.best); err != nil {
		log.Printf("[HighScore] Warning: %v", err)
	}
	return newBest
}
