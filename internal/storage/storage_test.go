package storage

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func openTemp(t *testing.T) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: "horde_test"})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

func TestSettingsRoundTrip(t *testing.T) {
	m := openTemp(t)
	sm := NewSettingsManager(m)
	if sm.Settings().MusicVolume != 0.6 {
		t.Fatalf("expected default music volume, got %v", sm.Settings().MusicVolume)
	}

	sm.SetMusicVolume(0.25)
	sm.SetSoundEnabled(false)
	sm.SetTutorialSeen(true)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded := NewSettingsManager(m)
	s := reloaded.Settings()
	if s.MusicVolume != 0.25 || s.SoundEnabled || !s.TutorialSeen {
		t.Errorf("settings not persisted: %+v", *s)
	}
}

func TestSettingsClampVolume(t *testing.T) {
	sm := NewSettingsManager(nil)
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0.5, 0.5},
		{3, 1},
	}
	for _, tt := range tests {
		sm.SetSoundVolume(tt.in)
		if got := sm.Settings().SoundVolume; got != tt.want {
			t.Errorf("SetSoundVolume(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNilManagerIsInMemory(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() without storage must not fail: %v", err)
	}
	if !sm.Settings().Fullscreen {
		t.Error("in-memory setting lost")
	}

	b := NewHighScoreBoard(nil)
	if !b.Record(RunResult{Score: 10}) {
		t.Error("first score must be a record")
	}
}

func TestCorruptSettingsFallBack(t *testing.T) {
	m := openTemp(t)
	if err := m.SaveObjectProp(settingsObject, settingsProperty, []byte("musicVolume: [")); err != nil {
		t.Fatalf("SaveObjectProp failed: %v", err)
	}
	sm := NewSettingsManager(m)
	if sm.Settings().MusicVolume != DefaultSettings().MusicVolume {
		t.Errorf("corrupt settings did not fall back to defaults: %+v", *sm.Settings())
	}
}

func TestHighScoreRecord(t *testing.T) {
	m := openTemp(t)
	b := NewHighScoreBoard(m)

	if !b.Record(RunResult{Score: 120, SurvivalTime: 60, WavesCleared: 2, Kills: 12}) {
		t.Error("first run must set a record")
	}
	if b.Record(RunResult{Score: 80, SurvivalTime: 90, WavesCleared: 1, Kills: 8}) {
		t.Error("lower score reported as a record")
	}

	reloaded := NewHighScoreBoard(m).Best()
	want := HighScore{BestScore: 120, BestSurvivalTime: 90, BestWaves: 2, BestKills: 12, GamesPlayed: 2}
	if reloaded != want {
		t.Errorf("best = %+v, want %+v", reloaded, want)
	}
}
