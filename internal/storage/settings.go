package storage

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// Settings — настройки игрока.
type Settings struct {
	MusicVolume  float64 `yaml:"musicVolume"` // 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"` // 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"`
	SoundEnabled bool    `yaml:"soundEnabled"`
	Fullscreen   bool    `yaml:"fullscreen"`
	TutorialSeen bool    `yaml:"tutorialSeen"`
}

// DefaultSettings возвращает настройки по умолчанию
func DefaultSettings() *Settings {
	return &Settings{
		MusicVolume:  0.6,
		SoundVolume:  0.8,
		MusicEnabled: true,
		SoundEnabled: true,
	}
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsManager загружает и сохраняет настройки. gdataManager может быть nil.
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *Settings
}

func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{gdataManager: gdataManager, settings: DefaultSettings()}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}
	return sm
}

// Load перечитывает настройки; при любой ошибке остаются значения по умолчанию.
func (sm *SettingsManager) Load() error {
	loaded := DefaultSettings()
	found, err := loadYAML(sm.gdataManager, settingsObject, settingsProperty, loaded)
	if err != nil || !found {
		sm.settings = DefaultSettings()
		return err
	}
	loaded.MusicVolume = clampVolume(loaded.MusicVolume)
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)
	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded")
	return nil
}

// Save пишет настройки в хранилище. Без хранилища ничего не делает.
func (sm *SettingsManager) Save() error {
	return saveYAML(sm.gdataManager, settingsObject, settingsProperty, sm.settings)
}

// SaveOrLog сохраняет и только логирует ошибку.
func (sm *SettingsManager) SaveOrLog() {
	if err := sm.Save(); err != nil {
		log.Printf("[SettingsManager] Warning: %v", err)
	}
}

func (sm *SettingsManager) Settings() *Settings { return sm.settings }

func (sm *SettingsManager) SetMusicVolume(v float64) { sm.settings.MusicVolume = clampVolume(v) }
func (sm *SettingsManager) SetSoundVolume(v float64) { sm.settings.SoundVolume = clampVolume(v) }
func (sm *SettingsManager) SetMusicEnabled(on bool)  { sm.settings.MusicEnabled = on }
func (sm *SettingsManager) SetSoundEnabled(on bool)  { sm.settings.SoundEnabled = on }
func (sm *SettingsManager) SetFullscreen(on bool)    { sm.settings.Fullscreen = on }
func (sm *SettingsManager) SetTutorialSeen(on bool)  { sm.settings.TutorialSeen = on }

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
