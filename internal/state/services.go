package state

import (
	"time"

	"horde-in-town/internal/audio"
	"horde-in-town/internal/defs"
	"horde-in-town/internal/storage"
	"horde-in-town/internal/ui"
)

// timeNow подменяется в тестах.
var timeNow = time.Now

// Services — общие зависимости экранов.
type Services struct {
	Fonts    *ui.Fonts
	Audio    audio.Manager
	Settings *storage.SettingsManager
	Scores   *storage.HighScoreBoard
	Defs     *defs.Definitions
	Seed     int64 // 0 — новый сид для каждого забега

	// OnFullscreen вызывается при смене режима окна; nil в тестах.
	OnFullscreen func(on bool)

	QuitRequested bool
}

// ApplySettings передаёт текущие настройки звуку и окну.
func (s *Services) ApplySettings() {
	settings := s.Settings.Settings()
	s.Audio.Apply(settings)
	if s.OnFullscreen != nil {
		s.OnFullscreen(settings.Fullscreen)
	}
}

// Click проигрывает звук нажатия кнопки.
func (s *Services) Click() {
	s.Audio.PlaySFX(audio.SoundButtonPress)
}
