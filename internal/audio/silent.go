package audio

import (
	"horde-in-town/internal/event"
	"horde-in-town/internal/storage"
)

// Silent ничего не воспроизводит, только запоминает запросы.
// Используется в headless-симуляции и тестах.
type Silent struct {
	Played []string
	Music  string
	muted  bool
}

func NewSilent() *Silent { return &Silent{} }

func (s *Silent) OnEvent(e event.Event) { handleEvent(s, e) }

func (s *Silent) PlaySFX(name string) {
	if s.muted {
		return
	}
	s.Played = append(s.Played, name)
}

func (s *Silent) PlayMusic(name string) { s.Music = name }
func (s *Silent) StopMusic()            { s.Music = "" }

func (s *Silent) Apply(settings *storage.Settings) {
	s.muted = !settings.SoundEnabled || settings.SoundVolume <= 0
}
