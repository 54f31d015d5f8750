// Package audio plays the game's synthesised sound effects and music.
package audio

import (
	"horde-in-town/internal/event"
	"horde-in-town/internal/storage"
)

const (
	SoundButtonPress = "button_press"
	SoundBowLoading  = "bow_loading"
	SoundArrowShot   = "arrow_shot"
	SoundZombieWalk  = "zombie_walk"
	SoundZombieDying = "zombie_dying"

	MusicMainMenu = "mainmenu"
	MusicDefeated = "defeated"
)

// Manager — звуковая подсистема. Подписывается на SoundRequested и GameOver.
type Manager interface {
	event.Listener
	PlaySFX(name string)
	PlayMusic(name string)
	StopMusic()
	// Apply берёт громкость и флаги из настроек.
	Apply(settings *storage.Settings)
}

// Events — события, на которые реагирует Manager.
var Events = []event.EventType{event.SoundRequested, event.GameOver}

// Subscribe подписывает менеджер на звуковые события игры.
func Subscribe(m Manager, d *event.Dispatcher) {
	for _, t := range Events {
		d.Subscribe(t, m)
	}
}

// handleEvent общая реакция на события для всех реализаций.
func handleEvent(m Manager, e event.Event) {
	switch e.Type {
	case event.SoundRequested:
		if name, ok := e.Data.(string); ok {
			m.PlaySFX(name)
		}
	case event.GameOver:
		m.PlayMusic(MusicDefeated)
	}
}
