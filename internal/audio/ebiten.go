package audio

import (
	"bytes"
	"log"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"horde-in-town/internal/event"
	"horde-in-town/internal/storage"
	"horde-in-town/internal/utils"
)

// EbitenManager воспроизводит клипы через ebiten/v2/audio.
type EbitenManager struct {
	context *ebaudio.Context
	bank    *Bank
	rng     *utils.PRNGService

	music    *ebaudio.Player
	musicKey string

	musicVolume float64
	sfxVolume   float64
	musicOn     bool
	sfxOn       bool
}

// NewEbitenManager создаёт менеджер. audio.Context допускается только один на процесс.
func NewEbitenManager(ctx *ebaudio.Context, bank *Bank, rng *utils.PRNGService) *EbitenManager {
	defaults := storage.DefaultSettings()
	m := &EbitenManager{context: ctx, bank: bank, rng: rng}
	m.Apply(defaults)
	return m
}

func (m *EbitenManager) OnEvent(e event.Event) { handleEvent(m, e) }

// PlaySFX запускает случайную вариацию эффекта.
func (m *EbitenManager) PlaySFX(name string) {
	if !m.sfxOn || m.sfxVolume <= 0 {
		return
	}
	variations := m.bank.SFX[name]
	idx := m.rng.ChooseIndex(len(variations), true)
	if idx < 0 {
		log.Printf("[Audio] Unknown sound %q", name)
		return
	}
	player := m.context.NewPlayerFromBytes(variations[idx])
	player.SetVolume(m.sfxVolume)
	player.Play()
}

// PlayMusic зацикливает трек. Повторный вызов с тем же именем ничего не меняет.
func (m *EbitenManager) PlayMusic(name string) {
	if m.musicKey == name && m.music != nil {
		return
	}
	m.StopMusic()

	pcm, ok := m.bank.Music[name]
	if !ok {
		log.Printf("[Audio] Unknown music %q", name)
		return
	}
	loop := ebaudio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := m.context.NewPlayer(loop)
	if err != nil {
		log.Printf("[Audio] Failed to create music player: %v", err)
		return
	}
	m.music = player
	m.musicKey = name
	m.applyMusicVolume()
	player.Play()
}

func (m *EbitenManager) StopMusic() {
	if m.music == nil {
		return
	}
	if err := m.music.Close(); err != nil {
		log.Printf("[Audio] Failed to close music player: %v", err)
	}
	m.music = nil
	m.musicKey = ""
}

func (m *EbitenManager) Apply(settings *storage.Settings) {
	m.musicVolume = settings.MusicVolume
	m.sfxVolume = settings.SoundVolume
	m.musicOn = settings.MusicEnabled
	m.sfxOn = settings.SoundEnabled
	m.applyMusicVolume()
}

func (m *EbitenManager) applyMusicVolume() {
	if m.music == nil {
		return
	}
	if m.musicOn {
		m.music.SetVolume(m.musicVolume)
	} else {
		m.music.SetVolume(0)
	}
}
