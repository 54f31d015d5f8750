// internal/audio/synth.go
package audio

import (
	"encoding/binary"
	"math"

	"horde-in-town/internal/utils"
)

// Клипы синтезируются при старте: 16-bit little-endian, стерео,
// тот же формат, что ожидает audio.Context.
const bytesPerFrame = 4

// synth генерирует сэмплы в диапазоне -1..1.
type synth struct {
	sampleRate int
	rng        *utils.PRNGService
}

func newSynth(sampleRate int, seed int64) *synth {
	return &synth{sampleRate: sampleRate, rng: utils.NewPRNGService(seed)}
}

func (s *synth) frames(seconds float64) int {
	return int(seconds * float64(s.sampleRate))
}

// envelope — линейная атака и экспоненциальное затухание.
func envelope(i, n int, attack float64) float64 {
	t := float64(i) / float64(n)
	if t < attack {
		return t / attack
	}
	return math.Exp(-4 * (t - attack) / (1 - attack))
}

// sweep — синус с частотой, плавно меняющейся от f0 к f1.
func (s *synth) sweep(f0, f1, seconds, volume float64) []float64 {
	n := s.frames(seconds)
	out := make([]float64, n)
	phase := 0.0
	for i := range out {
		f := utils.Lerp(f0, f1, float64(i)/float64(n))
		phase += 2 * math.Pi * f / float64(s.sampleRate)
		out[i] = math.Sin(phase) * volume * envelope(i, n, 0.05)
	}
	return out
}

// saw — пилообразная волна с вибрато, звучит грубее синуса.
func (s *synth) saw(f0, f1, vibrato, seconds, volume float64) []float64 {
	n := s.frames(seconds)
	out := make([]float64, n)
	phase := 0.0
	for i := range out {
		t := float64(i) / float64(s.sampleRate)
		f := utils.Lerp(f0, f1, float64(i)/float64(n)) * (1 + vibrato*math.Sin(2*math.Pi*6*t))
		phase += f / float64(s.sampleRate)
		phase -= math.Floor(phase)
		out[i] = (2*phase - 1) * volume * envelope(i, n, 0.15)
	}
	return out
}

// noise — белый шум через однополюсный фильтр нижних частот.
// smoothing 0 даёт чистый шум, ближе к 1 — глухой удар.
func (s *synth) noise(seconds, volume, smoothing float64) []float64 {
	n := s.frames(seconds)
	out := make([]float64, n)
	prev := 0.0
	for i := range out {
		v := s.rng.Range(-1, 1)
		prev = prev*smoothing + v*(1-smoothing)
		out[i] = prev * volume * envelope(i, n, 0.02)
	}
	return out
}

// melody склеивает ноты одинаковой длины.
func (s *synth) melody(freqs []float64, noteSeconds, volume float64) []float64 {
	var out []float64
	for _, f := range freqs {
		if f == 0 {
			out = append(out, make([]float64, s.frames(noteSeconds))...)
			continue
		}
		note := s.sweep(f, f, noteSeconds, volume)
		overtone := s.sweep(f*2, f*2, noteSeconds, volume*0.25)
		out = append(out, mix(note, overtone)...)
	}
	return out
}

// mix складывает дорожки; длина результата — длина самой длинной.
func mix(tracks ...[]float64) []float64 {
	longest := 0
	for _, t := range tracks {
		if len(t) > longest {
			longest = len(t)
		}
	}
	out := make([]float64, longest)
	for _, t := range tracks {
		for i, v := range t {
			out[i] += v
		}
	}
	return out
}

// encodePCM переводит моно-сэмплы в 16-bit LE стерео.
func encodePCM(samples []float64) []byte {
	buf := make([]byte, len(samples)*bytesPerFrame)
	for i, v := range samples {
		v = utils.Clamp(v, -1, 1)
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame:], sample)
		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame+2:], sample)
	}
	return buf
}

// Bank — синтезированные клипы: эффекты с вариациями и фоновая музыка.
type Bank struct {
	SFX   map[string][][]byte
	Music map[string][]byte
}

// BuildBank синтезирует все звуки игры.
func BuildBank(sampleRate int, seed int64) *Bank {
	s := newSynth(sampleRate, seed)
	b := &Bank{
		SFX:   make(map[string][][]byte),
		Music: make(map[string][]byte),
	}

	b.SFX[SoundButtonPress] = [][]byte{encodePCM(s.sweep(880, 990, 0.06, 0.4))}
	b.SFX[SoundBowLoading] = [][]byte{encodePCM(mix(s.saw(110, 150, 0.02, 0.25, 0.2), s.noise(0.25, 0.08, 0.9)))}
	b.SFX[SoundArrowShot] = [][]byte{encodePCM(mix(s.noise(0.18, 0.5, 0.3), s.sweep(700, 300, 0.12, 0.2)))}

	for _, f := range []float64{70, 85, 95} {
		b.SFX[SoundZombieWalk] = append(b.SFX[SoundZombieWalk],
			encodePCM(mix(s.noise(0.3, 0.5, 0.96), s.saw(f, f*0.9, 0.05, 0.4, 0.15))))
	}
	for _, f := range []float64{180, 150, 210} {
		b.SFX[SoundZombieDying] = append(b.SFX[SoundZombieDying],
			encodePCM(mix(s.saw(f, f*0.4, 0.08, 0.9, 0.35), s.noise(0.5, 0.15, 0.8))))
	}

	// a-moll: тихое меню и нисходящая тема поражения
	b.Music[MusicMainMenu] = encodePCM(s.melody([]float64{220, 261.6, 329.6, 261.6, 196, 246.9, 293.7, 0}, 0.45, 0.18))
	b.Music[MusicDefeated] = encodePCM(s.melody([]float64{329.6, 293.7, 261.6, 246.9, 220, 0, 0, 0}, 0.6, 0.18))
	return b
}
