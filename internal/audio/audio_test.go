package audio

import (
	"encoding/binary"
	"testing"

	"horde-in-town/internal/event"
	"horde-in-town/internal/storage"
)

func TestBuildBankHasAllClips(t *testing.T) {
	bank := BuildBank(22050, 7)

	sfx := map[string]int{
		SoundButtonPress: 1,
		SoundBowLoading:  1,
		SoundArrowShot:   1,
		SoundZombieWalk:  3,
		SoundZombieDying: 3,
	}
	for name, variations := range sfx {
		t.Run(name, func(t *testing.T) {
			clips := bank.SFX[name]
			if len(clips) != variations {
				t.Fatalf("got %d variations, want %d", len(clips), variations)
			}
			for _, c := range clips {
				if len(c) == 0 || len(c)%bytesPerFrame != 0 {
					t.Errorf("clip length %d is not whole stereo frames", len(c))
				}
			}
		})
	}
	for _, name := range []string{MusicMainMenu, MusicDefeated} {
		if len(bank.Music[name]) == 0 {
			t.Errorf("music %q is empty", name)
		}
	}
}

func TestEncodePCM(t *testing.T) {
	pcm := encodePCM([]float64{0, 1, -1, 2})
	if len(pcm) != 4*bytesPerFrame {
		t.Fatalf("len = %d", len(pcm))
	}
	tests := []struct {
		frame int
		want  int16
	}{
		{0, 0},
		{1, 32767},
		{2, -32767},
		{3, 32767}, // clipped
	}
	for _, tt := range tests {
		left := int16(binary.LittleEndian.Uint16(pcm[tt.frame*bytesPerFrame:]))
		right := int16(binary.LittleEndian.Uint16(pcm[tt.frame*bytesPerFrame+2:]))
		if left != tt.want || right != tt.want {
			t.Errorf("frame %d = (%d, %d), want %d", tt.frame, left, right, tt.want)
		}
	}
}

func TestSynthIsDeterministic(t *testing.T) {
	a := BuildBank(8000, 3).SFX[SoundArrowShot][0]
	b := BuildBank(8000, 3).SFX[SoundArrowShot][0]
	if string(a) != string(b) {
		t.Error("same seed produced different clips")
	}
}

func TestSilentFollowsEvents(t *testing.T) {
	d := event.NewDispatcher()
	s := NewSilent()
	Subscribe(s, d)

	d.Dispatch(event.Event{Type: event.SoundRequested, Data: SoundArrowShot})
	d.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{}})

	if len(s.Played) != 1 || s.Played[0] != SoundArrowShot {
		t.Errorf("played = %v", s.Played)
	}
	if s.Music != MusicDefeated {
		t.Errorf("music = %q, want %q", s.Music, MusicDefeated)
	}

	settings := storage.DefaultSettings()
	settings.SoundEnabled = false
	s.Apply(settings)
	s.PlaySFX(SoundButtonPress)
	if len(s.Played) != 1 {
		t.Error("muted manager still records sounds")
	}
}
