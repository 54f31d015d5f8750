package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchOnlyToSubscribers(t *testing.T) {
	d := NewDispatcher()
	killed := &recorder{}
	damaged := &recorder{}
	d.Subscribe(ZombieKilled, killed)
	d.Subscribe(PlayerDamaged, damaged)

	d.Dispatch(Event{Type: ZombieKilled, Data: ZombieKilledData{ScoreValue: 10}})

	if len(killed.got) != 1 {
		t.Fatalf("expected 1 ZombieKilled event, got %d", len(killed.got))
	}
	if data := killed.got[0].Data.(ZombieKilledData); data.ScoreValue != 10 {
		t.Errorf("unexpected payload %+v", data)
	}
	if len(damaged.got) != 0 {
		t.Errorf("PlayerDamaged listener received %d events", len(damaged.got))
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(GameOver, r)
	d.Unsubscribe(GameOver, r)
	d.Dispatch(Event{Type: GameOver})
	if len(r.got) != 0 {
		t.Errorf("unsubscribed listener received %d events", len(r.got))
	}
}

// selfRemover отписывается прямо из обработчика
type selfRemover struct {
	d     *Dispatcher
	calls int
}

func (s *selfRemover) OnEvent(e Event) {
	s.calls++
	s.d.Unsubscribe(e.Type, s)
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	first := &selfRemover{d: d}
	second := &recorder{}
	d.Subscribe(WaveCleared, first)
	d.Subscribe(WaveCleared, second)

	d.Dispatch(Event{Type: WaveCleared})
	d.Dispatch(Event{Type: WaveCleared})

	if first.calls != 1 {
		t.Errorf("self-removing listener called %d times, want 1", first.calls)
	}
	if len(second.got) != 2 {
		t.Errorf("second listener got %d events, want 2", len(second.got))
	}
}

func TestUnsubscribeUnknownListener(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	other := &recorder{}
	d.Subscribe(GameOver, r)
	d.Unsubscribe(GameOver, other)
	d.Unsubscribe(WaveStarted, r)
	d.Dispatch(Event{Type: GameOver})
	if len(r.got) != 1 {
		t.Errorf("listener lost after unrelated Unsubscribe: %d events", len(r.got))
	}
}
