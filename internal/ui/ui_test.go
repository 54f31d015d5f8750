package ui

import (
	"image"
	"math"
	"testing"
	"time"

	"horde-in-town/internal/event"
)

func TestToRoman(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, ""},
		{1, "I"},
		{4, "IV"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{1994, "MCMXCIV"},
	}
	for _, tt := range tests {
		if got := toRoman(tt.in); got != tt.want {
			t.Errorf("toRoman(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWaveIndicatorLabel(t *testing.T) {
	w := NewWaveIndicator(0, 0)
	if got := w.Label(0, "First Night"); got != "Waves: 0 - First Night" {
		t.Errorf("got %q", got)
	}
	if got := w.Label(3, ""); got != "Waves: III" {
		t.Errorf("got %q", got)
	}
}

func TestJoystick(t *testing.T) {
	t.Run("press outside capture zone", func(t *testing.T) {
		j := NewJoystick(100, 100, 50)
		if j.Press(-1, 300, 300) {
			t.Fatal("press far from the base captured the stick")
		}
	})

	t.Run("drag is clamped to range", func(t *testing.T) {
		j := NewJoystick(100, 100, 50)
		if !j.Press(-1, 110, 100) {
			t.Fatal("press near base not captured")
		}
		j.Drag(-1, 300, 100)
		dx, dy := j.Direction()
		if math.Abs(dx-1) > 1e-9 || dy != 0 {
			t.Errorf("direction = (%v, %v), want (1, 0)", dx, dy)
		}
	})

	t.Run("other pointer is ignored", func(t *testing.T) {
		j := NewJoystick(100, 100, 50)
		j.Press(7, 100, 75)
		j.Drag(3, 150, 100)
		j.Release(3)
		if !j.Active() {
			t.Fatal("release by another pointer freed the stick")
		}
		if dx, dy := j.Direction(); dx != 0 || dy != -0.5 {
			t.Errorf("direction = (%v, %v), want (0, -0.5)", dx, dy)
		}
	})

	t.Run("release recentres", func(t *testing.T) {
		j := NewJoystick(100, 100, 50)
		j.Press(-1, 120, 120)
		j.Release(-1)
		if dx, dy := j.Direction(); dx != 0 || dy != 0 || j.Active() {
			t.Errorf("after release: active=%v dir=(%v, %v)", j.Active(), dx, dy)
		}
	})
}

func TestSlider(t *testing.T) {
	s := &Slider{Rect: image.Rect(100, 10, 300, 30)}
	if s.Drag(200) {
		t.Fatal("drag without press changed the slider")
	}
	if !s.Press(150, 20) {
		t.Fatal("press inside not captured")
	}
	if s.Value != 0.25 {
		t.Errorf("value = %v, want 0.25", s.Value)
	}
	s.Drag(1000)
	if s.Value != 1 {
		t.Errorf("value = %v, want clamped 1", s.Value)
	}
	s.Release()
	s.Drag(100)
	if s.Value != 1 {
		t.Error("released slider still follows the pointer")
	}
}

func TestToggle(t *testing.T) {
	tg := &Toggle{Rect: image.Rect(0, 0, 60, 30)}
	if tg.Click(100, 100) || tg.On {
		t.Fatal("click outside toggled")
	}
	if !tg.Click(10, 10) || !tg.On {
		t.Fatal("click inside did not toggle on")
	}
	tg.Click(10, 10)
	if tg.On {
		t.Error("second click did not toggle off")
	}
}

func TestTutorialPanel(t *testing.T) {
	p := NewTutorialPanel(DefaultTutorialPages)
	p.Reset()

	if len(p.Pages) != 4 {
		t.Fatalf("pages = %d, want 4", len(p.Pages))
	}
	if !p.PrevButton.Disabled {
		t.Error("prev must be disabled on the first page")
	}
	p.Prev()
	if p.Page != 0 {
		t.Errorf("prev on first page moved to %d", p.Page)
	}
	for i := 0; i < 3; i++ {
		p.Next()
	}
	if p.Page != 3 || p.Done || p.PageIndicator() != "4/4" {
		t.Fatalf("page=%d done=%v indicator=%s", p.Page, p.Done, p.PageIndicator())
	}
	if p.NextButton.Text != "Play" {
		t.Errorf("last page next button = %q", p.NextButton.Text)
	}
	p.Next()
	if !p.Done {
		t.Error("next on last page must close the tutorial")
	}

	p.Reset()
	next := p.NextButton.Rect
	if !p.Click(next.Min.X+1, next.Min.Y+1) || p.Page != 1 {
		t.Errorf("click on next: page = %d", p.Page)
	}
	skip := p.SkipButton.Rect
	p.Click(skip.Min.X+1, skip.Min.Y+1)
	if !p.Done {
		t.Error("skip did not close the tutorial")
	}
}

func TestRingSegments(t *testing.T) {
	if segs := RingSegments(0, 0, 10, 0, 48); len(segs) != 0 {
		t.Errorf("empty progress drew %d segments", len(segs))
	}
	full := RingSegments(0, 0, 10, 1, 48)
	if len(full) != 48 {
		t.Fatalf("full ring = %d segments, want 48", len(full))
	}
	// начинается сверху и замыкается там же
	first, last := full[0], full[len(full)-1]
	if math.Abs(first[0]) > 1e-9 || math.Abs(first[1]+10) > 1e-9 {
		t.Errorf("ring starts at (%v, %v), want (0, -10)", first[0], first[1])
	}
	if math.Abs(last[2]) > 1e-6 || math.Abs(last[3]+10) > 1e-6 {
		t.Errorf("ring ends at (%v, %v), want (0, -10)", last[2], last[3])
	}
	if half := RingSegments(0, 0, 10, 0.5, 48); len(half) != 24 {
		t.Errorf("half ring = %d segments, want 24", len(half))
	}
}

func TestButtonClickPulse(t *testing.T) {
	b := NewButton(image.Rect(0, 0, 100, 40), "Start")
	if b.Click(200, 200) {
		t.Fatal("click outside reported as hit")
	}
	if !b.Click(50, 20) {
		t.Fatal("click inside missed")
	}
	b.Update(0.01)
	if b.Scale() <= 1 {
		t.Errorf("scale right after click = %v, want > 1", b.Scale())
	}
	b.Update(1)
	if b.Scale() != 1 {
		t.Errorf("scale after pulse = %v, want 1", b.Scale())
	}

	b.Disabled = true
	if b.Click(50, 20) {
		t.Error("disabled button clicked")
	}
}

func TestClickGuard(t *testing.T) {
	var g ClickGuard
	now := time.Now()
	if !g.Allow(now) {
		t.Fatal("first click rejected")
	}
	if g.Allow(now.Add(50 * time.Millisecond)) {
		t.Error("click within cooldown allowed")
	}
	if !g.Allow(now.Add(200 * time.Millisecond)) {
		t.Error("click after cooldown rejected")
	}
}

func TestInfoPanelSlidesIn(t *testing.T) {
	p := NewInfoPanel()
	p.Show("Game Over", []InfoLine{{"Score", "10"}})
	if !p.Visible() || p.Settled() {
		t.Fatal("panel should be visible and moving")
	}
	for i := 0; i < 100 && !p.Settled(); i++ {
		p.Update(1.0 / 60)
	}
	if !p.Settled() {
		t.Fatal("panel never settled")
	}
	p.Hide()
	for i := 0; i < 100 && !p.Settled(); i++ {
		p.Update(1.0 / 60)
	}
	if p.Visible() {
		t.Error("hidden panel still visible")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[float64]string{0: "0:00", 59.9: "0:59", 61: "1:01", 600: "10:00", -3: "0:00"}
	for in, want := range tests {
		if got := FormatDuration(in); got != want {
			t.Errorf("FormatDuration(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestHealthIndicatorFollowsEvents(t *testing.T) {
	h := NewPlayerHealthIndicator(0, 0, 104, 20)
	if h.Fraction() != 1 {
		t.Fatalf("new indicator fraction = %v, want 1", h.Fraction())
	}

	h.OnEvent(event.Event{Type: event.HealthChanged, Data: 0.4})
	if h.Fraction() != 0.4 {
		t.Errorf("fraction = %v after HealthChanged(0.4)", h.Fraction())
	}
	if h.Glow() != 0 {
		t.Error("damage must not flash the bar")
	}

	h.OnEvent(event.Event{Type: event.PlayerHealed, Data: 10.0})
	h.OnEvent(event.Event{Type: event.HealthChanged, Data: 0.5})
	if h.Glow() != 1 || h.Fraction() != 0.5 {
		t.Fatalf("after heal: glow %v fraction %v", h.Glow(), h.Fraction())
	}
	h.Update(0.4)
	if g := h.Glow(); g <= 0 || g >= 1 {
		t.Errorf("glow mid-flash = %v, want in (0, 1)", g)
	}
	h.Update(1)
	if h.Glow() != 0 {
		t.Errorf("glow after flash = %v, want 0", h.Glow())
	}

	h.OnEvent(event.Event{Type: event.HealthChanged, Data: 1.7})
	if h.Fraction() != 1 {
		t.Errorf("fraction not clamped: %v", h.Fraction())
	}
}

func TestScoreLabelPulsesOnGain(t *testing.T) {
	l := NewScoreLabel(0, 0)
	l.OnEvent(event.Event{Type: event.ScoreChanged, Data: 0})
	if l.Glow() != 0 {
		t.Error("zero score must not pulse")
	}
	l.OnEvent(event.Event{Type: event.ScoreChanged, Data: 20})
	if l.Score != 20 || l.Glow() != 1 {
		t.Fatalf("score %d glow %v", l.Score, l.Glow())
	}
	l.Update(1)
	if l.Glow() != 0 {
		t.Errorf("glow after pulse = %v", l.Glow())
	}
	l.OnEvent(event.Event{Type: event.HealthChanged, Data: 0.5})
	if l.Score != 20 {
		t.Error("score label reacted to a foreign event")
	}
}
