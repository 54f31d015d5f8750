package utils

import "testing"

func TestPRNGDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("step %d: same seed produced %d and %d", i, x, y)
		}
	}
}

func TestChooseIndex(t *testing.T) {
	p := NewPRNGService(1)
	tests := []struct {
		name   string
		n      int
		random bool
		want   int
	}{
		{"empty pool", 0, true, -1},
		{"empty pool not random", 0, false, -1},
		{"first entry when not random", 5, false, 0},
		{"single entry", 1, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ChooseIndex(tt.n, tt.random); got != tt.want {
				t.Errorf("ChooseIndex(%d, %v) = %d, want %d", tt.n, tt.random, got, tt.want)
			}
		})
	}

	for i := 0; i < 200; i++ {
		if got := p.ChooseIndex(4, true); got < 0 || got >= 4 {
			t.Fatalf("ChooseIndex out of range: %d", got)
		}
	}
}

func TestChooseSpawnIndexNoRepeat(t *testing.T) {
	p := NewPRNGService(7)
	last := -1
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		idx := p.ChooseSpawnIndex(3, last, true, false)
		if idx == last {
			t.Fatalf("iteration %d: spawn index %d repeated", i, idx)
		}
		if idx < 0 || idx >= 3 {
			t.Fatalf("iteration %d: index %d out of range", i, idx)
		}
		seen[idx] = true
		last = idx
	}
	if len(seen) != 3 {
		t.Errorf("expected all 3 spawn points to be used, got %v", seen)
	}
}

func TestChooseSpawnIndexSinglePoint(t *testing.T) {
	p := NewPRNGService(3)
	if got := p.ChooseSpawnIndex(1, 0, true, false); got != 0 {
		t.Errorf("single spawn point must be reused, got %d", got)
	}
}

func TestRange(t *testing.T) {
	p := NewPRNGService(9)
	for i := 0; i < 200; i++ {
		v := p.Range(10, 30)
		if v < 10 || v >= 30 {
			t.Fatalf("Range(10, 30) = %f", v)
		}
	}
	if got := p.Range(5, 5); got != 5 {
		t.Errorf("Range(5, 5) = %f, want 5", got)
	}
}
