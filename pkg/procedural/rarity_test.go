package procedural

import "testing"

func TestRarityScore(t *testing.T) {
	tests := []struct {
		name  string
		index uint64
		want  uint64
	}{
		{"fractal sunset minimal", 0, 50 + 50 + 10},
		{"flow sunset minimal", 1, 70 + 50 + 10},
		{"packing sunset minimal", 2, 60 + 50 + 10},
		{"mandala sunset minimal", 3, 100 + 50 + 10},
		{"wave sunset minimal", 4, 80 + 50 + 10},
		{"crystal sunset minimal", 5, 90 + 50 + 10},
		{"fractal ocean", 6, 50 + 40 + 10},
		{"fractal forest", 12, 50 + 40 + 10},
		{"fractal aurora", 18, 50 + 30 + 10},
		{"fractal earth", 66, 50 + 50 + 10},
		{"fractal complex", 3 * 432, 50 + 50 + 20},
		{"fractal intricate", 4 * 432, 50 + 50 + 30},
		{"rarest", Period - 3, 100 + 50 + 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RarityScore(tt.index); got != tt.want {
				t.Errorf("RarityScore(%d) = %d, want %d", tt.index, got, tt.want)
			}
		})
	}
}

func TestRarityScoreBounds(t *testing.T) {
	lo, hi := uint64(1<<63), uint64(0)
	for i := uint64(0); i < Period; i++ {
		s := RarityScore(i)
		lo, hi = min(lo, s), max(hi, s)
	}
	if lo != 90 || hi != 180 {
		t.Errorf("score range = [%d, %d], want [90, 180]", lo, hi)
	}
}
