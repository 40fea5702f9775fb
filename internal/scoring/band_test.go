package scoring

import "testing"

func TestBandForScore(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected MaturityLevel
	}{
		{"zero", 0, LevelInicial},
		{"inside inicial", 25.5, LevelInicial},
		{"exactly 40", 40, LevelInicial},
		{"just above 40", 40.5, LevelEmDesenvolvimento},
		{"inside em desenvolvimento", 55, LevelEmDesenvolvimento},
		{"exactly 70", 70, LevelEmDesenvolvimento},
		{"just above 70", 70.5, LevelConsolidado},
		{"full score", 100, LevelConsolidado},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BandForScore(tt.score); got.Level != tt.expected {
				t.Errorf("BandForScore(%v) = %s, want %s", tt.score, got.Level, tt.expected)
			}
		})
	}
}

func TestBandTextsArePresent(t *testing.T) {
	for _, level := range []MaturityLevel{LevelInicial, LevelEmDesenvolvimento, LevelConsolidado} {
		band := bands[level]
		if band.Name == "" || band.Description == "" || band.Recommendation == "" {
			t.Errorf("Band %s is missing display texts", level)
		}
	}
}
