package sentiment

import "testing"

func TestPolarity(t *testing.T) {
	if got := Polarity(""); got != 0 {
		t.Errorf("Polarity(\"\") = %v, want 0", got)
	}
	if got := Polarity("This is wonderful, I love it, amazing work!"); got <= 0 {
		t.Errorf("clearly positive text scored %v", got)
	}
	if got := Polarity("This is terrible, I hate it, awful garbage."); got >= 0 {
		t.Errorf("clearly negative text scored %v", got)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{0.8, "Positive"},
		{0.31, "Positive"},
		{0.3, "Neutral"},
		{0, "Neutral"},
		{-0.3, "Neutral"},
		{-0.31, "Negative"},
		{-0.9, "Negative"},
	}

	for _, tt := range tests {
		if got := Label(tt.score); got != tt.expected {
			t.Errorf("Label(%v) = %q, want %q", tt.score, got, tt.expected)
		}
	}
}
