package research

import (
	"math"
	"testing"
)

func TestAdjustedBaseline(t *testing.T) {
	tests := []struct {
		name        string
		subscribers int64
		expected    float64
	}{
		{"zero subscribers", 0, 0},
		{"tiny channel", 100, 600},
		{"just below 500", 499, 2994},
		{"exactly 500 moves to next bucket", 500, 2000},
		{"just below 1000", 999, 3996},
		{"exactly 1000", 1000, 3000},
		{"mid-size channel", 30000, 27000},
		{"just below a million", 999999, 399999.6},
		{"exactly a million", 1000000, 350000},
		{"large channel", 2000000, 700000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdjustedBaseline(tt.subscribers); math.Abs(got-tt.expected) > 1e-6 {
				t.Errorf("AdjustedBaseline(%d) = %v, want %v", tt.subscribers, got, tt.expected)
			}
		})
	}
}

func TestViralScore(t *testing.T) {
	tests := []struct {
		name        string
		views       int64
		subscribers int64
		expected    float64
	}{
		{"zero baseline scores zero", 5000, 0, 0},
		{"small channel compressed", 1000, 400, 0.42},
		{"exact ratio", 12000, 3000, 2},
		{"rounded to two decimals", 1000, 300, 0.56},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ViralScore(tt.views, tt.subscribers); got != tt.expected {
				t.Errorf("ViralScore(%d, %d) = %v, want %v", tt.views, tt.subscribers, got, tt.expected)
			}
		})
	}
}

// The viral flag compares against raw subscribers, so a video can be flagged
// viral while its score sits below 1.
func TestIsViralUsesRawSubscribers(t *testing.T) {
	if !IsViral(600, 500) {
		t.Error("600 views on 500 subscribers should be viral")
	}
	if IsViral(500, 500) {
		t.Error("views equal to subscribers should not be viral")
	}
	if score := ViralScore(600, 500); score >= 1 {
		t.Errorf("score for the same video = %v, expected below 1", score)
	}
}

func TestBadgeColor(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{0, "red"},
		{0.19, "red"},
		{0.2, "orange"},
		{0.49, "orange"},
		{0.5, "blue"},
		{0.99, "blue"},
		{1.0, "green"},
		{42, "green"},
	}

	for _, tt := range tests {
		if got := BadgeColor(tt.score); got != tt.expected {
			t.Errorf("BadgeColor(%v) = %q, want %q", tt.score, got, tt.expected)
		}
	}
}
