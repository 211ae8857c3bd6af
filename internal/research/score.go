package research

import "math"

// subscriberBuckets compresses the viral-score denominator for small channels
// and further compresses it for huge ones, so the score stays comparable
// across channel sizes. Bucket upper bounds are exclusive.
var subscriberBuckets = []struct {
	below      int64
	multiplier float64
}{
	{500, 6.0},
	{1000, 4.0},
	{2500, 3.0},
	{5000, 2.0},
	{10000, 1.7},
	{20000, 1.5},
	{50000, 0.90},
	{100000, 0.80},
	{500000, 0.75},
	{1000000, 0.40},
}

// AdjustedBaseline scales a raw subscriber count by its bucket multiplier.
func AdjustedBaseline(subscribers int64) float64 {
	for _, b := range subscriberBuckets {
		if subscribers < b.below {
			return float64(subscribers) * b.multiplier
		}
	}
	return float64(subscribers) * 0.35
}

// ViralScore is views divided by the adjusted baseline, rounded to two
// decimals. A zero baseline scores zero.
func ViralScore(views, subscribers int64) float64 {
	baseline := AdjustedBaseline(subscribers)
	if baseline == 0 {
		return 0
	}
	return math.Round(float64(views)/baseline*100) / 100
}

// IsViral compares views against the raw subscriber count. The flag and the
// score deliberately use different denominators.
func IsViral(views, subscribers int64) bool {
	return views > subscribers
}

// BadgeColor maps a viral score to its display tier. Display only; never an
// input to filtering or ranking.
func BadgeColor(score float64) string {
	switch {
	case score < 0.2:
		return "red"
	case score < 0.5:
		return "orange"
	case score < 1.0:
		return "blue"
	default:
		return "green"
	}
}
