package report

import "fmt"

// Health tiers for a pass rate.
type Tier string

const (
	TierHealthy  Tier = "healthy"
	TierWarning  Tier = "warning"
	TierCritical Tier = "critical"
)

// HealthTier buckets a pass rate: >= 80 healthy, >= 50 warning, else critical.
func HealthTier(rate float64) Tier {
	switch {
	case rate >= 80:
		return TierHealthy
	case rate >= 50:
		return TierWarning
	default:
		return TierCritical
	}
}

// FormatPercent renders a percentage with one decimal place.
func FormatPercent(rate float64) string {
	return fmt.Sprintf("%.1f", rate)
}

// Truncate cuts text to at most limit characters. The second result reports
// whether anything was removed.
func Truncate(text string, limit int) (string, bool) {
	if limit < 0 {
		limit = 0
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text, false
	}
	return string(runes[:limit]), true
}
