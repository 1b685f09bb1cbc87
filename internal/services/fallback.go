package services

import (
	"strings"

	"insightd/internal/models"
)

// fallbackConfidence is the fixed confidence attached to keyword-only
// analysis; the calling UI renders a weaker badge off it.
const fallbackConfidence = 60

var (
	fallbackPositiveKeywords = []string{
		"success", "won", "signed", "growth", "milestone", "achieved",
		"great", "revenue", "launch", "excited", "profit", "record",
	}
	fallbackNegativeKeywords = []string{
		"problem", "failed", "difficult", "burnout", "struggling", "setback",
		"cancelled", "risk", "overwhelmed", "outage", "stress", "lost",
	}
	fallbackNeutralKeywords = []string{
		"meeting", "plan", "strategy", "review", "roadmap", "customer",
		"product", "team", "quarter", "budget",
	}
)

// fallbackHeadings is checked in order; the first keyword hit names
// the entry.
var fallbackHeadings = []struct {
	keyword string
	heading string
}{
	{"funding", "Funding update"},
	{"revenue", "Revenue discussion"},
	{"hiring", "Team matters"},
	{"team", "Team matters"},
	{"launch", "Product progress"},
	{"product", "Product progress"},
	{"customer", "Customer notes"},
}

// FallbackAnalyzer produces a best-effort analysis with no network
// dependency. It is pure: no I/O, no state, and identical input always
// yields identical output. Ties and keyword-free entries read as
// reflective (not "neutral", which is outside the mood vocabulary)
// with medium energy and a planning category.
type FallbackAnalyzer struct{}

func (FallbackAnalyzer) Analyze(text string) models.AnalysisResult {
	lower := strings.ToLower(text)

	positive := countHits(lower, fallbackPositiveKeywords)
	negative := countHits(lower, fallbackNegativeKeywords)
	neutral := countHits(lower, fallbackNeutralKeywords)

	mood := models.MoodReflective
	energy := models.EnergyMedium
	category := models.CategoryPlanning
	switch {
	case positive > negative && positive > neutral:
		mood, energy, category = models.MoodOptimistic, models.EnergyHigh, models.CategoryAchievement
	case negative > positive && negative > neutral:
		mood, energy, category = models.MoodConcerned, models.EnergyLow, models.CategoryChallenge
	}

	return models.AnalysisResult{
		PrimaryMood:      mood,
		Confidence:       fallbackConfidence,
		Energy:           energy,
		Emotions:         []string{mood},
		BusinessCategory: category,
		Insights:         GenerateInsights(text, mood, category),
		AIHeading:        fallbackHeading(lower),
		AnalysisSource:   models.SourceFallback,
	}
}

func countHits(text string, keywords []string) int {
	total := 0
	for _, keyword := range keywords {
		total += strings.Count(text, keyword)
	}
	return total
}

func fallbackHeading(text string) string {
	for _, entry := range fallbackHeadings {
		if strings.Contains(text, entry.keyword) {
			return entry.heading
		}
	}
	return "Business reflection"
}
