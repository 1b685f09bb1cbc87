package models

import "time"

// Energy is the coarse energy level attached to an analysis.
type Energy string

const (
	EnergyHigh   Energy = "high"
	EnergyMedium Energy = "medium"
	EnergyLow    Energy = "low"
)

// Category is the business bucket assigned to a journal entry.
type Category string

const (
	CategoryPlanning    Category = "planning"
	CategoryChallenge   Category = "challenge"
	CategoryAchievement Category = "achievement"
	CategoryGrowth      Category = "growth"
	CategoryLearning    Category = "learning"
	CategoryReflection  Category = "reflection"
)

// Source marks where an analysis came from. Callers render a
// confidence badge off this value, so the strings are part of the API.
type Source string

const (
	SourceRemote   Source = "hugging-face-server"
	SourceFallback Source = "fallback-system"
)

// Mood vocabulary. The resolver and fallback analyzer only ever emit
// these values.
const (
	MoodExcited    = "excited"
	MoodOptimistic = "optimistic"
	MoodFocused    = "focused"
	MoodConcerned  = "concerned"
	MoodFrustrated = "frustrated"
	MoodReflective = "reflective"
	MoodUncertain  = "uncertain"
	MoodCurious    = "curious"
	MoodCritical   = "critical"
)

// AnalysisResult is the only externally visible output shape.
// Emotions is a single-element echo of PrimaryMood; the calling UI
// still expects the legacy array form.
type AnalysisResult struct {
	PrimaryMood      string   `json:"primary_mood"`
	Confidence       int      `json:"confidence"`
	Energy           Energy   `json:"energy"`
	Emotions         []string `json:"emotions"`
	BusinessCategory Category `json:"business_category"`
	Insights         []string `json:"insights"`
	AIHeading        string   `json:"ai_heading"`
	AnalysisSource   Source   `json:"analysis_source"`
}

// LabelScore is one entry of a model's per-label score distribution.
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// UsageStats is a point-in-time copy of the tracker state. The counters
// are "since process start"; there is no day rollover.
type UsageStats struct {
	RequestsToday   int       `json:"requestsToday"`
	ErrorsToday     int       `json:"errorsToday"`
	LastRequestTime time.Time `json:"lastRequestTime"`
	QuotaExceeded   bool      `json:"quotaExceeded"`
	FallbackMode    bool      `json:"fallbackMode"`
}
