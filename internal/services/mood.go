package services

import (
	"strings"

	"insightd/internal/config"
	"insightd/internal/models"
)

// adversarialKeywords suppress celebratory tone: a strongly positive
// model score over a competitor or funding threat should not read as
// excitement.
var adversarialKeywords = []string{"competitor", "funding", "challenge", "threat"}

// MoodResolver maps the top sentiment and emotion scores onto a
// (mood, energy) pair. Pure; the only state is the threshold set.
type MoodResolver struct {
	Thresholds config.Tunables
}

func NewMoodResolver(thresholds config.Tunables) MoodResolver {
	return MoodResolver{Thresholds: thresholds}
}

// Resolve applies, in order: the sentiment base mapping, the emotion
// override, and the business-context guard. The returned score is the
// one that decided the mood and feeds the result's confidence.
func (r MoodResolver) Resolve(text string, sentiment, emotion models.LabelScore) (mood string, energy models.Energy, score float64) {
	mood, energy = r.baseMood(sentiment)
	score = sentiment.Score

	if emotion.Score > r.Thresholds.EmotionOverride {
		if overrideMood, overrideEnergy, ok := r.emotionOverride(emotion); ok {
			mood, energy = overrideMood, overrideEnergy
			score = emotion.Score
		}
	}

	if mood == models.MoodExcited && containsAny(strings.ToLower(text), adversarialKeywords...) {
		mood, energy = models.MoodFocused, models.EnergyHigh
	}
	return mood, energy, score
}

func (r MoodResolver) baseMood(sentiment models.LabelScore) (string, models.Energy) {
	switch sentimentClass(sentiment.Label) {
	case "positive":
		if sentiment.Score > r.Thresholds.StrongPositive {
			return models.MoodExcited, models.EnergyHigh
		}
		return models.MoodOptimistic, models.EnergyMedium
	case "negative":
		if sentiment.Score > r.Thresholds.StrongNegative {
			return models.MoodFrustrated, models.EnergyLow
		}
		return models.MoodConcerned, models.EnergyMedium
	default:
		return models.MoodFocused, models.EnergyMedium
	}
}

func (r MoodResolver) emotionOverride(emotion models.LabelScore) (string, models.Energy, bool) {
	switch strings.ToLower(emotion.Label) {
	case "joy":
		return models.MoodExcited, models.EnergyHigh, true
	case "anger":
		if emotion.Score > r.Thresholds.StrongNegative {
			return models.MoodFrustrated, models.EnergyHigh, true
		}
		return models.MoodFrustrated, models.EnergyMedium, true
	case "sadness":
		return models.MoodReflective, models.EnergyLow, true
	case "fear":
		return models.MoodUncertain, models.EnergyLow, true
	case "surprise":
		return models.MoodCurious, models.EnergyMedium, true
	case "disgust":
		return models.MoodCritical, models.EnergyMedium, true
	default:
		return "", "", false
	}
}

// sentimentClass folds the sentiment model's label aliases down to
// positive/neutral/negative. The 3-class models in use emit either
// lowercase names or LABEL_0/1/2 in ascending polarity.
func sentimentClass(label string) string {
	switch strings.ToLower(label) {
	case "positive", "label_2", "pos":
		return "positive"
	case "negative", "label_0", "neg":
		return "negative"
	default:
		return "neutral"
	}
}

func containsAny(text string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
