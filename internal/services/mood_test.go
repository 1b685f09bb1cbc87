package services

import (
	"testing"

	"insightd/internal/config"
	"insightd/internal/models"
)

func TestResolveBaseSentimentMapping(t *testing.T) {
	t.Parallel()

	resolver := NewMoodResolver(config.DefaultTunables())

	tests := []struct {
		name       string
		sentiment  models.LabelScore
		wantMood   string
		wantEnergy models.Energy
	}{
		{"strong positive", models.LabelScore{Label: "positive", Score: 0.92}, models.MoodExcited, models.EnergyHigh},
		{"mild positive", models.LabelScore{Label: "positive", Score: 0.65}, models.MoodOptimistic, models.EnergyMedium},
		{"strong negative", models.LabelScore{Label: "negative", Score: 0.85}, models.MoodFrustrated, models.EnergyLow},
		{"mild negative", models.LabelScore{Label: "negative", Score: 0.55}, models.MoodConcerned, models.EnergyMedium},
		{"neutral", models.LabelScore{Label: "neutral", Score: 0.7}, models.MoodFocused, models.EnergyMedium},
		{"label alias positive", models.LabelScore{Label: "LABEL_2", Score: 0.9}, models.MoodExcited, models.EnergyHigh},
		{"label alias negative", models.LabelScore{Label: "LABEL_0", Score: 0.9}, models.MoodFrustrated, models.EnergyLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mood, energy, _ := resolver.Resolve("a quiet day at work", tt.sentiment, models.LabelScore{})
			if mood != tt.wantMood || energy != tt.wantEnergy {
				t.Fatalf("Resolve = (%s, %s), want (%s, %s)", mood, energy, tt.wantMood, tt.wantEnergy)
			}
		})
	}
}

func TestResolveEmotionOverride(t *testing.T) {
	t.Parallel()

	resolver := NewMoodResolver(config.DefaultTunables())

	tests := []struct {
		name       string
		emotion    models.LabelScore
		wantMood   string
		wantEnergy models.Energy
	}{
		{"joy", models.LabelScore{Label: "joy", Score: 0.6}, models.MoodExcited, models.EnergyHigh},
		{"strong anger", models.LabelScore{Label: "anger", Score: 0.8}, models.MoodFrustrated, models.EnergyHigh},
		{"mild anger", models.LabelScore{Label: "anger", Score: 0.5}, models.MoodFrustrated, models.EnergyMedium},
		{"sadness", models.LabelScore{Label: "sadness", Score: 0.6}, models.MoodReflective, models.EnergyLow},
		{"fear", models.LabelScore{Label: "fear", Score: 0.6}, models.MoodUncertain, models.EnergyLow},
		{"surprise", models.LabelScore{Label: "surprise", Score: 0.6}, models.MoodCurious, models.EnergyMedium},
		{"disgust", models.LabelScore{Label: "disgust", Score: 0.6}, models.MoodCritical, models.EnergyMedium},
	}

	sentiment := models.LabelScore{Label: "neutral", Score: 0.5}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mood, energy, score := resolver.Resolve("a quiet day at work", sentiment, tt.emotion)
			if mood != tt.wantMood || energy != tt.wantEnergy {
				t.Fatalf("Resolve = (%s, %s), want (%s, %s)", mood, energy, tt.wantMood, tt.wantEnergy)
			}
			if score != tt.emotion.Score {
				t.Fatalf("score = %v, want emotion score %v", score, tt.emotion.Score)
			}
		})
	}
}

func TestResolveWeakEmotionDoesNotOverride(t *testing.T) {
	t.Parallel()

	resolver := NewMoodResolver(config.DefaultTunables())
	sentiment := models.LabelScore{Label: "positive", Score: 0.65}
	emotion := models.LabelScore{Label: "sadness", Score: 0.3}

	mood, energy, score := resolver.Resolve("a quiet day at work", sentiment, emotion)
	if mood != models.MoodOptimistic || energy != models.EnergyMedium {
		t.Fatalf("Resolve = (%s, %s), want (optimistic, medium)", mood, energy)
	}
	if score != sentiment.Score {
		t.Fatalf("score = %v, want sentiment score %v", score, sentiment.Score)
	}
}

func TestResolveUnknownEmotionLabelIgnored(t *testing.T) {
	t.Parallel()

	resolver := NewMoodResolver(config.DefaultTunables())
	sentiment := models.LabelScore{Label: "neutral", Score: 0.5}
	emotion := models.LabelScore{Label: "neutral", Score: 0.9}

	mood, _, _ := resolver.Resolve("a quiet day at work", sentiment, emotion)
	if mood != models.MoodFocused {
		t.Fatalf("mood = %s, want focused when emotion label has no mapping", mood)
	}
}

func TestResolveBusinessContextGuard(t *testing.T) {
	t.Parallel()

	resolver := NewMoodResolver(config.DefaultTunables())
	sentiment := models.LabelScore{Label: "positive", Score: 0.95}

	tests := []struct {
		name string
		text string
		want string
	}{
		{"competitor", "A well-funded competitor just raised a Series B", models.MoodFocused},
		{"funding", "Huge funding round announced in our space", models.MoodFocused},
		{"threat", "This is a real threat to our position", models.MoodFocused},
		{"no adversarial context", "We shipped the new release today", models.MoodExcited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mood, energy, _ := resolver.Resolve(tt.text, sentiment, models.LabelScore{})
			if mood != tt.want {
				t.Fatalf("mood = %s, want %s", mood, tt.want)
			}
			if energy != models.EnergyHigh {
				t.Fatalf("energy = %s, want high", energy)
			}
		})
	}
}
