package services

import (
	"strings"

	"insightd/internal/models"
)

// GenerateHeading produces a short label for the entry. Category-
// specific keyword groups are checked in order, then mood/energy
// generics; the result is never empty.
func GenerateHeading(text, mood string, energy models.Energy, category models.Category) string {
	lower := strings.ToLower(text)

	if heading := categoryHeading(lower, category); heading != "" {
		return heading
	}

	switch {
	case mood == models.MoodExcited && energy == models.EnergyHigh:
		return "An energizing day for the business"
	case mood == models.MoodFrustrated || mood == models.MoodConcerned:
		return "Working through a tough stretch"
	case mood == models.MoodReflective:
		return "Reflecting on the journey"
	}
	return "Business journal entry"
}

func categoryHeading(text string, category models.Category) string {
	switch category {
	case models.CategoryChallenge:
		if containsAny(text, "burnout", "70-hour", "overwhelm") {
			if containsAny(text, "delegate", "hire", "coo") {
				return "Addressing burnout through delegation"
			}
			return "Managing founder burnout"
		}
		if containsAny(text, "competitor", "funding") {
			return "Navigating competitive pressure"
		}
		if containsAny(text, "outage", "failed", "cancelled") {
			return "Working through an operational setback"
		}
		if containsAny(text, "resignation", "handed in", "departing") {
			return "Navigating a key departure"
		}
		return "Facing a business challenge"

	case models.CategoryAchievement:
		// Revenue wording wins over the contract wording when both
		// appear; the number is usually the headline.
		if strings.Contains(text, "revenue") &&
			(containsAny(text, revenueUpKeywords...) || percentPattern.MatchString(text) || quarterPattern.MatchString(text)) {
			return "Strong revenue growth"
		}
		if containsAny(text, "contract", "deal", "signed", "closed") {
			return "Major contract win"
		}
		if containsAny(text, "milestone", "breakthrough") {
			return "A business breakthrough"
		}
		return "Celebrating a win"

	case models.CategoryPlanning:
		if containsAny(text, strategicTopics...) {
			return "Weighing a strategic pivot"
		}
		if containsAny(text, "government", "bid") {
			return "Preparing a competitive bid"
		}
		if containsAny(text, "roadmap", "timeline") {
			return "Mapping the road ahead"
		}
		return "Strategic planning session"

	case models.CategoryGrowth:
		if containsAny(text, "funding", "series", "raised", "investment") {
			return "Tracking the funding landscape"
		}
		if containsAny(text, "clients", "customers") {
			return "Customer growth momentum"
		}
		return "Scaling the business"

	case models.CategoryLearning:
		if containsAny(text, "feedback", "suggestion") {
			return "Learning from customer feedback"
		}
		return "A new business insight"
	}
	return ""
}
