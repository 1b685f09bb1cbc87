package services

import (
	"strings"

	"insightd/internal/models"
)

// crossCategoryInsight is the last-resort advice string; it only fires
// when no category branch contributed anything.
const crossCategoryInsight = "Keep journaling consistently; patterns across entries are where the real signal lives."

// GenerateInsights returns one or two advice snippets: the first
// matching sub-condition within the category, then the category-level
// generic. Never empty, never more than two.
func GenerateInsights(text, mood string, category models.Category) []string {
	lower := strings.ToLower(text)
	insights := make([]string, 0, 2)

	switch category {
	case models.CategoryChallenge:
		switch {
		case containsAny(lower, "competitor", "funding"):
			insights = append(insights, "A well-funded competitor entering your space is uncomfortable, but it also validates the market you bet on. Focus on the segments where you can out-serve them rather than matching their spend.")
		case containsAny(lower, "burnout", "70-hour", "overwhelm"):
			insights = append(insights, "Sustained long weeks are a signal to delegate, not to push harder. Identify the two tasks only you can do and start handing off the rest.")
		case containsAny(lower, "resignation", "handed in", "departing"):
			insights = append(insights, "A key departure hurts, but it is also a forcing function to document knowledge and rebalance responsibilities before the next one.")
		}
		insights = append(insights, "Difficult stretches compound into resilience. Write down what this challenge is teaching you about the business.")

	case models.CategoryAchievement:
		switch {
		case strings.Contains(lower, "revenue"):
			insights = append(insights, "Strong revenue movement is worth celebrating, and worth decomposing: know which channel or decision drove it so you can repeat it.")
		case containsAny(lower, "contract", "deal", "signed"):
			insights = append(insights, "A signed contract is proof the offer works. Capture what closed this deal while it is fresh.")
		}
		insights = append(insights, "Record wins like this one in detail. They are the evidence you will need on harder days.")

	case models.CategoryPlanning:
		if containsAny(lower, strategicTopics...) {
			insights = append(insights, "Pricing and model changes ripple through everything. Test the new structure with a small cohort before committing the whole base.")
		}
		insights = append(insights, "Good plans name their assumptions. List the two things that must be true for this plan to work.")

	case models.CategoryGrowth:
		if containsAny(lower, "funding", "series", "raised") {
			insights = append(insights, "Funding news in your market changes the tempo. Decide deliberately whether to match the pace or double down on efficiency.")
		}
		insights = append(insights, "Growth strains process before it strains people. Check which of your systems is closest to its limit.")

	case models.CategoryLearning:
		if containsAny(lower, "feedback", "suggestion") {
			insights = append(insights, "Customer feedback is cheapest before you build. Close the loop with the people who offered it.")
		}
		insights = append(insights, "Insights fade fast. Turn this one into a concrete next step this week.")

	case models.CategoryReflection:
		if mood == models.MoodReflective || mood == models.MoodUncertain {
			insights = append(insights, "Uncertain stretches are normal. Re-read your last few entries and notice what has already resolved itself.")
		}
		insights = append(insights, "Regular reflection is a competitive advantage. Revisit this entry in a month and note what changed.")
	}

	if len(insights) == 0 {
		insights = append(insights, crossCategoryInsight)
	}
	if len(insights) > 2 {
		insights = insights[:2]
	}
	return insights
}
