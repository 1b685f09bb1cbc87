package services

import (
	"regexp"
	"strings"

	"insightd/internal/models"
)

// The category cascade is an ordered rule list: the first matching,
// non-suppressed rule wins. The keyword sets overlap heavily on
// purpose ("pivot" could be planning or challenge), so branch order is
// load-bearing and pinned by golden tests. A suppressed rule either
// redirects to another category or falls through to the next rule.

type ruleInput struct {
	text   string // lowercased
	mood   string
	energy models.Energy
}

type categoryRule struct {
	name     string
	category models.Category
	match    func(in ruleInput) bool
	suppress func(in ruleInput) bool
	// redirect is the category to return when the rule matched but was
	// suppressed. Empty means fall through to the next rule.
	redirect models.Category
}

var (
	deliberationPhrases = []string{"considering", "debating", "thinking about"}
	strategicTopics     = []string{"pivot", "freemium", "subscription model", "pricing", "business model"}
	planningKeywords    = append([]string{
		"plan", "strategy", "roadmap", "timeline", "future", "prepare", "government", "bid",
		"considering", "debating", "thinking about",
	}, strategicTopics...)

	challengeKeywords = []string{
		"problem", "difficult", "outage", "failed", "resignation", "burnout",
		"setback", "risk", "struggling", "overwhelmed", "70-hour", "cancelled",
		"handed in her", "handed in his", "departing", "major setback",
	}
	launchSuccessKeywords = []string{"success", "download", "positive", "response", "already"}

	achievementKeywords = []string{
		"contract", "deal", "signed", "closed", "won", "achieved", "completed",
		"milestone", "breakthrough", "success", "record", "incredible",
	}
	revenueUpKeywords     = []string{"hit", "up", "growth", "million"}
	quarterMetricKeywords = []string{"up", "growth", "hit", "increase", "record", "million"}

	growthKeywords = []string{
		"revenue", "growth", "expand", "scaling", "clients", "customers",
		"funding", "investment", "series", "competitor", "raised", "million",
	}
	reflectiveStruggleKeywords = []string{"struggling", "pressure", "overwhelming"}

	learningKeywords = []string{
		"learned", "feedback", "insight", "understand", "realize", "suggestion",
		"customer feedback", "prefer",
	}

	percentPattern = regexp.MustCompile(`\d+(\.\d+)?%`)
	quarterPattern = regexp.MustCompile(`\bq[1-4]\b|quarter`)
)

var categoryRules = []categoryRule{
	{
		// Early planning check: active deliberation over a strategic
		// topic. The broad planning vocabulary is re-checked late in
		// the cascade so that "pivot" alongside challenge language
		// still classifies as a challenge.
		name:     "planning-deliberation",
		category: models.CategoryPlanning,
		match: func(in ruleInput) bool {
			return containsAny(in.text, deliberationPhrases...) &&
				containsAny(in.text, strategicTopics...)
		},
	},
	{
		name:     "challenge",
		category: models.CategoryChallenge,
		match: func(in ruleInput) bool {
			if containsAny(in.text, challengeKeywords...) {
				return true
			}
			// Pressure language counts unless it is investor-framed.
			if containsAny(in.text, "pressure", "stress") &&
				!strings.Contains(in.text, "investor expectations") {
				return true
			}
			return false
		},
		// A launch described alongside success signals is not a
		// challenge even when setback vocabulary appears.
		suppress: func(in ruleInput) bool {
			return strings.Contains(in.text, "launched") &&
				containsAny(in.text, launchSuccessKeywords...)
		},
	},
	{
		name:     "achievement",
		category: models.CategoryAchievement,
		match: func(in ruleInput) bool {
			if containsAny(in.text, achievementKeywords...) {
				return true
			}
			if positiveRevenueSignal(in.text) {
				return true
			}
			return quarterPattern.MatchString(in.text) &&
				containsAny(in.text, quarterMetricKeywords...)
		},
		// Deliberation over a win that has not happened yet belongs to
		// planning. Redirect rather than fall through: growth vocabulary
		// ("revenue", "million") would otherwise capture the text before
		// the late planning branch gets a look.
		suppress: func(in ruleInput) bool {
			return containsAny(in.text, deliberationPhrases...)
		},
		redirect: models.CategoryPlanning,
	},
	{
		name:     "growth",
		category: models.CategoryGrowth,
		match: func(in ruleInput) bool {
			return containsAny(in.text, growthKeywords...)
		},
		// Growth vocabulary in a low-energy reflective entry about
		// struggling is a challenge wearing growth clothes.
		suppress: func(in ruleInput) bool {
			return in.mood == models.MoodReflective &&
				in.energy == models.EnergyLow &&
				containsAny(in.text, reflectiveStruggleKeywords...)
		},
		redirect: models.CategoryChallenge,
	},
	{
		name:     "planning",
		category: models.CategoryPlanning,
		match: func(in ruleInput) bool {
			return containsAny(in.text, planningKeywords...)
		},
	},
	{
		name:     "learning",
		category: models.CategoryLearning,
		match: func(in ruleInput) bool {
			return containsAny(in.text, learningKeywords...)
		},
	},
}

func positiveRevenueSignal(text string) bool {
	if !strings.Contains(text, "revenue") {
		return false
	}
	return containsAny(text, revenueUpKeywords...) || percentPattern.MatchString(text)
}

// ClassifyCategory runs the cascade and returns the first surviving
// match, defaulting to reflection.
func ClassifyCategory(text, mood string, energy models.Energy) models.Category {
	in := ruleInput{
		text:   strings.ToLower(text),
		mood:   mood,
		energy: energy,
	}
	for _, rule := range categoryRules {
		if !rule.match(in) {
			continue
		}
		if rule.suppress != nil && rule.suppress(in) {
			if rule.redirect != "" {
				return rule.redirect
			}
			continue
		}
		return rule.category
	}
	return models.CategoryReflection
}
