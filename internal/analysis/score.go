package analysis

import "strings"

// Confidence values a user can assign to a detected skill.
const (
	ConfidenceKnow     = "know"
	ConfidencePractice = "practice"
)

const (
	scoreBase           = 35
	perCategoryBonus    = 5
	categoryBonusCap    = 30
	companyBonus        = 10
	roleBonus           = 10
	detailedJDBonus     = 10
	detailedJDThreshold = 800
	confidenceStep      = 2
)

// ScoreInput carries the metadata the base score is computed from.
type ScoreInput struct {
	Company    string
	Role       string
	JDText     string
	Categories []string
}

// ComputeBaseScore derives the readiness base score: 35 plus 5 per
// detected category (capped at 30), plus 10 each for a named company,
// a named role and a job description over 800 characters. The
// documented weights top out at 95; the result is clamped to [0,100]
// rather than assumed to self-bound.
func ComputeBaseScore(in ScoreInput) int {
	score := scoreBase

	categoryBonus := len(in.Categories) * perCategoryBonus
	if categoryBonus > categoryBonusCap {
		categoryBonus = categoryBonusCap
	}
	score += categoryBonus

	if strings.TrimSpace(in.Company) != "" {
		score += companyBonus
	}
	if strings.TrimSpace(in.Role) != "" {
		score += roleBonus
	}
	if len(in.JDText) > detailedJDThreshold {
		score += detailedJDBonus
	}

	return ClampScore(score)
}

// ScoreBreakdownItem is one line of the score explanation.
type ScoreBreakdownItem struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// ScoreBreakdown itemizes the base-score bonuses for display. The
// returned total equals ComputeBaseScore for the same input.
func ScoreBreakdown(in ScoreInput) ([]ScoreBreakdownItem, int) {
	categoryBonus := len(in.Categories) * perCategoryBonus
	if categoryBonus > categoryBonusCap {
		categoryBonus = categoryBonusCap
	}

	items := []ScoreBreakdownItem{
		{Label: "Base Score", Value: scoreBase},
		{Label: "Detected Categories", Value: categoryBonus},
	}
	if strings.TrimSpace(in.Company) != "" {
		items = append(items, ScoreBreakdownItem{Label: "Company Provided", Value: companyBonus})
	}
	if strings.TrimSpace(in.Role) != "" {
		items = append(items, ScoreBreakdownItem{Label: "Role Provided", Value: roleBonus})
	}
	if len(in.JDText) > detailedJDThreshold {
		items = append(items, ScoreBreakdownItem{Label: "Detailed JD", Value: detailedJDBonus})
	}

	total := 0
	for _, item := range items {
		total += item.Value
	}
	return items, ClampScore(total)
}

// DeriveFinalScore recomputes the final score from scratch: +2 per
// "know" entry, -2 per "practice" entry, other values contribute
// nothing, clamped to [0,100]. It is pure; callers must re-derive on
// every confidence change instead of patching incrementally.
func DeriveFinalScore(baseScore int, confidence map[string]string) int {
	adjustment := 0
	for _, value := range confidence {
		switch value {
		case ConfidenceKnow:
			adjustment += confidenceStep
		case ConfidencePractice:
			adjustment -= confidenceStep
		}
	}
	return ClampScore(baseScore + adjustment)
}

// ClampScore bounds a score to [0,100].
func ClampScore(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}
