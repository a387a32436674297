package prep

import "strings"

// realCategories are the categories rule predicates consider; the
// "other" fallback bucket never triggers a rule.
var realCategories = []string{"coreCS", "languages", "web", "data", "cloud", "testing"}

func (s Skills) has(category, keyword string) bool {
	needle := strings.ToLower(keyword)
	for _, skill := range s[category] {
		if strings.Contains(strings.ToLower(skill), needle) {
			return true
		}
	}
	return false
}

func (s Skills) hasAny(categories ...string) bool {
	for _, category := range categories {
		if len(s[category]) > 0 {
			return true
		}
	}
	return false
}

func (s Skills) hasAnyReal() bool {
	return s.hasAny(realCategories...)
}
