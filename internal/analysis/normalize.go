package analysis

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"placement-backend/internal/analysis/prep"
)

// NormalizeRecord coerces a loosely-shaped raw object, possibly from an
// older storage format, into a Record satisfying every documented
// invariant. It never fails: structurally invalid fields degrade to
// their defaults. Normalization is idempotent.
func NormalizeRecord(raw map[string]any) Record {
	if raw == nil {
		raw = map[string]any{}
	}

	skills := normalizeSkills(raw["extractedSkills"])
	baseScore := ClampScore(asInt(raw["baseScore"]))
	confidence := normalizeConfidenceMap(raw["skillConfidenceMap"], skills)

	createdAt := asString(raw["createdAt"])
	updatedAt := asString(raw["updatedAt"])
	if updatedAt == "" {
		updatedAt = createdAt
	}

	return Record{
		ID:                 asString(raw["id"]),
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
		Company:            asString(raw["company"]),
		Role:               asString(raw["role"]),
		JDText:             asString(raw["jdText"]),
		ExtractedSkills:    skills,
		CompanyIntel:       normalizeIntel(raw["companyIntel"]),
		RoundMapping:       normalizeRounds(raw["roundMapping"]),
		Checklist:          normalizeChecklist(raw["checklist"]),
		Plan7Days:          normalizePlan(raw["plan7Days"]),
		Questions:          prep.PadQuestions(asStringSlice(raw["questions"])),
		BaseScore:          baseScore,
		SkillConfidenceMap: confidence,
		FinalScore:         DeriveFinalScore(baseScore, confidence),
	}
}

// normalizeSkills accepts the canonical categorized shape, the older
// shape that nested skills under {label, skills}, and the legacy flat
// fallback shape keyed by "general". Anything else yields the all-empty
// structure.
func normalizeSkills(value any) CategorizedSkills {
	raw, ok := value.(map[string]any)
	if !ok {
		return CategorizedSkills{}
	}

	if _, legacy := raw["general"]; legacy {
		return CategorizedSkills{Other: append([]string(nil), FallbackSkills...)}
	}

	// The cloud category was once keyed "cloudDevOps".
	cloud := raw[CategoryCloud]
	if cloud == nil {
		cloud = raw["cloudDevOps"]
	}

	return CategorizedSkills{
		CoreCS:    normalizeCategory(raw[CategoryCoreCS]),
		Languages: normalizeCategory(raw[CategoryLanguages]),
		Web:       normalizeCategory(raw[CategoryWeb]),
		Data:      normalizeCategory(raw[CategoryData]),
		Cloud:     normalizeCategory(cloud),
		Testing:   normalizeCategory(raw[CategoryTesting]),
		Other:     normalizeCategory(raw[CategoryOther]),
	}
}

func normalizeCategory(value any) []string {
	if nested, ok := value.(map[string]any); ok {
		value = nested["skills"]
	}
	return asStringSlice(value)
}

func normalizeConfidenceMap(value any, skills CategorizedSkills) map[string]string {
	out := make(map[string]string)
	for _, skill := range skills.All() {
		out[skill] = ConfidencePractice
	}
	raw, ok := value.(map[string]any)
	if !ok {
		return out
	}
	for skill, confidence := range raw {
		level, ok := confidence.(string)
		if !ok {
			continue
		}
		if level != ConfidenceKnow && level != ConfidencePractice {
			continue
		}
		if _, known := out[skill]; known {
			out[skill] = level
		}
	}
	return out
}

func normalizeIntel(value any) *prep.CompanyIntel {
	raw, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	intel := prep.CompanyIntel{
		CompanyName: asString(raw["companyName"]),
		Industry:    asString(raw["industry"]),
		Size:        normalizeSize(asString(raw["size"])),
		IsDemo:      asBool(raw["isDemo"]),
	}
	if focus, ok := raw["hiringFocus"].(map[string]any); ok {
		intel.HiringFocus = prep.HiringFocus{
			Title:          asString(focus["title"]),
			Description:    asString(focus["description"]),
			KeyAreas:       asStringSlice(focus["keyAreas"]),
			InterviewStyle: asString(focus["interviewStyle"]),
		}
	}
	return &intel
}

func normalizeSize(value string) string {
	switch value {
	case prep.SizeStartup, prep.SizeMidSize, prep.SizeEnterprise:
		return value
	default:
		return prep.SizeStartup
	}
}

func normalizeRounds(value any) []prep.Round {
	items, ok := value.([]any)
	if !ok {
		return []prep.Round{}
	}
	out := make([]prep.Round, 0, len(items))
	for _, item := range items {
		raw, ok := item.(map[string]any)
		if !ok {
			continue
		}
		number := asInt(raw["roundNumber"])
		if number < 1 {
			number = 1
		}
		out = append(out, prep.Round{
			RoundNumber:  number,
			Title:        asString(raw["title"]),
			Focus:        asStringSlice(raw["focus"]),
			Description:  asString(raw["description"]),
			WhyItMatters: asString(raw["whyItMatters"]),
			Duration:     asString(raw["duration"]),
			Difficulty:   asString(raw["difficulty"]),
			Tips:         asStringSlice(raw["tips"]),
		})
	}
	return out
}

// normalizeChecklist accepts the list shape and the legacy keyed-object
// shape ({"round1": {...}, "round2": {...}}). Keyed entries are ordered
// by the number embedded in their key so conversion is deterministic.
func normalizeChecklist(value any) []prep.ChecklistRound {
	switch raw := value.(type) {
	case []any:
		out := make([]prep.ChecklistRound, 0, len(raw))
		for _, item := range raw {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			out = append(out, checklistRoundFromMap(entry))
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(raw))
		for key := range raw {
			keys = append(keys, key)
		}
		sort.Slice(keys, func(i, j int) bool {
			ni, nj := trailingNumber(keys[i]), trailingNumber(keys[j])
			if ni != nj {
				return ni < nj
			}
			return keys[i] < keys[j]
		})
		out := make([]prep.ChecklistRound, 0, len(keys))
		for _, key := range keys {
			entry, ok := raw[key].(map[string]any)
			if !ok {
				continue
			}
			out = append(out, checklistRoundFromMap(entry))
		}
		return out
	default:
		return []prep.ChecklistRound{}
	}
}

func checklistRoundFromMap(raw map[string]any) prep.ChecklistRound {
	title := asString(raw["roundTitle"])
	if title == "" {
		title = asString(raw["title"])
	}
	return prep.ChecklistRound{
		RoundTitle: title,
		Items:      asStringSlice(raw["items"]),
	}
}

// normalizePlan repairs the 7-day plan: provided entries with a day in
// 1..7 claim their slot (first one wins), every missing slot is filled
// from the default template, and anything else is discarded.
func normalizePlan(value any) []prep.PlanDay {
	byDay := make(map[int]prep.PlanDay)
	if items, ok := value.([]any); ok {
		for _, item := range items {
			raw, ok := item.(map[string]any)
			if !ok {
				continue
			}
			day := asInt(raw["day"])
			if day < 1 || day > 7 {
				continue
			}
			if _, taken := byDay[day]; taken {
				continue
			}
			focus := asString(raw["focus"])
			if focus == "" {
				focus = asString(raw["title"])
			}
			byDay[day] = prep.PlanDay{
				Day:   day,
				Focus: focus,
				Tasks: asStringSlice(raw["tasks"]),
			}
		}
	}

	defaults := prep.DefaultPlan()
	out := make([]prep.PlanDay, 0, 7)
	for day := 1; day <= 7; day++ {
		if entry, ok := byDay[day]; ok {
			out = append(out, entry)
			continue
		}
		out = append(out, defaults[day-1])
	}
	return out
}

func trailingNumber(key string) int {
	i := len(key)
	for i > 0 && key[i-1] >= '0' && key[i-1] <= '9' {
		i--
	}
	if i == len(key) {
		return 0
	}
	n, _ := strconv.Atoi(key[i:])
	return n
}

func asString(value any) string {
	s, _ := value.(string)
	return strings.TrimSpace(s)
}

func asStringSlice(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// asInt coerces JSON numbers (and numeric strings from very old
// entries) to int; anything non-numeric becomes 0.
func asInt(value any) int {
	switch n := value.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0
		}
		return int(parsed)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return int(parsed)
	default:
		return 0
	}
}

func asBool(value any) bool {
	b, _ := value.(bool)
	return b
}

// nowISO returns the current UTC time in the stored timestamp format.
func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
