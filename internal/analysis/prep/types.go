// Package prep generates preparation artifacts (plans, checklists,
// questions, interview-round mappings and company intel) from detected
// skills using deterministic rule tables.
package prep

// PlanDay is one entry of the 7-day preparation plan.
type PlanDay struct {
	Day   int      `json:"day"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
}

// ChecklistRound groups checklist items under one interview round.
type ChecklistRound struct {
	RoundTitle string   `json:"roundTitle"`
	Items      []string `json:"items"`
}

// Round describes one interview round of the predicted process.
type Round struct {
	RoundNumber  int      `json:"roundNumber"`
	Title        string   `json:"title"`
	Focus        []string `json:"focus"`
	Description  string   `json:"description"`
	WhyItMatters string   `json:"whyItMatters"`
	Duration     string   `json:"duration"`
	Difficulty   string   `json:"difficulty"`
	Tips         []string `json:"tips"`
}

// HiringFocus summarizes what a company of a given size screens for.
type HiringFocus struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	KeyAreas       []string `json:"keyAreas"`
	InterviewStyle string   `json:"interviewStyle"`
}

// CompanyIntel is heuristic company intelligence. IsDemo marks it as
// rule-generated rather than sourced data.
type CompanyIntel struct {
	CompanyName string      `json:"companyName"`
	Industry    string      `json:"industry"`
	Size        string      `json:"size"`
	HiringFocus HiringFocus `json:"hiringFocus"`
	IsDemo      bool        `json:"isDemo"`
}

// Company size buckets.
const (
	SizeStartup    = "Startup"
	SizeMidSize    = "Mid-size"
	SizeEnterprise = "Enterprise"
)

// Skills is the detected-skill input to every generator, keyed by
// category ("coreCS", "languages", "web", "data", "cloud", "testing",
// "other"). A fallback-only result carries skills under "other" alone
// and trips none of the rule predicates.
type Skills map[string][]string
