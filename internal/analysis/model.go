package analysis

import (
	"encoding/json"

	"placement-backend/internal/analysis/prep"
)

// Record is the canonical persisted analysis unit. Timestamps are
// ISO 8601 strings because the stored JSON array is the compatibility
// contract with earlier versions of this data.
type Record struct {
	ID                 string                `json:"id"`
	CreatedAt          string                `json:"createdAt"`
	UpdatedAt          string                `json:"updatedAt"`
	Company            string                `json:"company"`
	Role               string                `json:"role"`
	JDText             string                `json:"jdText"`
	ExtractedSkills    CategorizedSkills     `json:"extractedSkills"`
	CompanyIntel       *prep.CompanyIntel    `json:"companyIntel,omitempty"`
	RoundMapping       []prep.Round          `json:"roundMapping"`
	Checklist          []prep.ChecklistRound `json:"checklist"`
	Plan7Days          []prep.PlanDay        `json:"plan7Days"`
	Questions          []string              `json:"questions"`
	BaseScore          int                   `json:"baseScore"`
	SkillConfidenceMap map[string]string     `json:"skillConfidenceMap"`
	FinalScore         int                   `json:"finalScore"`
}

// ToMap converts the record to its raw JSON object form, the shape the
// store merges patches against.
func (r Record) ToMap() (map[string]any, error) {
	payload, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}
