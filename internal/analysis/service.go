package analysis

import (
	"context"
	"strings"

	"placement-backend/internal/analysis/prep"
)

// Service contains the analysis lifecycle logic: extraction, scoring,
// prep generation, persistence and confidence re-scoring.
type Service struct {
	Store *Store
}

// AnalyzeInput is the raw user submission.
type AnalyzeInput struct {
	Company string
	Role    string
	JDText  string
}

// AnalyzeOutput pairs the created record with advisory findings that
// are not part of the persisted data.
type AnalyzeOutput struct {
	Record         Record
	TooShort       bool
	ScoreBreakdown []ScoreBreakdownItem
}

// Analyze runs the full pipeline on a job description and persists the
// resulting record. An empty job description is rejected before
// extraction runs; a short one only produces a warning flag.
func (s *Service) Analyze(ctx context.Context, in AnalyzeInput) (AnalyzeOutput, error) {
	company := strings.TrimSpace(in.Company)
	role := strings.TrimSpace(in.Role)
	jdText := strings.TrimSpace(in.JDText)
	if jdText == "" {
		return AnalyzeOutput{}, ErrEmptyJobDescription
	}

	skills := Extract(jdText)
	categories := skills.PresentCategories()

	scoreInput := ScoreInput{
		Company:    company,
		Role:       role,
		JDText:     jdText,
		Categories: categories,
	}
	baseScore := ComputeBaseScore(scoreInput)
	breakdown, _ := ScoreBreakdown(scoreInput)

	intel := prep.GenerateCompanyIntel(company, jdText)
	ruleSkills := prep.Skills(skills.ByCategory())

	confidence := make(map[string]string)
	for _, skill := range skills.All() {
		confidence[skill] = ConfidencePractice
	}

	record := Record{
		Company:            company,
		Role:               role,
		JDText:             jdText,
		ExtractedSkills:    skills,
		CompanyIntel:       &intel,
		RoundMapping:       prep.RoundMapping(intel.Size, ruleSkills),
		Checklist:          prep.Checklist(ruleSkills),
		Plan7Days:          prep.SevenDayPlan(ruleSkills),
		Questions:          prep.Questions(ruleSkills),
		BaseScore:          baseScore,
		SkillConfidenceMap: confidence,
		FinalScore:         DeriveFinalScore(baseScore, confidence),
	}

	created, err := s.Store.Create(ctx, record)
	if err != nil {
		return AnalyzeOutput{}, err
	}
	return AnalyzeOutput{
		Record:         created,
		TooShort:       IsTooShort(jdText),
		ScoreBreakdown: breakdown,
	}, nil
}

// List returns the stored history, newest first.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.Store.List(ctx)
}

// Get returns one record by id.
func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	return s.Store.Get(ctx, id)
}

// SetConfidence assigns a confidence level to a detected skill and
// re-derives the final score from scratch. The skill must be part of
// the record's extracted skills.
func (s *Service) SetConfidence(ctx context.Context, id, skill, level string) (Record, error) {
	if level != ConfidenceKnow && level != ConfidencePractice {
		return Record{}, ErrInvalidConfidence
	}
	record, err := s.Store.Get(ctx, id)
	if err != nil {
		return Record{}, err
	}
	if _, ok := record.SkillConfidenceMap[skill]; !ok {
		return Record{}, ErrUnknownSkill
	}
	record.SkillConfidenceMap[skill] = level
	return s.applyConfidence(ctx, record)
}

// ToggleConfidence flips a skill between "know" and "practice". The
// toggle is a strict two-state flip; toggling twice restores the
// original level.
func (s *Service) ToggleConfidence(ctx context.Context, id, skill string) (Record, error) {
	record, err := s.Store.Get(ctx, id)
	if err != nil {
		return Record{}, err
	}
	current, ok := record.SkillConfidenceMap[skill]
	if !ok {
		return Record{}, ErrUnknownSkill
	}
	if current == ConfidenceKnow {
		record.SkillConfidenceMap[skill] = ConfidencePractice
	} else {
		record.SkillConfidenceMap[skill] = ConfidenceKnow
	}
	return s.applyConfidence(ctx, record)
}

func (s *Service) applyConfidence(ctx context.Context, record Record) (Record, error) {
	confidence := make(map[string]any, len(record.SkillConfidenceMap))
	for skill, level := range record.SkillConfidenceMap {
		confidence[skill] = level
	}
	patch := map[string]any{
		"skillConfidenceMap": confidence,
		"finalScore":         DeriveFinalScore(record.BaseScore, record.SkillConfidenceMap),
		"updatedAt":          nowISO(),
	}
	return s.Store.Update(ctx, record.ID, patch)
}

// Delete removes a record; deleting an absent id succeeds.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Store.Delete(ctx, id)
}

// Clear wipes the whole history.
func (s *Service) Clear(ctx context.Context) error {
	return s.Store.Clear(ctx)
}
