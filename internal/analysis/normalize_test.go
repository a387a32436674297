package analysis

import (
	"encoding/json"
	"reflect"
	"testing"

	"placement-backend/internal/analysis/prep"
)

func TestNormalizeRecordDefaults(t *testing.T) {
	record := NormalizeRecord(map[string]any{})

	if record.ID != "" || record.JDText != "" {
		t.Fatalf("expected empty identity fields, got %+v", record)
	}
	if len(record.Plan7Days) != 7 {
		t.Fatalf("expected plan repaired to 7 days, got %d", len(record.Plan7Days))
	}
	for i, day := range record.Plan7Days {
		if day.Day != i+1 {
			t.Fatalf("expected day %d at slot %d, got %d", i+1, i, day.Day)
		}
	}
	if len(record.Questions) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(record.Questions))
	}
	if record.BaseScore != 0 || record.FinalScore != 0 {
		t.Fatalf("expected zero scores, got base=%d final=%d", record.BaseScore, record.FinalScore)
	}
	if record.SkillConfidenceMap == nil || len(record.SkillConfidenceMap) != 0 {
		t.Fatalf("expected empty confidence map, got %v", record.SkillConfidenceMap)
	}
}

func TestNormalizeRecordNilInput(t *testing.T) {
	record := NormalizeRecord(nil)
	if len(record.Plan7Days) != 7 || len(record.Questions) != 10 {
		t.Fatalf("nil input must still yield repaired structure: %+v", record)
	}
}

func TestNormalizeRecordIdempotent(t *testing.T) {
	raw := map[string]any{
		"id":        "id-1",
		"createdAt": "2026-01-01T00:00:00Z",
		"jdText":    "React and SQL role",
		"extractedSkills": map[string]any{
			"web":  []any{"React"},
			"data": []any{"SQL"},
		},
		"questions":          []any{"q1", "q2"},
		"baseScore":          float64(50),
		"skillConfidenceMap": map[string]any{"React": "know"},
		"plan7Days": []any{
			map[string]any{"day": float64(3), "focus": "Custom", "tasks": []any{"t1"}},
		},
	}

	once := NormalizeRecord(raw)

	payload, err := json.Marshal(once)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var roundTrip map[string]any
	if err := json.Unmarshal(payload, &roundTrip); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	twice := NormalizeRecord(roundTrip)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("normalization not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestNormalizeSkillsLegacyShapes(t *testing.T) {
	t.Run("nested label and skills", func(t *testing.T) {
		record := NormalizeRecord(map[string]any{
			"extractedSkills": map[string]any{
				"web": map[string]any{"label": "Web Development", "skills": []any{"React", "CSS"}},
			},
		})
		if !reflect.DeepEqual(record.ExtractedSkills.Web, []string{"React", "CSS"}) {
			t.Fatalf("expected nested skills lifted, got %v", record.ExtractedSkills.Web)
		}
	})

	t.Run("legacy general bucket", func(t *testing.T) {
		record := NormalizeRecord(map[string]any{
			"extractedSkills": map[string]any{"general": []any{"whatever"}},
		})
		if !reflect.DeepEqual(record.ExtractedSkills.Other, FallbackSkills) {
			t.Fatalf("expected fallback skills, got %v", record.ExtractedSkills.Other)
		}
	})

	t.Run("cloudDevOps alias", func(t *testing.T) {
		record := NormalizeRecord(map[string]any{
			"extractedSkills": map[string]any{"cloudDevOps": []any{"Docker"}},
		})
		if !reflect.DeepEqual(record.ExtractedSkills.Cloud, []string{"Docker"}) {
			t.Fatalf("expected cloudDevOps mapped to cloud, got %v", record.ExtractedSkills.Cloud)
		}
	})
}

func TestNormalizeConfidenceMap(t *testing.T) {
	record := NormalizeRecord(map[string]any{
		"extractedSkills": map[string]any{"web": []any{"React", "CSS"}},
		"skillConfidenceMap": map[string]any{
			"React":   "know",
			"CSS":     "somewhere",
			"Phantom": "know",
		},
	})

	want := map[string]string{"React": "know", "CSS": "practice"}
	if !reflect.DeepEqual(record.SkillConfidenceMap, want) {
		t.Fatalf("confidence map = %v, want %v", record.SkillConfidenceMap, want)
	}
}

func TestNormalizeRecomputesFinalScore(t *testing.T) {
	record := NormalizeRecord(map[string]any{
		"extractedSkills":    map[string]any{"web": []any{"React"}},
		"baseScore":          float64(50),
		"skillConfidenceMap": map[string]any{"React": "know"},
		"finalScore":         float64(99),
	})
	if record.FinalScore != 52 {
		t.Fatalf("final score must be re-derived, got %d", record.FinalScore)
	}
}

func TestNormalizeClampsBaseScore(t *testing.T) {
	record := NormalizeRecord(map[string]any{"baseScore": float64(300)})
	if record.BaseScore != 100 {
		t.Fatalf("expected clamped base score 100, got %d", record.BaseScore)
	}
}

func TestNormalizePlanRepair(t *testing.T) {
	record := NormalizeRecord(map[string]any{
		"plan7Days": []any{
			map[string]any{"day": float64(2), "focus": "Custom Two", "tasks": []any{"a"}},
			map[string]any{"day": float64(2), "focus": "Duplicate", "tasks": []any{"b"}},
			map[string]any{"day": float64(9), "focus": "Out of range"},
			"garbage",
		},
	})

	if len(record.Plan7Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(record.Plan7Days))
	}
	if record.Plan7Days[1].Focus != "Custom Two" {
		t.Fatalf("first entry for a day must win, got %q", record.Plan7Days[1].Focus)
	}
	defaults := prep.DefaultPlan()
	if record.Plan7Days[0].Focus != defaults[0].Focus {
		t.Fatalf("missing days must backfill from defaults, got %q", record.Plan7Days[0].Focus)
	}
}

func TestNormalizeChecklistKeyedObject(t *testing.T) {
	record := NormalizeRecord(map[string]any{
		"checklist": map[string]any{
			"round10": map[string]any{"roundTitle": "Round Ten", "items": []any{"x"}},
			"round2":  map[string]any{"roundTitle": "Round Two", "items": []any{"y"}},
			"round1":  map[string]any{"title": "Round One", "items": []any{"z"}},
		},
	})

	titles := make([]string, 0, len(record.Checklist))
	for _, round := range record.Checklist {
		titles = append(titles, round.RoundTitle)
	}
	want := []string{"Round One", "Round Two", "Round Ten"}
	if !reflect.DeepEqual(titles, want) {
		t.Fatalf("keyed checklist order = %v, want %v", titles, want)
	}
}

func TestNormalizeUpdatedAtFallsBackToCreatedAt(t *testing.T) {
	record := NormalizeRecord(map[string]any{"createdAt": "2026-01-01T00:00:00Z"})
	if record.UpdatedAt != "2026-01-01T00:00:00Z" {
		t.Fatalf("expected updatedAt to default to createdAt, got %q", record.UpdatedAt)
	}
}
