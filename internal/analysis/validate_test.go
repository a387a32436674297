package analysis

import (
	"strings"
	"testing"
)

func validEntry() map[string]any {
	return map[string]any{
		"id":              "1725000000000-abc123def",
		"createdAt":       "2026-01-01T00:00:00Z",
		"jdText":          "some job description",
		"extractedSkills": map[string]any{"web": []any{"React"}},
		"questions":       []any{"q1"},
		"baseScore":       float64(55),
	}
}

func TestValidateAcceptsCompleteEntry(t *testing.T) {
	result := Validate(validEntry())
	if !result.IsValid {
		t.Fatalf("expected valid, got errors: %v", result.Errors)
	}
}

func TestValidateReportsEveryMissingField(t *testing.T) {
	result := Validate(map[string]any{})
	if result.IsValid {
		t.Fatal("expected invalid")
	}
	if len(result.Errors) != len(requiredFields) {
		t.Fatalf("expected %d errors, got %v", len(requiredFields), result.Errors)
	}
	for _, msg := range result.Errors {
		if !strings.HasPrefix(msg, "missing required field:") {
			t.Fatalf("unexpected error message: %q", msg)
		}
	}
}

func TestValidateTypeAndRangeChecks(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]any)
		message string
	}{
		{
			"score out of range",
			func(e map[string]any) { e["baseScore"] = float64(150) },
			"baseScore must be a number between 0 and 100",
		},
		{
			"score wrong type",
			func(e map[string]any) { e["baseScore"] = "95" },
			"baseScore must be a number between 0 and 100",
		},
		{
			"final score checked when present",
			func(e map[string]any) { e["finalScore"] = float64(-1) },
			"finalScore must be a number between 0 and 100",
		},
		{
			"questions wrong type",
			func(e map[string]any) { e["questions"] = "not a list" },
			"questions must be an array",
		},
		{
			"skills wrong type",
			func(e map[string]any) { e["extractedSkills"] = []any{"React"} },
			"extractedSkills must be an object",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entry := validEntry()
			tc.mutate(entry)
			result := Validate(entry)
			if result.IsValid {
				t.Fatal("expected invalid")
			}
			found := false
			for _, msg := range result.Errors {
				if msg == tc.message {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected %q in %v", tc.message, result.Errors)
			}
		})
	}
}

func TestValidateNilEntry(t *testing.T) {
	result := Validate(nil)
	if result.IsValid || len(result.Errors) == 0 {
		t.Fatalf("expected nil entry to be invalid with an error, got %+v", result)
	}
}

func TestIsValidEntry(t *testing.T) {
	if !IsValidEntry(validEntry()) {
		t.Fatal("expected valid entry to pass")
	}

	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"nil map", nil},
		{"missing id", func(e map[string]any) { delete(e, "id") }},
		{"id wrong type", func(e map[string]any) { e["id"] = 42 }},
		{"createdAt wrong type", func(e map[string]any) { e["createdAt"] = 7 }},
		{"jdText wrong type", func(e map[string]any) { e["jdText"] = []any{} }},
		{"baseScore wrong type", func(e map[string]any) { e["baseScore"] = "55" }},
		{"questions wrong type", func(e map[string]any) { e["questions"] = "q" }},
		{"skills wrong type", func(e map[string]any) { e["extractedSkills"] = "web" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.mutate == nil {
				if IsValidEntry(nil) {
					t.Fatal("nil entry must be invalid")
				}
				return
			}
			entry := validEntry()
			tc.mutate(entry)
			if IsValidEntry(entry) {
				t.Fatal("expected entry to be invalid")
			}
		})
	}
}

func TestIsValidEntryAllowsOutOfRangeScore(t *testing.T) {
	// Range violations are a Validate finding, not grounds for eviction.
	entry := validEntry()
	entry["baseScore"] = float64(150)
	if !IsValidEntry(entry) {
		t.Fatal("out-of-range score must not evict the entry")
	}
}
