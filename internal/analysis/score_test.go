package analysis

import (
	"strings"
	"testing"
)

func TestComputeBaseScore(t *testing.T) {
	longJD := strings.Repeat("a", 801)

	tests := []struct {
		name string
		in   ScoreInput
		want int
	}{
		{
			name: "bare minimum",
			in:   ScoreInput{JDText: "short"},
			want: 35,
		},
		{
			name: "categories add five each",
			in:   ScoreInput{JDText: "short", Categories: []string{"coreCS", "web"}},
			want: 45,
		},
		{
			name: "category bonus caps at thirty",
			in: ScoreInput{
				JDText:     "short",
				Categories: []string{"a", "b", "c", "d", "e", "f", "g"},
			},
			want: 65,
		},
		{
			name: "company and role add ten each",
			in:   ScoreInput{Company: "Acme", Role: "SDE", JDText: "short"},
			want: 55,
		},
		{
			name: "whitespace company does not count",
			in:   ScoreInput{Company: "   ", JDText: "short"},
			want: 35,
		},
		{
			name: "long jd adds ten",
			in:   ScoreInput{JDText: longJD},
			want: 45,
		},
		{
			name: "everything tops out at 95",
			in: ScoreInput{
				Company:    "Acme",
				Role:       "SDE",
				JDText:     longJD,
				Categories: []string{"coreCS", "languages", "web", "data", "cloud", "testing"},
			},
			want: 95,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeBaseScore(tc.in); got != tc.want {
				t.Fatalf("ComputeBaseScore = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestScoreBreakdownMatchesComputeBaseScore(t *testing.T) {
	in := ScoreInput{
		Company:    "Acme",
		Role:       "Backend Engineer",
		JDText:     strings.Repeat("b", 900),
		Categories: []string{"web", "data", "cloud"},
	}
	items, total := ScoreBreakdown(in)
	if total != ComputeBaseScore(in) {
		t.Fatalf("breakdown total %d != base score %d", total, ComputeBaseScore(in))
	}
	sum := 0
	for _, item := range items {
		sum += item.Value
	}
	if sum != total {
		t.Fatalf("item sum %d != total %d", sum, total)
	}
}

func TestDeriveFinalScore(t *testing.T) {
	tests := []struct {
		name       string
		base       int
		confidence map[string]string
		want       int
	}{
		{"no skills", 50, nil, 50},
		{"know adds two", 50, map[string]string{"React": ConfidenceKnow}, 52},
		{"practice subtracts two", 50, map[string]string{"React": ConfidencePractice}, 48},
		{
			"mixed",
			50,
			map[string]string{"React": ConfidenceKnow, "SQL": ConfidenceKnow, "AWS": ConfidencePractice},
			52,
		},
		{"unknown level ignored", 50, map[string]string{"React": "maybe"}, 50},
		{"clamped low", 1, map[string]string{"a": ConfidencePractice}, 0},
		{"clamped high", 99, map[string]string{"a": ConfidenceKnow}, 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveFinalScore(tc.base, tc.confidence); got != tc.want {
				t.Fatalf("DeriveFinalScore = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDeriveFinalScoreToggleRoundTrips(t *testing.T) {
	confidence := map[string]string{"React": ConfidencePractice, "SQL": ConfidencePractice}
	before := DeriveFinalScore(60, confidence)

	confidence["React"] = ConfidenceKnow
	flipped := DeriveFinalScore(60, confidence)
	if flipped != before+4 {
		t.Fatalf("flip practice->know should move score by 4, got %d -> %d", before, flipped)
	}

	confidence["React"] = ConfidencePractice
	if got := DeriveFinalScore(60, confidence); got != before {
		t.Fatalf("double toggle must restore score, got %d want %d", got, before)
	}
}

func TestClampScore(t *testing.T) {
	if got := ClampScore(-5); got != 0 {
		t.Fatalf("ClampScore(-5) = %d", got)
	}
	if got := ClampScore(105); got != 100 {
		t.Fatalf("ClampScore(105) = %d", got)
	}
	if got := ClampScore(42); got != 42 {
		t.Fatalf("ClampScore(42) = %d", got)
	}
}
