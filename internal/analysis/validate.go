package analysis

import "fmt"

// requiredFields must be present for a stored entry to be considered
// recoverable at all.
var requiredFields = []string{"id", "createdAt", "jdText", "extractedSkills", "questions", "baseScore"}

// ValidationResult reports validation findings as human-readable
// strings instead of an error; callers decide how to surface them.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// Validate checks a raw record for required fields and basic type and
// range conformance. It never rejects writes by itself; the store uses
// it to describe why an entry was quarantined.
func Validate(raw map[string]any) ValidationResult {
	if raw == nil {
		return ValidationResult{IsValid: false, Errors: []string{"entry is not an object"}}
	}

	var errs []string
	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			errs = append(errs, fmt.Sprintf("missing required field: %s", field))
		}
	}

	if value, ok := raw["baseScore"]; ok && !isScore(value) {
		errs = append(errs, "baseScore must be a number between 0 and 100")
	}
	if value, ok := raw["finalScore"]; ok && !isScore(value) {
		errs = append(errs, "finalScore must be a number between 0 and 100")
	}
	if value, ok := raw["questions"]; ok {
		if _, isList := value.([]any); !isList {
			errs = append(errs, "questions must be an array")
		}
	}
	if value, ok := raw["extractedSkills"]; ok {
		if _, isObject := value.(map[string]any); !isObject {
			errs = append(errs, "extractedSkills must be an object")
		}
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// IsValidEntry is the narrower repair-on-read predicate: required
// fields present with their basic types. Entries failing it are evicted
// from storage rather than surfaced.
func IsValidEntry(raw map[string]any) bool {
	if raw == nil {
		return false
	}
	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			return false
		}
	}
	if _, ok := raw["id"].(string); !ok {
		return false
	}
	if _, ok := raw["createdAt"].(string); !ok {
		return false
	}
	if _, ok := raw["jdText"].(string); !ok {
		return false
	}
	if !isNumber(raw["baseScore"]) {
		return false
	}
	if _, ok := raw["questions"].([]any); !ok {
		return false
	}
	if _, ok := raw["extractedSkills"].(map[string]any); !ok {
		return false
	}
	return true
}

func isNumber(value any) bool {
	switch value.(type) {
	case float64, int:
		return true
	default:
		return false
	}
}

func isScore(value any) bool {
	switch n := value.(type) {
	case float64:
		return n >= 0 && n <= 100
	case int:
		return n >= 0 && n <= 100
	default:
		return false
	}
}
