package analysis

import (
	"regexp"
	"strings"
)

// Skill category keys used across extraction, normalization and storage.
const (
	CategoryCoreCS    = "coreCS"
	CategoryLanguages = "languages"
	CategoryWeb       = "web"
	CategoryData      = "data"
	CategoryCloud     = "cloud"
	CategoryTesting   = "testing"
	CategoryOther     = "other"
)

// CategoryKeys lists the real skill categories in canonical order. The
// catch-all "other" bucket is not part of this list.
var CategoryKeys = []string{
	CategoryCoreCS,
	CategoryLanguages,
	CategoryWeb,
	CategoryData,
	CategoryCloud,
	CategoryTesting,
}

// FallbackSkills is assigned to the "other" bucket when no keyword
// matches anywhere in the job description.
var FallbackSkills = []string{"Communication", "Problem solving", "Basic coding", "Projects"}

// categoryKeywords maps each category to its keyword literals. Matched
// skills are reported as these literals, not as the matched substring.
var categoryKeywords = map[string][]string{
	CategoryCoreCS: {
		"DSA", "OOP", "DBMS", "OS", "Networks", "Data Structures", "Algorithms",
		"Object Oriented", "Database", "Operating System", "Computer Networks",
	},
	CategoryLanguages: {
		"Java", "Python", "JavaScript", "TypeScript", "C", "C++", "C#", "Go",
		"Golang", "Rust", "PHP", "Ruby", "Swift", "Kotlin",
	},
	CategoryWeb: {
		"React", "Next.js", "Node.js", "Express", "REST", "GraphQL", "HTML",
		"CSS", "Angular", "Vue", "Svelte", "Django", "Flask", "Spring Boot",
		"ASP.NET",
	},
	CategoryData: {
		"SQL", "MongoDB", "PostgreSQL", "MySQL", "Redis", "Elasticsearch",
		"Cassandra", "DynamoDB", "Firebase", "SQLite", "Oracle", "NoSQL",
	},
	CategoryCloud: {
		"AWS", "Azure", "GCP", "Google Cloud", "Docker", "Kubernetes", "CI/CD",
		"Jenkins", "GitHub Actions", "GitLab CI", "Terraform", "Ansible",
		"Linux", "Ubuntu", "CentOS", "Nginx", "Apache",
	},
	CategoryTesting: {
		"Selenium", "Cypress", "Playwright", "JUnit", "PyTest", "Jest", "Mocha",
		"Chai", "Testing Library", "Postman", "JMeter", "Load Testing",
	},
}

// keywordPatterns holds a compiled whole-word pattern per keyword,
// built once at init against lowercased input.
var keywordPatterns = buildKeywordPatterns()

func buildKeywordPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp)
	for _, keywords := range categoryKeywords {
		for _, kw := range keywords {
			if _, ok := patterns[kw]; ok {
				continue
			}
			patterns[kw] = regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(kw)) + `\b`)
		}
	}
	return patterns
}

// CategorizedSkills holds detected skills per fixed category.
type CategorizedSkills struct {
	CoreCS    []string `json:"coreCS"`
	Languages []string `json:"languages"`
	Web       []string `json:"web"`
	Data      []string `json:"data"`
	Cloud     []string `json:"cloud"`
	Testing   []string `json:"testing"`
	Other     []string `json:"other"`
}

// ByCategory returns the skills keyed by category name, including "other".
func (s CategorizedSkills) ByCategory() map[string][]string {
	return map[string][]string{
		CategoryCoreCS:    s.CoreCS,
		CategoryLanguages: s.Languages,
		CategoryWeb:       s.Web,
		CategoryData:      s.Data,
		CategoryCloud:     s.Cloud,
		CategoryTesting:   s.Testing,
		CategoryOther:     s.Other,
	}
}

// All returns every skill across all categories, "other" included.
func (s CategorizedSkills) All() []string {
	var out []string
	out = append(out, s.CoreCS...)
	out = append(out, s.Languages...)
	out = append(out, s.Web...)
	out = append(out, s.Data...)
	out = append(out, s.Cloud...)
	out = append(out, s.Testing...)
	out = append(out, s.Other...)
	return out
}

// PresentCategories returns the real categories that detected at least
// one skill. Fallback-only results report no categories.
func (s CategorizedSkills) PresentCategories() []string {
	byCat := s.ByCategory()
	var out []string
	for _, key := range CategoryKeys {
		if len(byCat[key]) > 0 {
			out = append(out, key)
		}
	}
	return out
}

// Extract detects skills in a job description by whole-word keyword
// matching against the category tables. When nothing at all matches,
// the "other" bucket is filled with FallbackSkills; a single real match
// anywhere suppresses the fallback entirely.
func Extract(jdText string) CategorizedSkills {
	var skills CategorizedSkills
	text := strings.ToLower(jdText)

	matched := false
	if strings.TrimSpace(jdText) != "" {
		byCat := map[string]*[]string{
			CategoryCoreCS:    &skills.CoreCS,
			CategoryLanguages: &skills.Languages,
			CategoryWeb:       &skills.Web,
			CategoryData:      &skills.Data,
			CategoryCloud:     &skills.Cloud,
			CategoryTesting:   &skills.Testing,
		}
		for _, category := range CategoryKeys {
			seen := make(map[string]struct{})
			for _, kw := range categoryKeywords[category] {
				if _, dup := seen[kw]; dup {
					continue
				}
				if keywordPatterns[kw].MatchString(text) {
					seen[kw] = struct{}{}
					*byCat[category] = append(*byCat[category], kw)
					matched = true
				}
			}
		}
	}

	if !matched {
		skills = CategorizedSkills{}
		skills.Other = append([]string(nil), FallbackSkills...)
	}
	return skills
}

// minJDLength is the advisory lower bound for a useful job description.
const minJDLength = 200

// IsTooShort reports whether the trimmed job description is shorter
// than the advisory minimum. It drives a warning, never a rejection.
func IsTooShort(jdText string) bool {
	return len(strings.TrimSpace(jdText)) < minJDLength
}
