package prep

import "strings"

// Known enterprise companies (2000+ employees).
var enterpriseCompanies = []string{
	"amazon", "microsoft", "google", "apple", "meta", "facebook", "netflix",
	"adobe", "salesforce", "oracle", "ibm", "intel", "cisco", "qualcomm",
	"infosys", "tcs", "wipro", "hcl", "tech mahindra", "cognizant", "accenture",
	"deloitte", "ey", "kpmg", "pwc", "capgemini", "sap", "vmware",
	"dell", "hp", "hewlett packard", "nvidia", "broadcom", "texas instruments",
	"samsung", "lg", "sony", "panasonic", "toshiba", "hitachi", "fujitsu",
	"toyota", "honda", "ford", "gm", "general motors", "bmw", "mercedes",
	"jpmorgan", "goldman sachs", "morgan stanley", "bank of america", "wells fargo",
	"citibank", "hsbc", "barclays", "deutsche bank", "ubs", "credit suisse",
}

// Known mid-size companies (200-2000 employees).
var midSizeCompanies = []string{
	"zoho", "freshworks", "chargebee", "postman", "razorpay", "zerodha",
	"swiggy", "zomato", "ola", "uber india", "ola cabs", "byju's", "unacademy",
	"vedantu", "whitehat jr", "phonepe", "paytm", "flipkart", "myntra", "snapdeal",
	"bigbasket", "grofers", "dunzo", "rapido", "sharechat", "moj", "josh",
	"dailyhunt", "inshorts", "lenskart", "nykaa", "policybazaar", "pb fintech",
}

// industryKeywords drives industry inference. Iterated in this order so
// inference is deterministic; first matching industry wins.
var industryKeywords = []struct {
	industry string
	keywords []string
}{
	{"Technology Services", []string{"software", "it services", "consulting", "solutions", "tech", "digital"}},
	{"E-commerce", []string{"e-commerce", "online retail", "marketplace", "shopping", "retail"}},
	{"Fintech", []string{"fintech", "payments", "banking", "finance", "insurance", "lending", "crypto"}},
	{"Healthcare", []string{"healthcare", "medical", "pharma", "biotech", "hospital", "clinic"}},
	{"EdTech", []string{"education", "learning", "edtech", "training", "coaching", "academy"}},
	{"SaaS", []string{"saas", "cloud", "platform", "subscription", "b2b software"}},
	{"Gaming", []string{"gaming", "games", "esports", "entertainment"}},
	{"Automotive", []string{"automotive", "car", "vehicle", "auto", "mobility", "ev"}},
	{"Logistics", []string{"logistics", "supply chain", "delivery", "transport", "shipping"}},
	{"Food & Beverage", []string{"food", "restaurant", "delivery", "beverage", "cloud kitchen"}},
}

var hiringFocusBySize = map[string]HiringFocus{
	SizeEnterprise: {
		Title:       "Structured DSA + Core Fundamentals",
		Description: "Enterprise companies typically prioritize strong computer science fundamentals, data structures, and algorithms. Expect rigorous DSA rounds with emphasis on time/space complexity.",
		KeyAreas: []string{
			"Data Structures & Algorithms", "System Design",
			"Core CS Fundamentals", "Problem Solving Patterns",
		},
		InterviewStyle: "Structured multi-round process with standardized assessments",
	},
	SizeMidSize: {
		Title:       "Balanced Technical + Practical Skills",
		Description: "Mid-size companies look for a balance of DSA skills and practical implementation. Expect real-world problem solving alongside technical fundamentals.",
		KeyAreas: []string{
			"DSA (Medium-Hard)", "Practical Coding",
			"System Design (Basics)", "Project Discussion",
		},
		InterviewStyle: "Balanced approach with focus on both theory and application",
	},
	SizeStartup: {
		Title:       "Practical Problem Solving + Stack Depth",
		Description: "Startups prioritize hands-on skills, quick learning ability, and depth in relevant tech stack. Expect practical coding and system discussion over theoretical DSA.",
		KeyAreas: []string{
			"Practical Implementation", "Tech Stack Depth",
			"Product Thinking", "Rapid Prototyping",
		},
		InterviewStyle: "Fast-paced, practical rounds with focus on immediate contribution potential",
	},
}

// CompanySize buckets a company by name lookup. Unknown names default
// to Startup.
func CompanySize(companyName string) string {
	normalized := strings.ToLower(strings.TrimSpace(companyName))
	if normalized == "" {
		return SizeStartup
	}
	for _, name := range enterpriseCompanies {
		if strings.Contains(normalized, name) {
			return SizeEnterprise
		}
	}
	for _, name := range midSizeCompanies {
		if strings.Contains(normalized, name) {
			return SizeMidSize
		}
	}
	return SizeStartup
}

// InferIndustry guesses an industry from JD text and company name,
// defaulting to Technology Services.
func InferIndustry(jdText, companyName string) string {
	text := strings.ToLower(jdText + " " + companyName)
	for _, entry := range industryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				return entry.industry
			}
		}
	}
	return "Technology Services"
}

// GenerateCompanyIntel assembles the heuristic company intelligence for
// a company name and job description.
func GenerateCompanyIntel(companyName, jdText string) CompanyIntel {
	size := CompanySize(companyName)
	name := strings.TrimSpace(companyName)
	if name == "" {
		name = "Unknown Company"
	}
	return CompanyIntel{
		CompanyName: name,
		Industry:    InferIndustry(jdText, companyName),
		Size:        size,
		HiringFocus: hiringFocusBySize[size],
		IsDemo:      true,
	}
}
