package analysis

import (
	"fmt"
	"strings"
)

// Sections a record can be exported as.
const (
	ExportSectionPlan      = "plan"
	ExportSectionChecklist = "checklist"
	ExportSectionQuestions = "questions"
	ExportSectionReport    = "report"
)

// RenderExport produces a plain-text export of one section of a
// record. Unknown sections fall back to the full report.
func RenderExport(record Record, section string) string {
	switch section {
	case ExportSectionPlan:
		return renderPlan(record)
	case ExportSectionChecklist:
		return renderChecklist(record)
	case ExportSectionQuestions:
		return renderQuestions(record)
	default:
		return renderFull(record)
	}
}

func renderPlan(record Record) string {
	var b strings.Builder
	writeExportHeader(&b, record, "7-Day Preparation Plan")
	for _, day := range record.Plan7Days {
		fmt.Fprintf(&b, "Day %d: %s\n", day.Day, day.Focus)
		for _, task := range day.Tasks {
			fmt.Fprintf(&b, "  - %s\n", task)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderChecklist(record Record) string {
	var b strings.Builder
	writeExportHeader(&b, record, "Round-wise Preparation Checklist")
	for _, round := range record.Checklist {
		fmt.Fprintf(&b, "%s\n", round.RoundTitle)
		for _, item := range round.Items {
			fmt.Fprintf(&b, "  [ ] %s\n", item)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderQuestions(record Record) string {
	var b strings.Builder
	writeExportHeader(&b, record, "Likely Interview Questions")
	for i, q := range record.Questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return b.String()
}

// renderFull stitches scores, detected skills, company intel, rounds
// and every prep section into one report.
func renderFull(record Record) string {
	var b strings.Builder
	writeExportHeader(&b, record, "Placement Readiness Report")

	fmt.Fprintf(&b, "Base Score:  %d/100\n", record.BaseScore)
	fmt.Fprintf(&b, "Final Score: %d/100\n\n", record.FinalScore)

	b.WriteString("Detected Skills\n")
	byCategory := record.ExtractedSkills.ByCategory()
	for _, key := range CategoryKeys {
		skills := byCategory[key]
		if len(skills) == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %s: %s\n", key, strings.Join(skills, ", "))
	}
	b.WriteString("\n")

	if record.CompanyIntel != nil {
		intel := record.CompanyIntel
		b.WriteString("Company Intel\n")
		fmt.Fprintf(&b, "  Company:  %s\n", intel.CompanyName)
		fmt.Fprintf(&b, "  Industry: %s\n", intel.Industry)
		fmt.Fprintf(&b, "  Size:     %s\n", intel.Size)
		b.WriteString("\n")
	}

	if len(record.RoundMapping) > 0 {
		b.WriteString("Interview Rounds\n")
		for _, round := range record.RoundMapping {
			fmt.Fprintf(&b, "  Round %d: %s (%s, %s)\n", round.RoundNumber, round.Title, round.Duration, round.Difficulty)
		}
		b.WriteString("\n")
	}

	for _, section := range []string{ExportSectionPlan, ExportSectionChecklist, ExportSectionQuestions} {
		b.WriteString(stripExportHeader(RenderExport(record, section)))
	}
	return b.String()
}

func writeExportHeader(b *strings.Builder, record Record, title string) {
	b.WriteString(title + "\n")
	line := record.Company
	if record.Role != "" {
		if line != "" {
			line += " / "
		}
		line += record.Role
	}
	if line != "" {
		b.WriteString(line + "\n")
	}
	fmt.Fprintf(b, "Generated: %s\n\n", record.CreatedAt)
}

// stripExportHeader drops a sub-section's own metadata lines so the
// full report does not repeat them, keeping only the title and body.
func stripExportHeader(rendered string) string {
	idx := strings.Index(rendered, "\n\n")
	if idx < 0 {
		return rendered
	}
	title := strings.SplitN(rendered, "\n", 2)[0]
	return title + "\n" + rendered[idx+2:] + "\n"
}
