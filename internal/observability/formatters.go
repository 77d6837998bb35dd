// Package observability provides formatted report output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted report output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// writeList writes up to limit items as bullets with an overflow line
func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	for _, item := range items[:min(len(items), limit)] {
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
	sb.WriteString("\n")
}

// PrintScoreReport outputs the ATS score with its sub-scores and suggestions.
func (p *Printer) PrintScoreReport(report *types.ScoreReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:   %d/100\n", report.OverallScore))
	sb.WriteString(fmt.Sprintf("Keywords:  %.2f\n", report.KeywordMatchScore))
	sb.WriteString(fmt.Sprintf("Skills:    %.2f\n", report.SkillsCoverageScore))
	sb.WriteString(fmt.Sprintf("Content:   %.2f\n", report.ContentQualityScore))
	sb.WriteString("\n")

	writeList(&sb, "Missing keywords", report.MissingKeywords, maxItemsToShow)
	writeList(&sb, "Missing skills", report.MissingSkills, maxItemsToShow)
	writeList(&sb, "Possible keyword stuffing", report.StuffedKeywords, 3)
	writeList(&sb, "Suggestions", report.Suggestions, maxItemsToShow)

	p.printBox("ATS SCORE", strings.TrimRight(sb.String(), "\n"))
}

// PrintGapReport outputs matched and missing skills with recommendations.
func (p *Printer) PrintGapReport(report *types.GapReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall match:   %d%%\n", report.OverallMatchPercentage))
	sb.WriteString(fmt.Sprintf("Skills:          %.2f%%\n", report.SkillMatchPercentage))
	sb.WriteString(fmt.Sprintf("Qualifications:  %.2f%%\n", report.QualMatchPercentage))
	sb.WriteString("\n")

	writeList(&sb, "Matched skills", report.MatchedSkills, maxItemsToShow)

	if len(report.MissingSkills) > 0 {
		sb.WriteString("Missing skills:\n")
		for _, missing := range report.MissingSkills[:min(len(report.MissingSkills), maxItemsToShow)] {
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", missing.Skill))
			if len(missing.RelatedExperience) > 0 {
				concepts := make([]string, len(missing.RelatedExperience))
				for i, hint := range missing.RelatedExperience {
					concepts[i] = hint.Concept
				}
				sb.WriteString(fmt.Sprintf("    related: %s\n", strings.Join(concepts, ", ")))
			}
		}
		if len(report.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.MissingSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	writeList(&sb, "Missing qualifications", report.MissingQualifications, 3)

	if len(report.Recommendations) > 0 {
		sb.WriteString("Recommendations:\n")
		for _, rec := range report.Recommendations {
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", rec.Priority, rec.Message))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(report.Summary)

	p.printBox("SKILLS GAP", strings.TrimRight(sb.String(), "\n"))
}

// PrintSalaryReport outputs the salary range, the factors behind it and tips.
func (p *Printer) PrintSalaryReport(report *types.SalaryReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Range:       %s - %s\n", formatDollars(report.Range.Min), formatDollars(report.Range.Max)))
	sb.WriteString(fmt.Sprintf("Midpoint:    %s\n", formatDollars(report.Range.Mid)))
	sb.WriteString(fmt.Sprintf("Confidence:  %d%%\n", report.Confidence))
	sb.WriteString("\n")

	if len(report.Factors) > 0 {
		sb.WriteString("Factors:\n")
		for _, f := range report.Factors {
			sb.WriteString(fmt.Sprintf("  %s %s: %s\n", impactMark(f.Impact), f.Factor, f.Value))
		}
		sb.WriteString("\n")
	}

	writeList(&sb, "Tips", report.Tips, 3)

	p.printBox("SALARY ESTIMATE", strings.TrimRight(sb.String(), "\n"))
}

// PrintReports outputs whichever of the three reports are present, in order.
func (p *Printer) PrintReports(score *types.ScoreReport, gap *types.GapReport, salary *types.SalaryReport) {
	p.PrintScoreReport(score)
	p.PrintGapReport(gap)
	p.PrintSalaryReport(salary)
}

func impactMark(impact types.Impact) string {
	switch impact {
	case types.ImpactPositive:
		return "▲"
	case types.ImpactNegative:
		return "▼"
	default:
		return "•"
	}
}

// formatDollars renders whole dollars with thousands separators
func formatDollars(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := fmt.Sprintf("%d", amount)
	var out strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(d)
	}
	return sign + "$" + out.String()
}
