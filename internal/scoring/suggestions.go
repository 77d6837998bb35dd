package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

// SuggestionInput carries the sub-scores and data the suggestion rules read
type SuggestionInput struct {
	Keywords     KeywordResult
	Skills       SkillsResult
	ContentScore float64
	Stuffed      []string
	OverallScore int
	Resume       *types.ResumeContent
}

// GenerateSuggestions applies fixed, ordered rules to the sub-scores.
// The most critical advice comes first; identical inputs yield identical output.
func GenerateSuggestions(in SuggestionInput) []string {
	suggestions := []string{}

	switch {
	case in.Keywords.Score < keywordCriticalThreshold:
		if len(in.Keywords.MissingKeywords) > 0 {
			suggestions = append(suggestions, fmt.Sprintf(
				"CRITICAL: Add these missing keywords from the job description: %s",
				joinLimited(in.Keywords.MissingKeywords, criticalListLimit)))
		} else {
			suggestions = append(suggestions,
				"CRITICAL: Mention the job's most important keywords more often in your experience bullets")
		}
	case in.Keywords.Score < keywordSoftThreshold:
		if len(in.Keywords.MissingKeywords) > 0 {
			suggestions = append(suggestions, fmt.Sprintf(
				"Consider adding these keywords to strengthen your match: %s",
				joinLimited(in.Keywords.MissingKeywords, softListLimit)))
		}
	}

	switch {
	case in.Skills.Score < skillsCriticalThreshold:
		if len(in.Skills.MissingSkills) > 0 {
			suggestions = append(suggestions, fmt.Sprintf(
				"CRITICAL: Highlight these required skills in your skills section and experience: %s",
				joinLimited(in.Skills.MissingSkills, criticalListLimit)))
		}
	case in.Skills.Score < skillsSoftThreshold:
		if len(in.Skills.MissingSkills) > 0 {
			suggestions = append(suggestions, fmt.Sprintf(
				"Consider demonstrating these skills: %s",
				joinLimited(in.Skills.MissingSkills, softListLimit)))
		}
	}

	if in.ContentScore < contentThreshold {
		suggestions = append(suggestions, contentSuggestions(in.Resume)...)
	}

	if len(in.Stuffed) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"WARNING: These keywords are repeated too often and may trigger ATS spam filters: %s",
			strings.Join(in.Stuffed, ", ")))
	}

	suggestions = append(suggestions, holisticRemark(in.OverallScore))
	return suggestions
}

// contentSuggestions counts bullets without metrics and checks summary length
func contentSuggestions(resume *types.ResumeContent) []string {
	var out []string
	if resume == nil {
		return out
	}

	total := 0
	lacking := 0
	for _, exp := range resume.Experience {
		for _, b := range exp.Bullets {
			if strings.TrimSpace(b) == "" {
				continue
			}
			total++
			if !HasMetric(b) {
				lacking++
			}
		}
	}
	switch {
	case total == 0:
		out = append(out, "Add experience bullets that describe your accomplishments with measurable results")
	case lacking > 0:
		out = append(out, fmt.Sprintf(
			"Add quantifiable metrics (%%, $, team size, scale) to %d of %d experience bullets", lacking, total))
	}

	if words := len(strings.Fields(resume.Summary)); words < minSummaryWords {
		out = append(out, fmt.Sprintf(
			"Expand your professional summary to 2-3 sentences (currently %d words, aim for at least %d)",
			words, minSummaryWords))
	}
	return out
}

// holisticRemark picks the closing remark from the overall score band
func holisticRemark(overall int) string {
	switch {
	case overall < overallWeakBand:
		return "Overall: this resume needs significant revisions to pass ATS screening for this role"
	case overall < overallStrongBand:
		return "Overall: good foundation; address the suggestions above to improve your ATS ranking"
	default:
		return "Overall: strong ATS match for this role; fine-tune wording before submitting"
	}
}

// joinLimited joins at most limit items with commas
func joinLimited(items []string, limit int) string {
	if len(items) > limit {
		items = items[:limit]
	}
	return strings.Join(items, ", ")
}
