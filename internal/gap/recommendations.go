package gap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

// Recommendation types
const (
	TypeMissingSkills      = "missing_skills"
	TypeUpskill            = "upskill"
	TypeTransferableSkills = "transferable_skills"
	TypeQualifications     = "qualifications"
	TypeIndustryAlignment  = "industry_alignment"
)

const (
	// fewMissing is the largest gap still named in full
	fewMissing = 2
	// upskillTop is how many skills the upskill message names
	upskillTop = 3
)

func buildRecommendations(report *types.GapReport, industry string) []types.Recommendation {
	recs := []types.Recommendation{}

	var unexplained, transferable []string
	var hintSummaries []string
	for _, missing := range report.MissingSkills {
		if len(missing.RelatedExperience) == 0 {
			unexplained = append(unexplained, missing.Skill)
			continue
		}
		transferable = append(transferable, missing.Skill)
		concepts := make([]string, 0, len(missing.RelatedExperience))
		for _, hint := range missing.RelatedExperience {
			concepts = append(concepts, hint.Concept)
		}
		hintSummaries = append(hintSummaries, fmt.Sprintf("%s (via %s)", missing.Skill, strings.Join(concepts, ", ")))
	}

	switch {
	case len(unexplained) == 0:
	case len(unexplained) <= fewMissing:
		recs = append(recs, types.Recommendation{
			Priority: types.PriorityHigh,
			Type:     TypeMissingSkills,
			Message:  fmt.Sprintf("Address these required skills before applying: %s", strings.Join(unexplained, " and ")),
		})
	default:
		recs = append(recs, types.Recommendation{
			Priority: types.PriorityHigh,
			Type:     TypeUpskill,
			Message: fmt.Sprintf("Prioritize upskilling in %s; they are required and not yet reflected in your background",
				strings.Join(unexplained[:upskillTop], ", ")),
		})
	}

	if len(transferable) > 0 {
		recs = append(recs, types.Recommendation{
			Priority: types.PriorityMedium,
			Type:     TypeTransferableSkills,
			Message:  fmt.Sprintf("Emphasize transferable experience for %s", strings.Join(hintSummaries, "; ")),
		})
	}

	if n := len(report.MissingQualifications); n > 0 && n <= fewMissing {
		recs = append(recs, types.Recommendation{
			Priority: types.PriorityLow,
			Type:     TypeQualifications,
			Message:  fmt.Sprintf("Consider addressing these preferred qualifications: %s", strings.Join(report.MissingQualifications, "; ")),
		})
	}

	if industry = strings.TrimSpace(industry); industry != "" {
		recs = append(recs, types.Recommendation{
			Priority: types.PriorityMedium,
			Type:     TypeIndustryAlignment,
			Message:  fmt.Sprintf("Tailor your resume language to the %s industry using its common terminology", industry),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority.Rank() < recs[j].Priority.Rank()
	})
	return recs
}

func summarize(overall int) string {
	switch {
	case overall >= 80:
		return "Strong match: your background covers most of this role's requirements."
	case overall >= 60:
		return "Good match: a few gaps remain that you can address or explain."
	case overall >= 40:
		return "Partial match: several required skills are missing; focus on the highest-priority gaps."
	default:
		return "Significant gaps: consider upskilling before applying or targeting a closer-fit role."
	}
}
