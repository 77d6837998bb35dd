package scoring

import (
	"strings"

	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/types"
)

// SkillsResult is the outcome of required-skill coverage
type SkillsResult struct {
	Score         float64
	MissingSkills []string
	FoundSkills   []string
}

// ScoreSkills computes the share of required skills demonstrable in the resume.
// A skill counts as found when its normalized form appears anywhere in the
// resume text, or when it equals, contains or is contained by any entry in
// any skills category. An empty requirement list scores 100.
func ScoreSkills(resume *types.ResumeContent, requiredSkills []string) SkillsResult {
	result := SkillsResult{
		MissingSkills: []string{},
		FoundSkills:   []string{},
	}
	if len(requiredSkills) == 0 {
		result.Score = 100
		return result
	}

	resumeText := parsing.ExtractText(resume)
	var resumeSkills []string
	if resume != nil {
		resumeSkills = parsing.NormalizeAll(resume.Skills.All())
	}

	for _, skill := range requiredSkills {
		if skillFound(parsing.Normalize(skill), resumeText, resumeSkills) {
			result.FoundSkills = append(result.FoundSkills, skill)
		} else {
			result.MissingSkills = append(result.MissingSkills, skill)
		}
	}

	result.Score = round2(float64(len(result.FoundSkills)) / float64(len(requiredSkills)) * 100)
	return result
}

// skillFound checks a normalized skill against resume text and skill entries
func skillFound(skill, resumeText string, resumeSkills []string) bool {
	if skill == "" {
		return false
	}
	if strings.Contains(resumeText, skill) {
		return true
	}
	for _, rs := range resumeSkills {
		if rs == skill || strings.Contains(rs, skill) || strings.Contains(skill, rs) {
			return true
		}
	}
	return false
}
