package gap

import (
	"math"
	"strings"

	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	// maxHintsPerSkill caps transferable-experience hints for one missing skill
	maxHintsPerSkill = 3
	// skillShare and qualShare weight the overall match percentage
	skillShare = 0.7
	qualShare  = 0.3
	// minSignificantWordLen is the shortest word that counts toward a
	// qualification match
	minSignificantWordLen = 4
)

// HintSource values
const (
	SourceAnswers = "answers"
	SourceResume  = "resume"
)

// qualificationStopWords never count toward a qualification match
var qualificationStopWords = map[string]bool{
	"with": true, "have": true, "from": true, "that": true, "this": true,
	"years": true, "year": true, "plus": true, "able": true, "strong": true,
	"knowledge": true, "understanding": true, "experience": true,
	"working": true, "preferred": true, "required": true, "ability": true,
	"skills": true, "including": true, "familiarity": true,
}

// Analyze classifies the job's required skills and preferred qualifications
// against the resume and free-text answers. Skills the candidate lacks carry
// up to three transferable-experience hints drawn from related concepts.
func Analyze(job *types.JobRequirements, resume *types.ResumeContent, answers types.UserAnswers) (*types.GapReport, error) {
	if err := types.RequireJob(job); err != nil {
		return nil, err
	}
	if err := types.RequireResume(resume); err != nil {
		return nil, err
	}

	answerText := parsing.Normalize(answers.Text())
	resumeSkills := parsing.NormalizeAll(resume.Skills.All())

	report := &types.GapReport{
		MatchedSkills:         []string{},
		MissingSkills:         []types.MissingSkill{},
		MatchedQualifications: []string{},
		MissingQualifications: []string{},
	}

	for _, skill := range job.RequiredSkills {
		normalized := parsing.Normalize(skill)
		if normalized == "" {
			continue
		}
		if skillMatched(normalized, resumeSkills, answerText) {
			report.MatchedSkills = append(report.MatchedSkills, skill)
			continue
		}
		report.MissingSkills = append(report.MissingSkills, types.MissingSkill{
			Skill:             skill,
			RelatedExperience: findTransferable(normalized, resume, answerText),
		})
	}

	qualText := strings.TrimSpace(parsing.ExtractText(resume) + " " + answerText)
	for _, qual := range job.PreferredQualifications {
		if strings.TrimSpace(qual) == "" {
			continue
		}
		if qualificationMatched(qual, qualText) {
			report.MatchedQualifications = append(report.MatchedQualifications, qual)
		} else {
			report.MissingQualifications = append(report.MissingQualifications, qual)
		}
	}

	skillPct := percentage(len(report.MatchedSkills), len(report.MatchedSkills)+len(report.MissingSkills))
	qualPct := percentage(len(report.MatchedQualifications), len(report.MatchedQualifications)+len(report.MissingQualifications))

	report.SkillMatchPercentage = math.Round(skillPct*100) / 100
	report.QualMatchPercentage = math.Round(qualPct*100) / 100
	report.OverallMatchPercentage = int(math.Round(skillPct*skillShare + qualPct*qualShare))
	report.Recommendations = buildRecommendations(report, job.Industry)
	report.Summary = summarize(report.OverallMatchPercentage)

	return report, nil
}

// skillMatched reports whether a normalized required skill is shown by any
// resume skill or mentioned in the answers
func skillMatched(skill string, resumeSkills []string, answerText string) bool {
	for _, have := range resumeSkills {
		if have == skill || strings.Contains(have, skill) || strings.Contains(skill, have) {
			return true
		}
		if equivalent(have, skill) {
			return true
		}
	}
	return parsing.ContainsWord(answerText, skill)
}

// findTransferable returns hints for related concepts found in the answers or
// in experience bullets. It returns nil when nothing related turns up.
func findTransferable(skill string, resume *types.ResumeContent, answerText string) []types.TransferableHint {
	var hints []types.TransferableHint
	for _, concept := range conceptsFor(skill) {
		if len(hints) == maxHintsPerSkill {
			break
		}
		if parsing.ContainsWord(answerText, concept) {
			hints = append(hints, types.TransferableHint{Concept: concept, Source: SourceAnswers})
			continue
		}
		if hint, ok := findInBullets(concept, resume.Experience); ok {
			hints = append(hints, hint)
		}
	}
	return hints
}

func findInBullets(concept string, experience []types.Experience) (types.TransferableHint, bool) {
	for _, exp := range experience {
		for _, bullet := range exp.Bullets {
			if parsing.ContainsWord(bullet, concept) {
				return types.TransferableHint{
					Concept: concept,
					Source:  SourceResume,
					Role:    exp.Role,
					Company: exp.Company,
				}, true
			}
		}
	}
	return types.TransferableHint{}, false
}

// qualificationMatched accepts a qualification when its normalized text is a
// substring of the candidate text, or at least half of its significant words
// appear as whole words
func qualificationMatched(qual, text string) bool {
	normalized := parsing.Normalize(qual)
	if normalized == "" {
		return false
	}
	if strings.Contains(text, normalized) {
		return true
	}

	var significant, found int
	for _, word := range strings.Fields(normalized) {
		if len(word) < minSignificantWordLen || qualificationStopWords[word] {
			continue
		}
		significant++
		if parsing.ContainsWord(text, word) {
			found++
		}
	}
	return significant > 0 && found*2 >= significant
}

// percentage returns matched/total*100, treating an empty requirement as fully met
func percentage(matched, total int) float64 {
	if total == 0 {
		return 100
	}
	return float64(matched) / float64(total) * 100
}
