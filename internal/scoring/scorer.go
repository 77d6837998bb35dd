package scoring

import (
	"math"

	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Aggregate combines the sub-scores under the fixed 50/30/20 policy.
// The weighted sum is rounded first and then clamped to [0,100].
func Aggregate(keywordScore, skillsScore, contentScore float64) int {
	weighted := keywordScore*keywordWeight + skillsScore*skillsWeight + contentScore*contentWeight
	rounded := int(math.Round(weighted))
	return max(0, min(100, rounded))
}

// Score produces the full ATS score report for a resume against a job.
// It returns an InvalidArgumentError when either argument is missing.
func Score(job *types.JobRequirements, resume *types.ResumeContent) (*types.ScoreReport, error) {
	if err := types.RequireJob(job); err != nil {
		return nil, err
	}
	if err := types.RequireResume(resume); err != nil {
		return nil, err
	}

	resumeText := parsing.ExtractText(resume)

	keywords := ScoreKeywords(resumeText, job.ATSKeywords)
	skills := ScoreSkills(resume, job.RequiredSkills)
	content := ScoreContent(resume)
	stuffed := DetectStuffing(resumeText, job.ATSKeywords)

	overall := Aggregate(keywords.Score, skills.Score, content)

	suggestions := GenerateSuggestions(SuggestionInput{
		Keywords:     keywords,
		Skills:       skills,
		ContentScore: content,
		Stuffed:      stuffed,
		OverallScore: overall,
		Resume:       resume,
	})

	return &types.ScoreReport{
		OverallScore:        overall,
		KeywordMatchScore:   keywords.Score,
		SkillsCoverageScore: skills.Score,
		ContentQualityScore: content,
		MissingKeywords:     keywords.MissingKeywords,
		MissingSkills:       skills.MissingSkills,
		FoundSkills:         skills.FoundSkills,
		KeywordCounts:       keywords.KeywordCounts,
		StuffedKeywords:     stuffed,
		Suggestions:         suggestions,
	}, nil
}
