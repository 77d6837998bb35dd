package salary

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Estimate computes a salary range for the job and candidate.
// The base row comes from the job level and is scaled by industry,
// experience beyond the level's baseline, high-demand required skills and
// the ATS score band. score may be nil, in which case the ATS factor is
// neutral. Figures are dollars rounded to the nearest thousand.
func Estimate(job *types.JobRequirements, resume *types.ResumeContent, score *types.ScoreReport, answers types.UserAnswers) (*types.SalaryReport, error) {
	if err := types.RequireJob(job); err != nil {
		return nil, err
	}
	if err := types.RequireResume(resume); err != nil {
		return nil, err
	}

	report := &types.SalaryReport{Factors: []types.SalaryFactor{}, Tips: []string{}}

	base, levelKnown := baseBands[job.JobLevel]
	level := job.JobLevel
	if !levelKnown {
		base = baseBands[types.JobLevelMid]
		level = types.JobLevelMid
	}
	report.Factors = append(report.Factors, types.SalaryFactor{
		Factor:      "Job Level",
		Value:       string(level),
		Impact:      types.ImpactNeutral,
		Description: fmt.Sprintf("Base range for %s roles: $%dk - $%dk", level, int(base.Min/1000), int(base.Max/1000)),
	})

	industryMult := industryMultiplierFor(job.Industry)
	report.Factors = append(report.Factors, industryFactor(job.Industry, industryMult))

	years, yearsKnown := yearsOfExperience(answers, resume)
	bonus := 0.0
	if yearsKnown {
		bonus = math.Max(0, (years-base.BaseYears)*experienceBonusPerYear)
		report.Factors = append(report.Factors, experienceFactor(years, base.BaseYears, bonus))
	}

	demand := highDemandMatches(job.RequiredSkills)
	skillsMult := 1 + demandBonusPerSkill*float64(len(demand))
	report.Factors = append(report.Factors, demandFactor(demand))

	atsMult := 1.0
	if score != nil {
		atsMult = atsMultiplier(score.OverallScore)
		report.Factors = append(report.Factors, atsFactor(score.OverallScore, atsMult))
	}

	mult := industryMult * (1 + bonus) * skillsMult * atsMult
	report.Range = types.SalaryRange{
		Min: roundThousand(base.Min * mult),
		Mid: roundThousand(base.Mid * mult),
		Max: roundThousand(base.Max * mult),
	}

	report.Tips = tips(level, score, len(demand), yearsKnown)
	report.Confidence = confidence(job, levelKnown, yearsKnown)

	return report, nil
}

func industryMultiplierFor(industry string) float64 {
	normalized := parsing.Normalize(industry)
	if normalized == "" {
		return 1.0
	}
	for _, row := range industryMultipliers {
		if strings.Contains(normalized, row.Match) {
			return row.Multiplier
		}
	}
	return 1.0
}

// highDemandMatches returns the required skills that hit the high-demand list
func highDemandMatches(required []string) []string {
	var hits []string
	for _, skill := range required {
		normalized := parsing.Normalize(skill)
		for _, demand := range highDemandSkills {
			if parsing.ContainsWord(normalized, demand) {
				hits = append(hits, skill)
				break
			}
		}
	}
	return hits
}

func atsMultiplier(overall int) float64 {
	switch {
	case overall >= atsStrongThreshold:
		return atsStrongMultiple
	case overall >= atsFairThreshold:
		return atsFairMultiple
	default:
		return atsWeakMultiple
	}
}

func confidence(job *types.JobRequirements, levelKnown, yearsKnown bool) int {
	c := baseConfidence
	if strings.TrimSpace(job.Industry) != "" {
		c += industryConfidence
	}
	if levelKnown {
		c += levelConfidence
	}
	if len(job.RequiredSkills) > skillsConfidenceMinN {
		c += skillsConfidence
	}
	if yearsKnown {
		c += yearsConfidence
	}
	if len(job.CompanyCultureIndicators) > 0 {
		c += cultureConfidence
	}
	return min(c, maxConfidence)
}

func roundThousand(v float64) int {
	return int(math.Round(v/1000)) * 1000
}

func impactOf(mult float64) types.Impact {
	switch {
	case mult > 1:
		return types.ImpactPositive
	case mult < 1:
		return types.ImpactNegative
	default:
		return types.ImpactNeutral
	}
}

func percentChange(mult float64) string {
	return fmt.Sprintf("%+.0f%%", (mult-1)*100)
}

func industryFactor(industry string, mult float64) types.SalaryFactor {
	value := strings.TrimSpace(industry)
	if value == "" {
		value = "Not specified"
	}
	desc := "No industry adjustment"
	if mult != 1 {
		desc = fmt.Sprintf("Industry pay adjustment (%s)", percentChange(mult))
	}
	return types.SalaryFactor{Factor: "Industry", Value: value, Impact: impactOf(mult), Description: desc}
}

func experienceFactor(years, baseYears, bonus float64) types.SalaryFactor {
	desc := fmt.Sprintf("At or below the %g years typical for this level", baseYears)
	if bonus > 0 {
		desc = fmt.Sprintf("%g years beyond the %g typical for this level (%s)", years-baseYears, baseYears, percentChange(1+bonus))
	}
	return types.SalaryFactor{
		Factor:      "Experience",
		Value:       fmt.Sprintf("%g years", years),
		Impact:      impactOf(1 + bonus),
		Description: desc,
	}
}

func demandFactor(demand []string) types.SalaryFactor {
	mult := 1 + demandBonusPerSkill*float64(len(demand))
	desc := "No high-demand skills among the requirements"
	if len(demand) > 0 {
		desc = fmt.Sprintf("High-demand skills required: %s (%s)", strings.Join(demand, ", "), percentChange(mult))
	}
	return types.SalaryFactor{
		Factor:      "High-Demand Skills",
		Value:       fmt.Sprintf("%d", len(demand)),
		Impact:      impactOf(mult),
		Description: desc,
	}
}

func atsFactor(overall int, mult float64) types.SalaryFactor {
	desc := "Average resume match"
	switch {
	case mult > 1:
		desc = fmt.Sprintf("Strong resume match strengthens negotiating position (%s)", percentChange(mult))
	case mult < 1:
		desc = fmt.Sprintf("Weak resume match lowers expected offers (%s)", percentChange(mult))
	}
	return types.SalaryFactor{
		Factor:      "ATS Match",
		Value:       fmt.Sprintf("%d/100", overall),
		Impact:      impactOf(mult),
		Description: desc,
	}
}

func tips(level types.JobLevel, score *types.ScoreReport, demandCount int, yearsKnown bool) []string {
	out := []string{}
	if score != nil && score.OverallScore < atsStrongThreshold {
		out = append(out, "Raise your ATS match score above 80 to target the upper end of the range")
	}
	if demandCount == 0 {
		out = append(out, "Highlight any in-demand skills you have, such as cloud platforms or machine learning")
	}
	if !yearsKnown {
		out = append(out, "Share your years of experience to sharpen this estimate")
	}
	if level == types.JobLevelSenior {
		out = append(out, "Emphasize leadership scope and measurable impact when negotiating senior compensation")
	}
	out = append(out, "Research company-specific compensation data before negotiating; this estimate is a starting point")
	return out
}
