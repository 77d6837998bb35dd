package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/types"
)

// professionalToneWords signal a confident, professional summary
var professionalToneWords = []string{
	"experienced", "proven", "skilled", "accomplished", "results-driven",
	"expertise", "dedicated", "strategic", "passionate", "track record",
}

// actionVerbs are strong openers for experience bullets
var actionVerbs = map[string]bool{
	"achieved": true, "architected": true, "automated": true, "built": true,
	"championed": true, "collaborated": true, "created": true, "delivered": true,
	"designed": true, "developed": true, "drove": true, "engineered": true,
	"established": true, "implemented": true, "improved": true, "increased": true,
	"launched": true, "led": true, "managed": true, "mentored": true,
	"migrated": true, "optimized": true, "orchestrated": true, "owned": true,
	"pioneered": true, "reduced": true, "refactored": true, "scaled": true,
	"shipped": true, "spearheaded": true, "streamlined": true, "transformed": true,
}

// metricRe detects a quantitative signal: percentages, currency, scale
// words, multipliers or improved/reduced style phrasing with a number
var metricRe = regexp.MustCompile(`(?i)(\d+(\.\d+)?\s*%|\$\s*\d|\b\d+(\.\d+)?\s*(k|m|b|x|million|billion|thousand|hundred)\b|\b\d[\d,]*\+?\s*(users|customers|clients|requests|transactions|servers|engineers|people|projects)\b|\b(increased|reduced|improved|decreased|grew|saved|cut|boosted|accelerated)\b.*\d)`)

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// ScoreContent rates structural resume quality independent of any job.
// The point budget sums to 100, so the raw sum is the score.
func ScoreContent(resume *types.ResumeContent) float64 {
	if resume == nil {
		return 0
	}

	total := scoreSummary(resume.Summary) +
		scoreBullets(resume.Experience) +
		scoreSkillsSection(resume.Skills)

	if len(resume.Education) > 0 {
		total += educationPoints
	}
	if len(resume.AdditionalSections) > 0 {
		total += additionalPoints
	}

	return round2(clamp(total, 0, 100))
}

// scoreSummary rewards a 2-3 sentence summary written in a professional tone
func scoreSummary(summary string) float64 {
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return 0
	}

	points := 5.0
	switch n := countSentences(summary); {
	case n >= 2 && n <= 3:
		points = 15
	case n == 1 || n == 4:
		points = 10
	}

	lower := strings.ToLower(summary)
	for _, word := range professionalToneWords {
		if strings.Contains(lower, word) {
			points += toneWordPoints
			break
		}
	}

	return min(points, summaryMaxPoints)
}

// countSentences counts non-empty sentence fragments
func countSentences(text string) int {
	n := 0
	for _, part := range sentenceSplitRe.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			n++
		}
	}
	return n
}

// scoreBullets rewards quantified bullets, action-verb openers and multiple roles
func scoreBullets(experience []types.Experience) float64 {
	var bullets []string
	for _, exp := range experience {
		for _, b := range exp.Bullets {
			if strings.TrimSpace(b) != "" {
				bullets = append(bullets, b)
			}
		}
	}

	points := 0.0
	if len(bullets) > 0 {
		withMetrics := 0
		withVerbs := 0
		for _, b := range bullets {
			if HasMetric(b) {
				withMetrics++
			}
			if startsWithActionVerb(b) {
				withVerbs++
			}
		}
		n := float64(len(bullets))
		points += float64(withMetrics) / n * metricRatioPoints
		points += float64(withVerbs) / n * actionVerbPoints
	}

	if len(experience) >= 2 {
		points += multipleRolesPoints
	}

	return min(points, bulletsMaxPoints)
}

// HasMetric reports whether a bullet carries a quantitative signal
func HasMetric(bullet string) bool {
	return metricRe.MatchString(bullet)
}

// startsWithActionVerb checks the first word against the action verb list
func startsWithActionVerb(bullet string) bool {
	fields := strings.Fields(parsing.Normalize(bullet))
	if len(fields) == 0 {
		return false
	}
	return actionVerbs[fields[0]]
}

// scoreSkillsSection awards tiered points per category, whatever the category names
func scoreSkillsSection(skills types.SkillSet) float64 {
	points := 0.0
	for _, cat := range skills {
		n := len(parsing.NormalizeAll(cat.Skills))
		switch {
		case n >= 5:
			points += 7
		case n >= 3:
			points += 5
		case n >= 1:
			points += 2
		}
	}
	return min(points, skillsMaxPoints)
}
