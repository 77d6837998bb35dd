package salary

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-scorer/internal/types"
)

var (
	yearsPhraseRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*\+?\s*(?:years?|yrs?)\b`)
	monthsRe      = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:months?|mos?)\b`)
	numberRe      = regexp.MustCompile(`\d+(?:\.\d+)?`)
	yearRangeRe   = regexp.MustCompile(`(?i)((?:19|20)\d{2})\s*(?:-|–|—|to)\s*((?:19|20)\d{2}|present|current|now)`)
)

// now is swapped in tests to pin "Present" durations
var now = time.Now

// yearsOfExperience reads the candidate's experience in years, preferring an
// explicit answer over the resume's role durations. ok is false when neither
// source yields a number.
func yearsOfExperience(answers types.UserAnswers, resume *types.ResumeContent) (years float64, ok bool) {
	if y, ok := yearsFromAnswers(answers); ok {
		return y, true
	}
	return yearsFromDurations(resume)
}

func yearsFromAnswers(answers types.UserAnswers) (float64, bool) {
	for _, ans := range answers {
		if !strings.Contains(strings.ToLower(ans.Question), "year") {
			continue
		}
		if m := numberRe.FindString(ans.Answer); m != "" {
			if v, err := strconv.ParseFloat(m, 64); err == nil {
				return v, true
			}
		}
	}
	for _, ans := range answers {
		if m := yearsPhraseRe.FindStringSubmatch(ans.Answer); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				return v, true
			}
		}
	}
	return 0, false
}

func yearsFromDurations(resume *types.ResumeContent) (float64, bool) {
	if resume == nil {
		return 0, false
	}
	var total float64
	var found bool
	for _, exp := range resume.Experience {
		if y, ok := parseDuration(exp.Duration); ok {
			total += y
			found = true
		}
	}
	return total, found
}

// parseDuration understands "2019 - 2023", "2020 - Present", "3 years" and "6 months"
func parseDuration(duration string) (float64, bool) {
	if m := yearRangeRe.FindStringSubmatch(duration); m != nil {
		start, _ := strconv.Atoi(m[1])
		end := now().Year()
		if y, err := strconv.Atoi(m[2]); err == nil {
			end = y
		}
		if end < start {
			return 0, false
		}
		return float64(end - start), true
	}

	var total float64
	var found bool
	if m := yearsPhraseRe.FindStringSubmatch(duration); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		total += v
		found = true
	}
	if m := monthsRe.FindStringSubmatch(duration); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		total += v / 12
		found = true
	}
	return total, found
}
