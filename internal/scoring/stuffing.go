package scoring

import (
	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/types"
)

// DetectStuffing returns keywords that occur more than five times in the
// resume text, in input order. It never changes a score.
func DetectStuffing(resumeText string, keywords []types.ATSKeyword) []string {
	stuffed := []string{}
	seen := make(map[string]bool)
	for _, kw := range keywords {
		key := parsing.Normalize(kw.Keyword)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if parsing.CountOccurrences(resumeText, kw.Keyword) > stuffingThreshold {
			stuffed = append(stuffed, kw.Keyword)
		}
	}
	return stuffed
}
