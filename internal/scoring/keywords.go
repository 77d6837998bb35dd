package scoring

import (
	"math"

	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/types"
)

// KeywordResult is the outcome of keyword matching
type KeywordResult struct {
	Score           float64
	MissingKeywords []string
	KeywordCounts   map[string]int
}

// ScoreKeywords computes a frequency-weighted keyword coverage score.
// Each keyword earns min(count, 3) * frequency, and the sum is normalized by
// the total declared weight. An empty keyword list scores 0: absent upstream
// data is not treated as success.
func ScoreKeywords(resumeText string, keywords []types.ATSKeyword) KeywordResult {
	result := KeywordResult{
		MissingKeywords: []string{},
		KeywordCounts:   map[string]int{},
	}
	if len(keywords) == 0 {
		return result
	}

	totalWeight := 0.0
	matchedWeight := 0.0
	for _, kw := range keywords {
		weight := float64(max(kw.Frequency, 0))
		totalWeight += weight

		// a blank keyword still carries its weight but is never reported
		if parsing.Normalize(kw.Keyword) == "" {
			continue
		}

		count := parsing.CountOccurrences(resumeText, kw.Keyword)
		result.KeywordCounts[kw.Keyword] = count

		if count == 0 {
			result.MissingKeywords = append(result.MissingKeywords, kw.Keyword)
			continue
		}
		matchedWeight += float64(min(count, maxCountedOccurrences)) * weight
	}

	if totalWeight > 0 {
		result.Score = round2(clamp(matchedWeight/totalWeight*100, 0, 100))
	}
	return result
}

// clamp bounds v to [lo, hi]
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// round2 rounds to two decimal places
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
