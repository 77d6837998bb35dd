package scoring

import (
	"testing"

	"github.com/jonathan/resume-scorer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestScoreKeywords_RepetitionCapOverflowClamps(t *testing.T) {
	text := "python services written in python"
	result := ScoreKeywords(text, []types.ATSKeyword{{Keyword: "python", Frequency: 5}})

	// 2 occurrences * weight 5 = 10 over total weight 5 -> 200%, clamped
	assert.Equal(t, 100.0, result.Score)
	assert.Empty(t, result.MissingKeywords)
	assert.Equal(t, 2, result.KeywordCounts["python"])
}

func TestScoreKeywords_EmptyList(t *testing.T) {
	result := ScoreKeywords("anything", nil)

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, []string{}, result.MissingKeywords)
	assert.Equal(t, map[string]int{}, result.KeywordCounts)
}

func TestScoreKeywords_PartialMatch(t *testing.T) {
	text := "go kubernetes"
	keywords := []types.ATSKeyword{
		{Keyword: "Go", Frequency: 4},
		{Keyword: "Kubernetes", Frequency: 4},
		{Keyword: "Terraform", Frequency: 8},
		{Keyword: "GraphQL", Frequency: 4},
	}
	result := ScoreKeywords(text, keywords)

	// (1*4 + 1*4) / 20 * 100
	assert.Equal(t, 40.0, result.Score)
	assert.Equal(t, []string{"Terraform", "GraphQL"}, result.MissingKeywords)
}

func TestScoreKeywords_OrderInvariant(t *testing.T) {
	text := "aws aws lambda dynamodb python python python python"
	a := []types.ATSKeyword{
		{Keyword: "aws", Frequency: 3},
		{Keyword: "lambda", Frequency: 7},
		{Keyword: "python", Frequency: 11},
		{Keyword: "rust", Frequency: 100},
	}
	b := []types.ATSKeyword{a[3], a[1], a[0], a[2]}

	assert.Equal(t, ScoreKeywords(text, a).Score, ScoreKeywords(text, b).Score)
}

func TestScoreKeywords_WholeWordOnly(t *testing.T) {
	result := ScoreKeywords("javascript javascript", []types.ATSKeyword{{Keyword: "java", Frequency: 1}})

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, []string{"java"}, result.MissingKeywords)
}

func TestScoreKeywords_ZeroWeights(t *testing.T) {
	result := ScoreKeywords("go", []types.ATSKeyword{{Keyword: "go", Frequency: 0}})
	assert.Equal(t, 0.0, result.Score)
}

func TestScoreKeywords_RoundsToTwoDecimals(t *testing.T) {
	keywords := []types.ATSKeyword{
		{Keyword: "go", Frequency: 1},
		{Keyword: "rust", Frequency: 1},
		{Keyword: "zig", Frequency: 1},
	}
	result := ScoreKeywords("go", keywords)
	assert.Equal(t, 33.33, result.Score)
}

func TestDetectStuffing(t *testing.T) {
	text := "agile agile agile agile agile agile scrum scrum scrum scrum scrum"
	keywords := []types.ATSKeyword{
		{Keyword: "Agile", Frequency: 2},
		{Keyword: "scrum", Frequency: 2},
		{Keyword: "agile", Frequency: 1},
	}

	// 6 > 5 is flagged, exactly 5 is not; duplicates reported once
	assert.Equal(t, []string{"Agile"}, DetectStuffing(text, keywords))
	assert.Equal(t, []string{}, DetectStuffing(text, nil))
}
