package scoring

import (
	"testing"

	"github.com/jonathan/resume-scorer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name                     string
		keyword, skills, content float64
		expected                 int
	}{
		{"All eighty", 80, 80, 80, 80},
		{"All hundred", 100, 100, 100, 100},
		{"All zero", 0, 0, 0, 0},
		{"Weighted", 90, 50, 70, 74},   // 45 + 15 + 14
		{"Rounds half up", 61, 0, 0, 31}, // 30.5
		{"Rounds down", 60.8, 0, 0, 30},  // 30.4
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Aggregate(tt.keyword, tt.skills, tt.content))
		})
	}
}

func TestGenerateSuggestions_SoftTiers(t *testing.T) {
	in := SuggestionInput{
		Keywords:     KeywordResult{Score: 80, MissingKeywords: []string{"a", "b", "c", "d"}},
		Skills:       SkillsResult{Score: 85, MissingSkills: []string{"x"}},
		ContentScore: 90,
		OverallScore: 82,
		Resume:       &types.ResumeContent{},
	}

	got := GenerateSuggestions(in)
	assert.Equal(t, []string{
		"Consider adding these keywords to strengthen your match: a, b, c",
		"Consider demonstrating these skills: x",
		"Overall: strong ATS match for this role; fine-tune wording before submitting",
	}, got)
}

func TestGenerateSuggestions_CriticalListsAreLimited(t *testing.T) {
	missing := []string{"k1", "k2", "k3", "k4", "k5", "k6", "k7", "k8", "k9", "k10"}
	in := SuggestionInput{
		Keywords:     KeywordResult{Score: 10, MissingKeywords: missing},
		Skills:       SkillsResult{Score: 100},
		ContentScore: 100,
		OverallScore: 50,
	}

	got := GenerateSuggestions(in)
	assert.Equal(t, "CRITICAL: Add these missing keywords from the job description: k1, k2, k3, k4, k5, k6, k7, k8", got[0])
	assert.Equal(t, "Overall: this resume needs significant revisions to pass ATS screening for this role", got[len(got)-1])
}

func TestGenerateSuggestions_ContentAndStuffing(t *testing.T) {
	resume := &types.ResumeContent{
		Summary: "Short summary.",
		Experience: []types.Experience{
			{Bullets: types.StringList{"Wrote code", "Cut costs by 20%", "Fixed bugs"}},
		},
	}
	in := SuggestionInput{
		Keywords:     KeywordResult{Score: 100},
		Skills:       SkillsResult{Score: 100},
		ContentScore: 40,
		Stuffed:      []string{"agile", "scrum"},
		OverallScore: 70,
		Resume:       resume,
	}

	got := GenerateSuggestions(in)
	assert.Equal(t, []string{
		"Add quantifiable metrics (%, $, team size, scale) to 2 of 3 experience bullets",
		"Expand your professional summary to 2-3 sentences (currently 2 words, aim for at least 30)",
		"WARNING: These keywords are repeated too often and may trigger ATS spam filters: agile, scrum",
		"Overall: good foundation; address the suggestions above to improve your ATS ranking",
	}, got)
}

func TestGenerateSuggestions_Deterministic(t *testing.T) {
	in := SuggestionInput{
		Keywords:     KeywordResult{Score: 50, MissingKeywords: []string{"go", "rust"}},
		Skills:       SkillsResult{Score: 40, MissingSkills: []string{"k8s"}},
		ContentScore: 30,
		OverallScore: 40,
		Resume:       strongResume(),
	}
	assert.Equal(t, GenerateSuggestions(in), GenerateSuggestions(in))
}
