package scoring

import (
	"testing"

	"github.com/jonathan/resume-scorer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestScoreSkills_VacuousRequirement(t *testing.T) {
	result := ScoreSkills(&types.ResumeContent{}, []string{})

	assert.Equal(t, 100.0, result.Score)
	assert.Equal(t, []string{}, result.MissingSkills)
	assert.Equal(t, []string{}, result.FoundSkills)
}

func TestScoreSkills_TextAndCategoryMatches(t *testing.T) {
	resume := &types.ResumeContent{
		Summary: "Engineer focused on distributed systems.",
		Skills: types.SkillSet{
			{Name: "databases", Skills: []string{"PostgreSQL 15"}},
			{Name: "cloud", Skills: []string{"AWS"}},
		},
	}

	result := ScoreSkills(resume, []string{"Distributed Systems", "PostgreSQL", "Amazon Web Services", "Kafka"})

	assert.Equal(t, []string{"Distributed Systems", "PostgreSQL"}, result.FoundSkills)
	assert.Equal(t, []string{"Amazon Web Services", "Kafka"}, result.MissingSkills)
	assert.Equal(t, 50.0, result.Score)
}

func TestScoreSkills_EntryContainedInRequirement(t *testing.T) {
	resume := &types.ResumeContent{
		Skills: types.SkillSet{{Name: "tools", Skills: []string{"Docker"}}},
	}

	// "docker" is contained in "docker compose"
	result := ScoreSkills(resume, []string{"Docker Compose"})
	assert.Equal(t, 100.0, result.Score)
}

func TestScoreSkills_AnyCategoryNames(t *testing.T) {
	legacy := &types.ResumeContent{Skills: types.SkillSet{{Name: "technical", Skills: []string{"Go"}}}}
	newer := &types.ResumeContent{Skills: types.SkillSet{{Name: "languages", Skills: []string{"Go"}}}}

	assert.Equal(t, 100.0, ScoreSkills(legacy, []string{"go"}).Score)
	assert.Equal(t, 100.0, ScoreSkills(newer, []string{"go"}).Score)
}

func TestScoreSkills_NilResume(t *testing.T) {
	result := ScoreSkills(nil, []string{"Go", "Rust", "Zig"})
	assert.Equal(t, 0.0, result.Score)
	assert.Len(t, result.MissingSkills, 3)
}

func TestScoreSkills_RoundsToTwoDecimals(t *testing.T) {
	resume := &types.ResumeContent{Skills: types.SkillSet{{Name: "languages", Skills: []string{"Go"}}}}
	result := ScoreSkills(resume, []string{"Go", "Rust", "Zig"})
	assert.Equal(t, 33.33, result.Score)
}

func TestScoreSkills_SingleLetterEntryMatchesBySubstring(t *testing.T) {
	resume := &types.ResumeContent{
		Skills: types.SkillSet{{Name: "languages", Skills: []string{"C#"}}},
	}

	// "c" is contained in "docker" but not in "rust"
	result := ScoreSkills(resume, []string{"Docker", "Rust"})

	assert.Equal(t, []string{"Docker"}, result.FoundSkills)
	assert.Equal(t, []string{"Rust"}, result.MissingSkills)
	assert.Equal(t, 50.0, result.Score)
}
