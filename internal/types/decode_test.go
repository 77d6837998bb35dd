package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected StringList
	}{
		{"Array", `["go", "rust"]`, StringList{"go", "rust"}},
		{"Drops non-strings", `["go", 3, null, {"a": 1}, "rust"]`, StringList{"go", "rust"}},
		{"Lone string", `"go"`, StringList{"go"}},
		{"Null", `null`, nil},
		{"Object", `{"a": "b"}`, nil},
		{"Empty array", `[]`, StringList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestATSKeyword_UnmarshalJSON(t *testing.T) {
	var keywords []ATSKeyword
	input := `[
		{"keyword": "Go", "frequency": 4},
		{"keyword": "Rust", "frequency": "3"},
		{"keyword": "Zig", "frequency": 2.6},
		{"keyword": "Nim", "frequency": -2},
		{"keyword": "Odin"},
		"Kotlin",
		{"frequency": 5}
	]`
	require.NoError(t, json.Unmarshal([]byte(input), &keywords))

	assert.Equal(t, []ATSKeyword{
		{Keyword: "Go", Frequency: 4},
		{Keyword: "Rust", Frequency: 3},
		{Keyword: "Zig", Frequency: 3},
		{Keyword: "Nim", Frequency: 0},
		{Keyword: "Odin", Frequency: 0},
		{Keyword: "Kotlin", Frequency: 0},
		{Keyword: "", Frequency: 5},
	}, keywords)
}

func TestSkillSet_PreservesCategoryOrder(t *testing.T) {
	var skills SkillSet
	input := `{"tools": ["Docker"], "languages": ["Go", 7, "Python"], "soft": "Mentoring", "empty": null}`
	require.NoError(t, json.Unmarshal([]byte(input), &skills))

	assert.Equal(t, SkillSet{
		{Name: "tools", Skills: []string{"Docker"}},
		{Name: "languages", Skills: []string{"Go", "Python"}},
		{Name: "soft", Skills: []string{"Mentoring"}},
		{Name: "empty", Skills: nil},
	}, skills)
	assert.Equal(t, []string{"Docker", "Go", "Python", "Mentoring"}, skills.All())
	assert.Equal(t, []string{"Go", "Python"}, skills.Category("languages"))
	assert.Nil(t, skills.Category("missing"))

	out, err := json.Marshal(skills)
	require.NoError(t, err)
	assert.Equal(t, `{"tools":["Docker"],"languages":["Go","Python"],"soft":["Mentoring"],"empty":[]}`, string(out))
}

func TestSkillSet_FlatArray(t *testing.T) {
	var skills SkillSet
	require.NoError(t, json.Unmarshal([]byte(`["Go", "SQL"]`), &skills))
	assert.Equal(t, SkillSet{{Name: "skills", Skills: []string{"Go", "SQL"}}}, skills)
}

func TestResumeContent_ToleratesPartialDocument(t *testing.T) {
	var resume ResumeContent
	input := `{
		"summary": "Engineer",
		"experience": [{"company": "Acme", "bullets": "Shipped things"}, {"role": "Engineer", "duration": null}],
		"skills": null
	}`
	require.NoError(t, json.Unmarshal([]byte(input), &resume))

	assert.Equal(t, "Engineer", resume.Summary)
	require.Len(t, resume.Experience, 2)
	assert.Equal(t, StringList{"Shipped things"}, resume.Experience[0].Bullets)
	assert.Nil(t, resume.Skills)
}

func TestUserAnswers_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected UserAnswers
	}{
		{
			name:  "Object keeps order",
			input: `{"years": 6, "stack": "Go and Postgres", "blank": ""}`,
			expected: UserAnswers{
				{Question: "years", Answer: "6"},
				{Question: "stack", Answer: "Go and Postgres"},
			},
		},
		{
			name:  "Array of pairs and strings",
			input: `[{"question": "Lead?", "answer": "Yes, a team of 4"}, "Built REST APIs", 12, true]`,
			expected: UserAnswers{
				{Question: "Lead?", Answer: "Yes, a team of 4"},
				{Answer: "Built REST APIs"},
				{Answer: "12"},
			},
		},
		{
			name:     "Plain string",
			input:    `"I know Kubernetes"`,
			expected: UserAnswers{{Answer: "I know Kubernetes"}},
		},
		{
			name:     "Null",
			input:    `null`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got UserAnswers
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestUserAnswers_Text(t *testing.T) {
	answers := UserAnswers{{Answer: "one"}, {Answer: ""}, {Question: "q", Answer: "two"}}
	assert.Equal(t, "one two", answers.Text())
	assert.Equal(t, "", UserAnswers(nil).Text())
}

func TestEntries_CoerceScalarFields(t *testing.T) {
	var resume ResumeContent
	input := `{
		"experience": [{"company": 3.5, "role": true, "duration": ["2020"], "bullets": null}, "not an object"],
		"education": [{"degree": "MSc", "year": 2021, "details": {"gpa": 4}}],
		"additionalSections": [{"title": null, "items": "Kafka"}]
	}`
	require.NoError(t, json.Unmarshal([]byte(input), &resume))

	require.Len(t, resume.Experience, 2)
	assert.Equal(t, Experience{Company: "3.5"}, resume.Experience[0])
	assert.Equal(t, Experience{}, resume.Experience[1])
	assert.Equal(t, Education{Degree: "MSc", Year: "2021"}, resume.Education[0])
	assert.Equal(t, AdditionalSection{Items: StringList{"Kafka"}}, resume.AdditionalSections[0])
}
