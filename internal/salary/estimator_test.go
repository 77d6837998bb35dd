package salary

import (
	"errors"
	"testing"
	"time"

	"github.com/jonathan/resume-scorer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate_SeniorWithExperienceAndStrongScore(t *testing.T) {
	job := &types.JobRequirements{JobLevel: types.JobLevelSenior}
	answers := types.UserAnswers{{Question: "How many years of experience do you have?", Answer: "6"}}
	score := &types.ScoreReport{OverallScore: 85}

	report, err := Estimate(job, &types.ResumeContent{}, score, answers)
	require.NoError(t, err)

	base := baseBands[types.JobLevelSenior]
	assert.Greater(t, float64(report.Range.Min), base.Min)
	assert.Greater(t, float64(report.Range.Mid), base.Mid)
	assert.Greater(t, float64(report.Range.Max), base.Max)

	// 1.02 experience * 1.05 ats
	assert.Equal(t, types.SalaryRange{Min: 129000, Mid: 161000, Max: 193000}, report.Range)
	assert.Equal(t, 70, report.Confidence)
	assert.LessOrEqual(t, report.Confidence, maxConfidence)
}

func TestEstimate_ConfidenceCapped(t *testing.T) {
	job := &types.JobRequirements{
		JobLevel:                 types.JobLevelMid,
		Industry:                 "Software",
		RequiredSkills:           types.StringList{"Go", "Kubernetes", "AWS", "Terraform"},
		CompanyCultureIndicators: types.StringList{"remote-first"},
	}
	answers := types.UserAnswers{{Question: "Years in the field?", Answer: "about 4"}}

	report, err := Estimate(job, &types.ResumeContent{}, nil, answers)
	require.NoError(t, err)

	// 50 + 10 + 10 + 10 + 10 + 5 = 95, capped
	assert.Equal(t, 85, report.Confidence)
}

func TestEstimate_DefaultsAndUnknownLevel(t *testing.T) {
	report, err := Estimate(&types.JobRequirements{JobLevel: "principal"}, &types.ResumeContent{}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, types.SalaryRange{Min: 80000, Mid: 100000, Max: 120000}, report.Range)
	assert.Equal(t, 50, report.Confidence)
	assert.Equal(t, "mid", report.Factors[0].Value)
	assert.Contains(t, report.Tips, "Share your years of experience to sharpen this estimate")
}

func TestEstimate_MultipliersCompose(t *testing.T) {
	job := &types.JobRequirements{
		JobLevel:       types.JobLevelEntry,
		Industry:       "Non-Profit",
		RequiredSkills: types.StringList{"Python", "Excel"},
	}
	score := &types.ScoreReport{OverallScore: 40}

	report, err := Estimate(job, &types.ResumeContent{}, score, nil)
	require.NoError(t, err)

	// 0.85 industry * 1.02 skills * 0.95 ats = 0.82365
	assert.Equal(t, types.SalaryRange{Min: 45000, Mid: 58000, Max: 70000}, report.Range)

	impacts := map[string]types.Impact{}
	for _, f := range report.Factors {
		impacts[f.Factor] = f.Impact
	}
	assert.Equal(t, types.ImpactNegative, impacts["Industry"])
	assert.Equal(t, types.ImpactPositive, impacts["High-Demand Skills"])
	assert.Equal(t, types.ImpactNegative, impacts["ATS Match"])
	assert.NotContains(t, impacts, "Experience")
}

func TestEstimate_InvalidArguments(t *testing.T) {
	var argErr *types.InvalidArgumentError

	_, err := Estimate(nil, &types.ResumeContent{}, nil, nil)
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "job", argErr.Argument)

	_, err = Estimate(&types.JobRequirements{}, nil, nil, nil)
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "resume", argErr.Argument)
}

func TestIndustryMultiplierFor(t *testing.T) {
	tests := []struct {
		industry string
		expected float64
	}{
		{"", 1.0},
		{"FinTech", 1.20},
		{"Enterprise Software", 1.15},
		{"Tech", 1.10},
		{"Public Education", 0.90},
		{"Agriculture", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.industry, func(t *testing.T) {
			assert.Equal(t, tt.expected, industryMultiplierFor(tt.industry))
		})
	}
}

func TestAtsMultiplier(t *testing.T) {
	assert.Equal(t, 1.05, atsMultiplier(80))
	assert.Equal(t, 1.00, atsMultiplier(79))
	assert.Equal(t, 1.00, atsMultiplier(60))
	assert.Equal(t, 0.95, atsMultiplier(59))
}

func TestYearsOfExperience(t *testing.T) {
	now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	tests := []struct {
		name    string
		answers types.UserAnswers
		resume  *types.ResumeContent
		years   float64
		ok      bool
	}{
		{
			name:    "Year question wins",
			answers: types.UserAnswers{{Question: "Years of experience?", Answer: "7"}, {Answer: "I spent 3 years at Acme"}},
			years:   7,
			ok:      true,
		},
		{
			name:    "Years phrase in any answer",
			answers: types.UserAnswers{{Question: "Background?", Answer: "I have 4.5 years in backend work"}},
			years:   4.5,
			ok:      true,
		},
		{
			name: "Summed durations",
			resume: &types.ResumeContent{Experience: []types.Experience{
				{Duration: "2016 - 2019"},
				{Duration: "2020 - Present"},
				{Duration: "6 months"},
			}},
			years: 7.5,
			ok:    true,
		},
		{
			name:   "Nothing parseable",
			resume: &types.ResumeContent{Experience: []types.Experience{{Duration: "a while"}}},
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			years, ok := yearsOfExperience(tt.answers, tt.resume)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.years, years, 0.001)
		})
	}
}
