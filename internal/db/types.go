package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Report kinds
const (
	KindScore    = "score"
	KindGap      = "gap"
	KindSalary   = "salary"
	KindAnalysis = "analysis"
)

// ValidKind reports whether kind is one of the report kinds
func ValidKind(kind string) bool {
	switch kind {
	case KindScore, KindGap, KindSalary, KindAnalysis:
		return true
	}
	return false
}

// Report is a stored analysis: its inputs and whichever reports were produced
type Report struct {
	ID        uuid.UUID              `json:"id"`
	Kind      string                 `json:"kind"`
	Job       *types.JobRequirements `json:"job"`
	Resume    *types.ResumeContent   `json:"resume"`
	Answers   types.UserAnswers      `json:"answers,omitempty"`
	Score     *types.ScoreReport     `json:"score,omitempty"`
	Gap       *types.GapReport       `json:"gap,omitempty"`
	Salary    *types.SalaryReport    `json:"salary,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// ReportSummary is a lightweight view of a report for listing
type ReportSummary struct {
	ID              uuid.UUID `json:"id"`
	Kind            string    `json:"kind"`
	OverallScore    *int      `json:"overall_score,omitempty"`
	MatchPercentage *int      `json:"match_percentage,omitempty"`
	SalaryMid       *int      `json:"salary_mid,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ReportFilters holds optional filters for listing reports
type ReportFilters struct {
	Kind     string
	MinScore int
	Limit    int
}

// headline extracts the indexed summary columns of a report
func (r *Report) headline() (score, match, salaryMid *int) {
	if r.Score != nil {
		v := r.Score.OverallScore
		score = &v
	}
	if r.Gap != nil {
		v := r.Gap.OverallMatchPercentage
		match = &v
	}
	if r.Salary != nil {
		v := r.Salary.Range.Mid
		salaryMid = &v
	}
	return score, match, salaryMid
}
