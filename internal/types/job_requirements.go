// Package types provides type definitions for structured data used throughout the resume-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobLevel is the seniority band of a job posting
type JobLevel string

// Recognized job levels
const (
	JobLevelEntry  JobLevel = "entry"
	JobLevelMid    JobLevel = "mid"
	JobLevelSenior JobLevel = "senior"
)

// Valid reports whether the level is one of entry, mid or senior
func (l JobLevel) Valid() bool {
	switch l {
	case JobLevelEntry, JobLevelMid, JobLevelSenior:
		return true
	default:
		return false
	}
}

// JobRequirements represents the structured analysis of a job posting.
// It is produced upstream and is read-only for every scorer.
type JobRequirements struct {
	RequiredSkills           StringList   `json:"requiredSkills"`
	PreferredQualifications  StringList   `json:"preferredQualifications"`
	KeyResponsibilities      StringList   `json:"keyResponsibilities"`
	ATSKeywords              []ATSKeyword `json:"atsKeywords"`
	JobLevel                 JobLevel     `json:"jobLevel"`
	Industry                 string       `json:"industry"`
	CompanyCultureIndicators StringList   `json:"companyCultureIndicators"`
}

// ATSKeyword is a job keyword with its importance weight.
// Frequency is a weight assigned by the job analyzer, not an occurrence count.
type ATSKeyword struct {
	Keyword   string `json:"keyword"`
	Frequency int    `json:"frequency"`
}
