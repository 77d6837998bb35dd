package types

// ScoreReport is the ATS score of a resume against a job.
// It is recomputed on every call and never persisted by the scorers.
type ScoreReport struct {
	OverallScore        int            `json:"overallScore"`
	KeywordMatchScore   float64        `json:"keywordMatchScore"`
	SkillsCoverageScore float64        `json:"skillsCoverageScore"`
	ContentQualityScore float64        `json:"contentQualityScore"`
	MissingKeywords     []string       `json:"missingKeywords"`
	MissingSkills       []string       `json:"missingSkills"`
	FoundSkills         []string       `json:"foundSkills"`
	KeywordCounts       map[string]int `json:"keywordCounts"`
	StuffedKeywords     []string       `json:"stuffedKeywords"`
	Suggestions         []string       `json:"suggestions"`
}

// Priority ranks a gap recommendation
type Priority string

// Recommendation priorities, highest first
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns a sort key where lower means more urgent
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// TransferableHint names a related concept the candidate has shown that may
// stand in for a missing skill
type TransferableHint struct {
	Concept string `json:"concept"`
	Source  string `json:"source"` // "answers" or "resume"
	Role    string `json:"role,omitempty"`
	Company string `json:"company,omitempty"`
}

// MissingSkill is a required skill not demonstrated by the resume or answers
type MissingSkill struct {
	Skill             string             `json:"skill"`
	RelatedExperience []TransferableHint `json:"relatedExperience"`
}

// Recommendation is one prioritized piece of gap advice
type Recommendation struct {
	Priority Priority `json:"priority"`
	Type     string   `json:"type"`
	Message  string   `json:"message"`
}

// GapReport classifies required skills and preferred qualifications
type GapReport struct {
	MatchedSkills          []string         `json:"matchedSkills"`
	MissingSkills          []MissingSkill   `json:"missingSkills"`
	MatchedQualifications  []string         `json:"matchedQualifications"`
	MissingQualifications  []string         `json:"missingQualifications"`
	SkillMatchPercentage   float64          `json:"skillMatchPercentage"`
	QualMatchPercentage    float64          `json:"qualificationMatchPercentage"`
	OverallMatchPercentage int              `json:"overallMatchPercentage"`
	Recommendations        []Recommendation `json:"recommendations"`
	Summary                string           `json:"summary"`
}

// Impact describes which way a salary factor moved the estimate
type Impact string

// Salary factor impacts
const (
	ImpactPositive Impact = "positive"
	ImpactNegative Impact = "negative"
	ImpactNeutral  Impact = "neutral"
)

// SalaryRange is a compensation range in dollars, rounded to whole thousands
type SalaryRange struct {
	Min int `json:"min"`
	Mid int `json:"mid"`
	Max int `json:"max"`
}

// SalaryFactor explains one multiplier applied to the base range
type SalaryFactor struct {
	Factor      string `json:"factor"`
	Value       string `json:"value"`
	Impact      Impact `json:"impact"`
	Description string `json:"description"`
}

// SalaryReport is the explainable salary estimate for a job and candidate
type SalaryReport struct {
	Range      SalaryRange    `json:"range"`
	Factors    []SalaryFactor `json:"factors"`
	Tips       []string       `json:"tips"`
	Confidence int            `json:"confidence"`
}
