// Package salary turns job and candidate signals into an explainable salary
// range using fixed lookup tables and multipliers.
package salary

import "github.com/jonathan/resume-scorer/internal/types"

// band is a base compensation row in dollars
type band struct {
	Min, Mid, Max float64
	// BaseYears is the experience a level already assumes
	BaseYears float64
}

var baseBands = map[types.JobLevel]band{
	types.JobLevelEntry:  {Min: 55000, Mid: 70000, Max: 85000, BaseYears: 0},
	types.JobLevelMid:    {Min: 80000, Mid: 100000, Max: 120000, BaseYears: 2},
	types.JobLevelSenior: {Min: 120000, Mid: 150000, Max: 180000, BaseYears: 5},
}

// industryMultiplier is one row of the industry lookup. Rows are tried in
// order and the first substring hit wins, so "fintech" precedes "tech".
type industryMultiplier struct {
	Match      string
	Multiplier float64
}

var industryMultipliers = []industryMultiplier{
	{"fintech", 1.20},
	{"finance", 1.15},
	{"banking", 1.15},
	{"software", 1.15},
	{"technology", 1.10},
	{"tech", 1.10},
	{"consulting", 1.05},
	{"healthcare", 1.00},
	{"retail", 0.95},
	{"government", 0.90},
	{"education", 0.90},
	{"non profit", 0.85},
	{"nonprofit", 0.85},
}

// highDemandSkills earn a premium when the job requires them
var highDemandSkills = []string{
	"kubernetes", "aws", "gcp", "azure", "machine learning", "ai", "go",
	"golang", "rust", "terraform", "react", "typescript", "python", "kafka",
	"docker", "graphql", "data engineering", "security",
}

const (
	experienceBonusPerYear = 0.02
	demandBonusPerSkill    = 0.02

	atsStrongThreshold = 80
	atsFairThreshold   = 60
	atsStrongMultiple  = 1.05
	atsFairMultiple    = 1.00
	atsWeakMultiple    = 0.95

	baseConfidence       = 50
	industryConfidence   = 10
	levelConfidence      = 10
	skillsConfidence     = 10
	yearsConfidence      = 10
	cultureConfidence    = 5
	maxConfidence        = 85
	skillsConfidenceMinN = 3
)
