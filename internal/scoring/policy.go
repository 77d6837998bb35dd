// Package scoring computes the deterministic ATS score of a resume against a job.
package scoring

// Aggregate weights for the overall score
const (
	keywordWeight = 0.50
	skillsWeight  = 0.30
	contentWeight = 0.20
)

// Keyword scoring policy
const (
	// maxCountedOccurrences caps how many occurrences of a keyword earn credit
	maxCountedOccurrences = 3
	// stuffingThreshold is the occurrence count above which a keyword is flagged
	stuffingThreshold = 5
)

// Suggestion thresholds
const (
	keywordCriticalThreshold = 75.0
	keywordSoftThreshold     = 85.0
	skillsCriticalThreshold  = 75.0
	skillsSoftThreshold      = 90.0
	contentThreshold         = 75.0

	criticalListLimit = 8
	softListLimit     = 3

	// minSummaryWords is the summary length below which expansion is advised
	minSummaryWords = 30

	overallWeakBand   = 60
	overallStrongBand = 80
)

// Content quality point budget (sums to 100)
const (
	summaryMaxPoints    = 25.0
	bulletsMaxPoints    = 40.0
	skillsMaxPoints     = 20.0
	educationPoints     = 10.0
	additionalPoints    = 5.0
	metricRatioPoints   = 20.0
	actionVerbPoints    = 15.0
	multipleRolesPoints = 5.0
	toneWordPoints      = 10.0
)
