// Package gap classifies required skills and qualifications as matched or
// missing and infers transferable experience for the missing ones.
package gap

import (
	"github.com/jonathan/resume-scorer/internal/parsing"
)

// skillEquivalents groups synonyms and abbreviations under a canonical skill.
// Lookup is case-insensitive and punctuation-insensitive.
var skillEquivalents = map[string][]string{
	"react":                   {"react", "reactjs", "react.js", "react native"},
	"javascript":              {"javascript", "js", "ecmascript", "es6"},
	"typescript":              {"typescript", "ts"},
	"node":                    {"node", "nodejs", "node.js"},
	"vue":                     {"vue", "vuejs", "vue.js"},
	"angular":                 {"angular", "angularjs", "angular.js"},
	"go":                      {"go", "golang"},
	"python":                  {"python", "python3"},
	"kubernetes":              {"kubernetes", "k8s"},
	"aws":                     {"aws", "amazon web services"},
	"gcp":                     {"gcp", "google cloud", "google cloud platform"},
	"azure":                   {"azure", "microsoft azure"},
	"postgresql":              {"postgresql", "postgres", "psql"},
	"mongodb":                 {"mongodb", "mongo"},
	"machine learning":        {"machine learning", "ml"},
	"artificial intelligence": {"artificial intelligence", "ai"},
	"ci/cd":                   {"ci/cd", "cicd", "continuous integration", "continuous delivery"},
	"graphql":                 {"graphql", "gql"},
	"rest":                    {"rest", "restful", "rest api", "restful api"},
	"docker":                  {"docker", "containerization"},
}

// relatedConcepts maps a canonical skill to concepts whose presence suggests
// transferable experience
var relatedConcepts = map[string][]string{
	"react":              {"javascript", "frontend", "component", "jsx", "redux", "ui"},
	"graphql":            {"api", "rest", "schema", "apollo", "query"},
	"kubernetes":         {"docker", "container", "orchestration", "helm", "devops"},
	"docker":             {"container", "kubernetes", "devops", "deployment"},
	"aws":                {"cloud", "ec2", "s3", "lambda", "gcp", "azure"},
	"gcp":                {"cloud", "aws", "azure", "bigquery"},
	"azure":              {"cloud", "aws", "gcp"},
	"typescript":         {"javascript", "types", "static typing", "angular"},
	"javascript":         {"frontend", "web", "typescript", "node"},
	"python":             {"scripting", "django", "flask", "pandas", "data analysis"},
	"go":                 {"concurrency", "microservices", "backend", "systems programming"},
	"java":               {"jvm", "spring", "kotlin", "object oriented"},
	"node":               {"javascript", "express", "backend", "api"},
	"machine learning":   {"data science", "statistics", "python", "modeling", "tensorflow"},
	"terraform":          {"infrastructure as code", "cloudformation", "ansible", "devops"},
	"sql":                {"database", "queries", "postgresql", "mysql", "data"},
	"postgresql":         {"sql", "database", "mysql", "queries"},
	"ci/cd":              {"jenkins", "github actions", "pipeline", "automation", "deployment"},
	"leadership":         {"led", "mentored", "managed", "team lead"},
	"project management": {"agile", "scrum", "roadmap", "stakeholder"},
	"communication":      {"presented", "documentation", "stakeholder", "collaborated"},
}

var (
	// synonymGroup maps every normalized synonym to its canonical skill
	synonymGroup = buildSynonymIndex(skillEquivalents)
	// conceptIndex is relatedConcepts keyed by normalized canonical skill
	conceptIndex = buildConceptIndex(relatedConcepts)
)

func buildSynonymIndex(groups map[string][]string) map[string]string {
	index := make(map[string]string)
	for canonical, synonyms := range groups {
		key := parsing.Normalize(canonical)
		index[key] = key
		for _, syn := range synonyms {
			if n := parsing.Normalize(syn); n != "" {
				index[n] = key
			}
		}
	}
	return index
}

func buildConceptIndex(table map[string][]string) map[string][]string {
	index := make(map[string][]string, len(table))
	for skill, concepts := range table {
		index[parsing.Normalize(skill)] = concepts
	}
	return index
}

// canonicalSkill returns the canonical form of a normalized skill, or the
// skill itself when it has no synonyms
func canonicalSkill(normalized string) string {
	if canonical, ok := synonymGroup[normalized]; ok {
		return canonical
	}
	return normalized
}

// equivalent reports whether two normalized skills are in the same synonym group
func equivalent(a, b string) bool {
	ca, okA := synonymGroup[a]
	cb, okB := synonymGroup[b]
	return okA && okB && ca == cb
}

// conceptsFor returns the related concepts of a normalized skill
func conceptsFor(normalized string) []string {
	return conceptIndex[canonicalSkill(normalized)]
}
