// Package steps provides step definitions and dependency resolution for the
// analysis pipeline.
package steps

import (
	"fmt"
	"sort"
)

// Step names
const (
	StepScore  = "score"
	StepGap    = "gap"
	StepSalary = "salary"
)

// Step categories
const (
	CategoryScoring      = "scoring"
	CategoryGap          = "gap_analysis"
	CategoryCompensation = "compensation"
)

// StepDefinition defines metadata for a pipeline step
type StepDefinition struct {
	Name         string
	Category     string
	Dependencies []string
	// Order positions the step in execution order; lower runs first
	Order int
}

// StepRegistry holds all step definitions
var StepRegistry = map[string]StepDefinition{
	StepScore: {
		Name:         StepScore,
		Category:     CategoryScoring,
		Dependencies: []string{},
		Order:        1,
	},
	StepGap: {
		Name:         StepGap,
		Category:     CategoryGap,
		Dependencies: []string{},
		Order:        2,
	},
	StepSalary: {
		Name:         StepSalary,
		Category:     CategoryCompensation,
		Dependencies: []string{StepScore},
		Order:        3,
	},
}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("step %s has missing dependencies: %v", e.Step, e.MissingDependencies)
}

// UnknownStepError is returned for a step name not in the registry
type UnknownStepError struct {
	Step string
}

func (e *UnknownStepError) Error() string {
	return fmt.Sprintf("unknown step: %s", e.Step)
}

// ValidateDependencies checks that every dependency of stepName is in completed
func ValidateDependencies(stepName string, completed map[string]bool) error {
	def, ok := StepRegistry[stepName]
	if !ok {
		return &UnknownStepError{Step: stepName}
	}

	var missing []string
	for _, dep := range def.Dependencies {
		if !completed[dep] {
			missing = append(missing, dep)
		}
	}

	if len(missing) > 0 {
		return &DependencyError{
			Step:                stepName,
			MissingDependencies: missing,
		}
	}
	return nil
}

// Resolve expands the requested steps with their transitive dependencies and
// returns them in execution order. An empty request selects every step.
func Resolve(requested []string) ([]string, error) {
	if len(requested) == 0 {
		requested = AllSteps()
	}

	selected := make(map[string]bool)
	var visit func(name string) error
	visit = func(name string) error {
		def, ok := StepRegistry[name]
		if !ok {
			return &UnknownStepError{Step: name}
		}
		if selected[name] {
			return nil
		}
		selected[name] = true
		for _, dep := range def.Dependencies {
			if err := visit(dep); err != nil {
				return err
			}
		}
		return nil
	}

	for _, name := range requested {
		if err := visit(name); err != nil {
			return nil, err
		}
	}

	out := make([]string, 0, len(selected))
	for name := range selected {
		out = append(out, name)
	}
	sortByOrder(out)
	return out, nil
}

// AllSteps returns every registered step in execution order
func AllSteps() []string {
	out := make([]string, 0, len(StepRegistry))
	for name := range StepRegistry {
		out = append(out, name)
	}
	sortByOrder(out)
	return out
}

func sortByOrder(names []string) {
	sort.Slice(names, func(i, j int) bool {
		return StepRegistry[names[i]].Order < StepRegistry[names[j]].Order
	})
}
