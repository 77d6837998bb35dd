package steps

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepRegistry(t *testing.T) {
	for _, stepName := range []string{StepScore, StepGap, StepSalary} {
		def, ok := StepRegistry[stepName]
		require.True(t, ok, "Step %s should be in registry", stepName)
		assert.Equal(t, stepName, def.Name)
		assert.NotEmpty(t, def.Category)
	}
}

func TestAllSteps_Ordered(t *testing.T) {
	assert.Equal(t, []string{StepScore, StepGap, StepSalary}, AllSteps())
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		requested []string
		expected  []string
	}{
		{"Empty selects all", nil, []string{StepScore, StepGap, StepSalary}},
		{"Salary pulls in score", []string{StepSalary}, []string{StepScore, StepSalary}},
		{"Gap alone", []string{StepGap}, []string{StepGap}},
		{"Duplicates collapse", []string{StepGap, StepScore, StepGap}, []string{StepScore, StepGap}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.requested)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolve_UnknownStep(t *testing.T) {
	_, err := Resolve([]string{StepScore, "rewrite"})

	var unknown *UnknownStepError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "rewrite", unknown.Step)
}

func TestValidateDependencies(t *testing.T) {
	assert.NoError(t, ValidateDependencies(StepScore, nil))
	assert.NoError(t, ValidateDependencies(StepSalary, map[string]bool{StepScore: true}))

	err := ValidateDependencies(StepSalary, map[string]bool{StepGap: true})
	var depErr *DependencyError
	require.True(t, errors.As(err, &depErr))
	assert.Equal(t, StepSalary, depErr.Step)
	assert.Equal(t, []string{StepScore}, depErr.MissingDependencies)
	assert.Contains(t, err.Error(), "missing dependencies")

	assert.Error(t, ValidateDependencies("nope", nil))
}
