package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-scorer/internal/pipeline"
	"github.com/jonathan/resume-scorer/internal/pipeline/steps"
	"github.com/jonathan/resume-scorer/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_TextOutput(t *testing.T) {
	dir := t.TempDir()
	f := &analysisFlags{
		job:     writeFixture(t, dir, "job.json", fixtureJob),
		resume:  writeFixture(t, dir, "resume.json", fixtureStrongResume),
		answers: writeFixture(t, dir, "answers.json", fixtureAnswers),
		format:  formatText,
	}

	var buf bytes.Buffer
	require.NoError(t, analyze(context.Background(), &buf, f, pipeline.RunOptions{}))

	output := buf.String()
	assert.Contains(t, output, "ATS SCORE")
	assert.Contains(t, output, "SKILLS GAP")
	assert.Contains(t, output, "SALARY ESTIMATE")
	assert.Contains(t, output, "GraphQL")
}

func TestAnalyze_JSONToFile(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out", "score.json")
	f := &analysisFlags{
		job:    writeFixture(t, dir, "job.json", fixtureJob),
		resume: writeFixture(t, dir, "resume.json", fixtureStrongResume),
		out:    outPath,
		format: formatText,
	}

	var buf bytes.Buffer
	require.NoError(t, analyze(context.Background(), &buf, f, pipeline.RunOptions{Steps: []string{steps.StepScore}}))
	assert.Contains(t, buf.String(), "Wrote "+outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var result pipeline.Result
	require.NoError(t, json.Unmarshal(data, &result))
	require.NotNil(t, result.Score)
	assert.Nil(t, result.Gap)
	assert.Equal(t, []string{"GraphQL"}, result.Score.MissingSkills)
}

func TestAnalyze_UnknownFormat(t *testing.T) {
	dir := t.TempDir()
	f := &analysisFlags{
		job:    writeFixture(t, dir, "job.json", fixtureJob),
		resume: writeFixture(t, dir, "resume.json", fixtureStrongResume),
		format: "yaml",
	}

	err := analyze(context.Background(), &bytes.Buffer{}, f, pipeline.RunOptions{})
	assert.ErrorContains(t, err, "unknown format")
}

func TestReadInput_Errors(t *testing.T) {
	dir := t.TempDir()
	job := writeFixture(t, dir, "job.json", fixtureJob)

	_, err := readInput(job, "", "")
	assert.ErrorContains(t, err, "both --job and --resume are required")

	_, err = readInput(job, filepath.Join(dir, "missing.json"), "")
	assert.ErrorContains(t, err, "resume file not found")

	bad := writeFixture(t, dir, "bad.json", `{"summary": "no experience"}`)
	_, err = readInput(job, bad, "")
	var verr *schemas.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestScoreCommand_MissingJobFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "score", "--resume", "resume.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}
