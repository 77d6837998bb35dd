package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/resume-scorer/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBatch_RanksByScore(t *testing.T) {
	dir := t.TempDir()
	job := writeFixture(t, dir, "job.json", fixtureJob)
	weak := writeFixture(t, dir, "a_weak.json", fixtureWeakResume)
	strong := writeFixture(t, dir, "b_strong.json", fixtureStrongResume)

	entries, err := runBatch(context.Background(), job, []string{weak, strong}, "", 2, pipeline.RunOptions{Steps: []string{"score"}})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, strong, entries[0].Resume)
	assert.Equal(t, weak, entries[1].Resume)
	assert.Greater(t, entries[0].Result.Score.OverallScore, entries[1].Result.Score.OverallScore)

	var buf bytes.Buffer
	require.NoError(t, writeBatch(&buf, entries, formatText, ""))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], " 1. "))
	assert.Contains(t, lines[0], "b_strong.json")
	assert.Contains(t, lines[0], "ATS")
}

func TestRunBatch_InvalidResume(t *testing.T) {
	dir := t.TempDir()
	job := writeFixture(t, dir, "job.json", fixtureJob)
	bad := writeFixture(t, dir, "bad.json", `{}`)

	_, err := runBatch(context.Background(), job, []string{bad}, "", 1, pipeline.RunOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	a := writeFixture(t, dir, "a.json", "{}")
	b := writeFixture(t, dir, "b.json", "{}")
	literal := filepath.Join(dir, "missing.json")

	paths, err := expandPaths([]string{filepath.Join(dir, "*.json"), a, literal})
	require.NoError(t, err)
	assert.Equal(t, []string{a, b, literal}, paths)

	_, err = expandPaths([]string{"[bad"})
	assert.Error(t, err)
}
