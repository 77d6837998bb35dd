package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the resume_scorer binary for CLI tests
func getBinaryPath(t *testing.T) string {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "resume_scorer")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/resume_scorer ./cmd/resume_scorer'", binaryPath)
	}
	return binaryPath
}

// writeFixture writes content to name under dir and returns the path
func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
	return path
}

const (
	fixtureJob = `{
		"requiredSkills": ["Go", "Kubernetes", "GraphQL"],
		"preferredQualifications": ["Experience with distributed systems"],
		"atsKeywords": [{"keyword": "Go", "frequency": 3}, {"keyword": "microservices", "frequency": 2}],
		"jobLevel": "mid",
		"industry": "Software"
	}`
	fixtureStrongResume = `{
		"summary": "Backend engineer building Go microservices on Kubernetes. Focused on reliability.",
		"experience": [
			{"company": "Acme", "role": "Software Engineer", "duration": "2019 - 2024",
			 "bullets": ["Built 12 Go microservices handling 5M requests per day", "Designed REST API schema for billing"]}
		],
		"skills": {"languages": ["Go"], "platforms": ["Kubernetes", "Docker"]}
	}`
	fixtureWeakResume = `{
		"summary": "Designer.",
		"experience": [{"company": "Studio", "role": "Designer", "duration": "2022 - 2023", "bullets": ["Made posters"]}]
	}`
	fixtureAnswers = `{"How many years of experience do you have?": "5"}`
)
