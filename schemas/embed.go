// Package schemas holds the JSON Schemas for the documents the scorer accepts.
package schemas

import "embed"

// Files contains every *.schema.json in this directory
//
//go:embed *.schema.json
var Files embed.FS

// Schema file names
const (
	JobRequirements = "job_requirements.schema.json"
	ResumeContent   = "resume_content.schema.json"
)
