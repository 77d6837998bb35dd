package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-scorer/internal/schemas"
	"github.com/jonathan/resume-scorer/internal/types"
	schemafiles "github.com/jonathan/resume-scorer/schemas"
)

// DecodeInput validates raw job and resume JSON against their schemas and
// decodes them. answers may be empty; it accepts any of the shapes
// types.UserAnswers understands and is not schema-checked.
func DecodeInput(job, resume, answers []byte) (Input, error) {
	var in Input

	if err := schemas.ValidateDocument(schemafiles.JobRequirements, "job", job); err != nil {
		return in, err
	}
	if err := schemas.ValidateDocument(schemafiles.ResumeContent, "resume", resume); err != nil {
		return in, err
	}

	in.Job = &types.JobRequirements{}
	if err := json.Unmarshal(job, in.Job); err != nil {
		return in, fmt.Errorf("failed to decode job: %w", err)
	}
	in.Resume = &types.ResumeContent{}
	if err := json.Unmarshal(resume, in.Resume); err != nil {
		return in, fmt.Errorf("failed to decode resume: %w", err)
	}

	if len(answers) > 0 {
		if err := json.Unmarshal(answers, &in.Answers); err != nil {
			return in, &types.InvalidArgumentError{Argument: "answers", Reason: err.Error()}
		}
	}
	return in, nil
}
