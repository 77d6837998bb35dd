package types

import "fmt"

// InvalidArgumentError indicates a structurally invalid job or resume argument.
// Scorers return it before doing any computation.
type InvalidArgumentError struct {
	Argument string
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Argument, e.Reason)
}

// RequireJob returns an InvalidArgumentError if job is nil
func RequireJob(job *JobRequirements) error {
	if job == nil {
		return &InvalidArgumentError{Argument: "job", Reason: "job requirements are required"}
	}
	return nil
}

// RequireResume returns an InvalidArgumentError if resume is nil
func RequireResume(resume *ResumeContent) error {
	if resume == nil {
		return &InvalidArgumentError{Argument: "resume", Reason: "resume content is required"}
	}
	return nil
}
