package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/resume-scorer/internal/db"
	"github.com/jonathan/resume-scorer/internal/pipeline/steps"
	"github.com/jonathan/resume-scorer/internal/schemas"
	"github.com/jonathan/resume-scorer/internal/types"
)

// ErrorResponse is the JSON body of every error reply
type ErrorResponse struct {
	Error   string               `json:"error"`
	Details []schemas.FieldError `json:"details,omitempty"`
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrReportNotFound indicates no stored report has the requested ID
type ErrReportNotFound struct {
	ID uuid.UUID
}

func (e *ErrReportNotFound) Error() string {
	return fmt.Sprintf("report not found: %s", e.ID)
}

// ErrStorageDisabled indicates a report endpoint was called without a database
type ErrStorageDisabled struct{}

func (e *ErrStorageDisabled) Error() string {
	return "report storage is not configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validation     *ErrValidation
		schemaErr      *schemas.ValidationError
		invalidArg     *types.InvalidArgumentError
		unknownStep    *steps.UnknownStepError
		notFound       *ErrReportNotFound
		storageMissing *ErrStorageDisabled
	)

	switch {
	case errors.As(err, &validation), errors.As(err, &schemaErr),
		errors.As(err, &invalidArg), errors.As(err, &unknownStep):
		return http.StatusBadRequest
	case errors.As(err, &notFound), errors.Is(err, db.ErrReportNotFound):
		return http.StatusNotFound
	case errors.As(err, &storageMissing):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// writeError replies with the status HTTPStatus assigns to err. Schema
// failures carry their field errors; internal errors are logged and masked.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
		s.errorResponse(w, status, "internal server error")
		return
	}

	resp := ErrorResponse{Error: err.Error()}
	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		resp.Details = schemaErr.Errors
	}
	s.jsonResponse(w, status, resp)
}
