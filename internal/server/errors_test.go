package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-scorer/internal/db"
	"github.com/jonathan/resume-scorer/internal/pipeline/steps"
	"github.com/jonathan/resume-scorer/internal/schemas"
	"github.com/jonathan/resume-scorer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "limit", Message: "must be a positive integer"}
	assert.Equal(t, "validation error: limit - must be a positive integer", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrReportNotFound(t *testing.T) {
	id := uuid.New()
	err := &ErrReportNotFound{ID: id}
	assert.Equal(t, "report not found: "+id.String(), err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"ErrValidation", &ErrValidation{Field: "body", Message: "bad"}, http.StatusBadRequest},
		{"Schema ValidationError", &schemas.ValidationError{Document: "job"}, http.StatusBadRequest},
		{"Wrapped schema error", fmt.Errorf("item 2: %w", &schemas.ValidationError{}), http.StatusBadRequest},
		{"InvalidArgumentError", &types.InvalidArgumentError{Argument: "job"}, http.StatusBadRequest},
		{"UnknownStepError", &steps.UnknownStepError{Step: "x"}, http.StatusBadRequest},
		{"ErrReportNotFound", &ErrReportNotFound{}, http.StatusNotFound},
		{"db.ErrReportNotFound", fmt.Errorf("%w: abc", db.ErrReportNotFound), http.StatusNotFound},
		{"ErrStorageDisabled", &ErrStorageDisabled{}, http.StatusServiceUnavailable},
		{"Deadline", fmt.Errorf("input 0: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"Unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
