package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/resume-scorer/internal/db"
	"github.com/jonathan/resume-scorer/internal/pipeline"
	"github.com/jonathan/resume-scorer/internal/pipeline/steps"
)

const maxBodyBytes = 2 << 20

var validate = validator.New()

// AnalyzeRequest is the body of the analysis endpoints. Job and resume are
// kept raw so they can be checked against their JSON Schemas before decoding.
type AnalyzeRequest struct {
	Job     json.RawMessage `json:"job" validate:"required"`
	Resume  json.RawMessage `json:"resume" validate:"required"`
	Answers json.RawMessage `json:"answers,omitempty"`
	Steps   []string        `json:"steps,omitempty" validate:"omitempty,dive,oneof=score gap salary"`
	// Save stores the result when storage is configured; defaults to true
	Save *bool `json:"save,omitempty"`
}

// BatchRequest is the body of POST /analyze/batch
type BatchRequest struct {
	Items []AnalyzeRequest `json:"items" validate:"required,min=1,max=50,dive"`
	Steps []string         `json:"steps,omitempty" validate:"omitempty,dive,oneof=score gap salary"`
	Save  *bool            `json:"save,omitempty"`
}

// BatchResponse is the reply of POST /analyze/batch
type BatchResponse struct {
	Results []*pipeline.Result `json:"results"`
}

// ReportListResponse is the reply of GET /reports
type ReportListResponse struct {
	Reports []db.ReportSummary `json:"reports"`
	Count   int                `json:"count"`
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	s.analyze(w, r, []string{steps.StepScore})
}

func (s *Server) handleGap(w http.ResponseWriter, r *http.Request) {
	s.analyze(w, r, []string{steps.StepGap})
}

func (s *Server) handleSalary(w http.ResponseWriter, r *http.Request) {
	s.analyze(w, r, []string{steps.StepSalary})
}

// handleAnalyze runs the steps named in the request, or all of them
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	s.analyze(w, r, nil)
}

// analyze decodes one request and runs the pipeline. fixed overrides the
// request's step selection for the single-purpose endpoints.
func (s *Server) analyze(w http.ResponseWriter, r *http.Request, fixed []string) {
	var req AnalyzeRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	in, err := pipeline.DecodeInput(req.Job, req.Resume, req.Answers)
	if err != nil {
		s.writeError(w, err)
		return
	}

	selected := req.Steps
	if fixed != nil {
		selected = fixed
	}

	result, err := pipeline.Run(r.Context(), in, s.runOptions(selected, req.Save))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleAnalyzeBatch scores many job/resume pairs with bounded concurrency
func (s *Server) handleAnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	inputs := make([]pipeline.Input, len(req.Items))
	for i, item := range req.Items {
		in, err := pipeline.DecodeInput(item.Job, item.Resume, item.Answers)
		if err != nil {
			s.writeError(w, fmt.Errorf("item %d: %w", i, err))
			return
		}
		inputs[i] = in
	}

	results, err := pipeline.RunBatch(r.Context(), inputs, s.batchConcurrency, s.runOptions(req.Steps, req.Save))
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.Info("batch completed", slog.Int("items", len(results)))
	s.jsonResponse(w, http.StatusOK, BatchResponse{Results: results})
}

// handleListReports lists stored report summaries, newest first
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, &ErrStorageDisabled{})
		return
	}

	query := r.URL.Query()
	filters := db.ReportFilters{Kind: query.Get("kind")}
	if filters.Kind != "" && !db.ValidKind(filters.Kind) {
		s.writeError(w, &ErrValidation{Field: "kind", Message: "must be one of score, gap, salary, analysis"})
		return
	}
	if v := query.Get("min_score"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 100 {
			s.writeError(w, &ErrValidation{Field: "min_score", Message: "must be an integer between 0 and 100"})
			return
		}
		filters.MinScore = n
	}
	if v := query.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			s.writeError(w, &ErrValidation{Field: "limit", Message: "must be a positive integer"})
			return
		}
		filters.Limit = n
	}

	reports, err := s.store.ListReports(r.Context(), filters)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, ReportListResponse{Reports: reports, Count: len(reports)})
}

// handleGetReport returns one stored report with its inputs
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id, ok := s.reportID(w, r)
	if !ok {
		return
	}

	report, err := s.store.GetReport(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if report == nil {
		s.writeError(w, &ErrReportNotFound{ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

func (s *Server) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	id, ok := s.reportID(w, r)
	if !ok {
		return
	}

	if err := s.store.DeleteReport(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// reportID parses the {id} path value, replying with an error when the
// store is missing or the ID is malformed
func (s *Server) reportID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	if s.store == nil {
		s.writeError(w, &ErrStorageDisabled{})
		return uuid.Nil, false
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "id", Message: "invalid report ID format"})
		return uuid.Nil, false
	}
	return id, true
}

// decodeBody reads a size-limited JSON body into dst and validates its tags
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid request body: " + err.Error()}
	}
	if err := validate.Struct(dst); err != nil {
		return extractValidationError(err)
	}
	return nil
}

// extractValidationError converts validator errors to an ErrValidation on
// the first failing field
func extractValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return &ErrValidation{Field: ve.Namespace(), Message: "failed on " + ve.Tag()}
	}
	return &ErrValidation{Field: "body", Message: "invalid request"}
}

func (s *Server) runOptions(selected []string, save *bool) pipeline.RunOptions {
	opts := pipeline.RunOptions{Steps: selected, Logger: s.logger}
	if s.store != nil && (save == nil || *save) {
		opts.Store = s.store
	}
	return opts
}
