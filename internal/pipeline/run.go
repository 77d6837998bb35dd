// Package pipeline provides the high-level orchestration for scoring, gap
// analysis and salary estimation of one resume against one job.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-scorer/internal/db"
	"github.com/jonathan/resume-scorer/internal/gap"
	"github.com/jonathan/resume-scorer/internal/pipeline/steps"
	"github.com/jonathan/resume-scorer/internal/salary"
	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs.
// Score and gap run in parallel, so it must be safe for concurrent use.
type ProgressCallback func(event ProgressEvent)

// ReportStore persists finished analyses. *db.DB satisfies it.
type ReportStore interface {
	SaveReport(ctx context.Context, report *db.Report) error
}

// Input is one job/resume pair with optional free-text answers
type Input struct {
	Job     *types.JobRequirements `json:"job"`
	Resume  *types.ResumeContent   `json:"resume"`
	Answers types.UserAnswers      `json:"answers,omitempty"`
}

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Steps      []string // empty runs every step
	Store      ReportStore
	Logger     *slog.Logger
	OnProgress ProgressCallback
}

// Result holds the reports produced by one run
type Result struct {
	ID     uuid.UUID           `json:"id"`
	Steps  []string            `json:"steps"`
	Score  *types.ScoreReport  `json:"score,omitempty"`
	Gap    *types.GapReport    `json:"gap,omitempty"`
	Salary *types.SalaryReport `json:"salary,omitempty"`
}

// Run executes the selected steps for one input. Score and gap run in
// parallel; salary waits for the score it depends on. When a store is
// configured the result is saved under Result.ID.
func Run(ctx context.Context, in Input, opts RunOptions) (*Result, error) {
	if err := types.RequireJob(in.Job); err != nil {
		return nil, err
	}
	if err := types.RequireResume(in.Resume); err != nil {
		return nil, err
	}

	selected, err := steps.Resolve(opts.Steps)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	result := &Result{ID: uuid.New(), Steps: selected}
	runID := result.ID.String()
	emit := func(step, message string, content any) {
		if opts.OnProgress == nil {
			return
		}
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: steps.StepRegistry[step].Category,
			Message:  message,
			RunID:    runID,
			Content:  content,
		})
	}
	want := make(map[string]bool, len(selected))
	for _, name := range selected {
		want[name] = true
	}

	g, gCtx := errgroup.WithContext(ctx)
	var mu sync.Mutex
	completed := make(map[string]bool, len(selected))

	if want[steps.StepScore] {
		g.Go(func() error {
			start := time.Now()
			report, err := scoring.Score(in.Job, in.Resume)
			if err != nil {
				return fmt.Errorf("score step failed: %w", err)
			}
			if err := gCtx.Err(); err != nil {
				return err
			}
			mu.Lock()
			result.Score = report
			completed[steps.StepScore] = true
			mu.Unlock()
			logger.Debug("step completed", "run_id", runID, "step", steps.StepScore,
				"overall_score", report.OverallScore, "duration", time.Since(start))
			emit(steps.StepScore, fmt.Sprintf("ATS score %d/100", report.OverallScore), report)
			return nil
		})
	}

	if want[steps.StepGap] {
		g.Go(func() error {
			start := time.Now()
			report, err := gap.Analyze(in.Job, in.Resume, in.Answers)
			if err != nil {
				return fmt.Errorf("gap step failed: %w", err)
			}
			if err := gCtx.Err(); err != nil {
				return err
			}
			mu.Lock()
			result.Gap = report
			completed[steps.StepGap] = true
			mu.Unlock()
			logger.Debug("step completed", "run_id", runID, "step", steps.StepGap,
				"match_percentage", report.OverallMatchPercentage, "duration", time.Since(start))
			emit(steps.StepGap, fmt.Sprintf("Skills match %d%%", report.OverallMatchPercentage), report)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if want[steps.StepSalary] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := steps.ValidateDependencies(steps.StepSalary, completed); err != nil {
			return nil, err
		}
		report, err := salary.Estimate(in.Job, in.Resume, result.Score, in.Answers)
		if err != nil {
			return nil, fmt.Errorf("salary step failed: %w", err)
		}
		result.Salary = report
		logger.Debug("step completed", "run_id", runID, "step", steps.StepSalary,
			"salary_mid", report.Range.Mid, "confidence", report.Confidence)
		emit(steps.StepSalary, fmt.Sprintf("Estimated salary $%d - $%d", report.Range.Min, report.Range.Max), report)
	}

	if opts.Store != nil {
		record := &db.Report{
			ID:      result.ID,
			Kind:    KindFor(selected),
			Job:     in.Job,
			Resume:  in.Resume,
			Answers: in.Answers,
			Score:   result.Score,
			Gap:     result.Gap,
			Salary:  result.Salary,
		}
		if err := opts.Store.SaveReport(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to save report: %w", err)
		}
		logger.Info("report saved", "run_id", runID, "kind", record.Kind)
	}

	return result, nil
}

// KindFor maps a resolved step selection to the stored report kind
func KindFor(selected []string) string {
	has := make(map[string]bool, len(selected))
	for _, name := range selected {
		has[name] = true
	}
	switch {
	case has[steps.StepScore] && has[steps.StepGap] && has[steps.StepSalary]:
		return db.KindAnalysis
	case has[steps.StepSalary] && !has[steps.StepGap]:
		return db.KindSalary
	case len(selected) == 1 && has[steps.StepScore]:
		return db.KindScore
	case len(selected) == 1 && has[steps.StepGap]:
		return db.KindGap
	default:
		return db.KindAnalysis
	}
}

// RunBatch runs every input with at most concurrency runs in flight
// (unbounded when concurrency <= 0). Results keep input order. The first
// failure cancels the remaining runs.
func RunBatch(ctx context.Context, inputs []Input, concurrency int, opts RunOptions) ([]*Result, error) {
	results := make([]*Result, len(inputs))

	g, gCtx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, in := range inputs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			res, err := Run(gCtx, in, opts)
			if err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
