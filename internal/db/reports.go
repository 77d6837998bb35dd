package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const defaultListLimit = 50

// ErrReportNotFound is returned when deleting a report that does not exist
var ErrReportNotFound = errors.New("report not found")

// SaveReport stores a report. A nil ID is replaced with a new UUID.
func (db *DB) SaveReport(ctx context.Context, report *Report) error {
	if report == nil {
		return fmt.Errorf("report is nil")
	}
	if !ValidKind(report.Kind) {
		return fmt.Errorf("invalid report kind %q", report.Kind)
	}
	if report.Job == nil || report.Resume == nil {
		return fmt.Errorf("report job and resume are required")
	}
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}

	job, err := marshalColumn(report.Job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}
	resume, err := marshalColumn(report.Resume)
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}
	answers, err := marshalColumn(report.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}
	score, err := marshalColumn(report.Score)
	if err != nil {
		return fmt.Errorf("failed to marshal score: %w", err)
	}
	gap, err := marshalColumn(report.Gap)
	if err != nil {
		return fmt.Errorf("failed to marshal gap: %w", err)
	}
	salary, err := marshalColumn(report.Salary)
	if err != nil {
		return fmt.Errorf("failed to marshal salary: %w", err)
	}

	overall, match, salaryMid := report.headline()

	err = db.pool.QueryRow(ctx,
		`INSERT INTO analysis_reports
		   (id, kind, overall_score, match_percentage, salary_mid, job, resume, answers, score, gap, salary)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING created_at`,
		report.ID, report.Kind, overall, match, salaryMid, job, resume, answers, score, gap, salary,
	).Scan(&report.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// GetReport retrieves a report by ID. It returns nil, nil when none exists.
func (db *DB) GetReport(ctx context.Context, id uuid.UUID) (*Report, error) {
	var report Report
	var job, resume, answers, score, gap, salary []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, kind, job, resume, answers, score, gap, salary, created_at
		 FROM analysis_reports WHERE id = $1`,
		id,
	).Scan(&report.ID, &report.Kind, &job, &resume, &answers, &score, &gap, &salary, &report.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	columns := []struct {
		name string
		data []byte
		dst  any
	}{
		{"job", job, &report.Job},
		{"resume", resume, &report.Resume},
		{"answers", answers, &report.Answers},
		{"score", score, &report.Score},
		{"gap", gap, &report.Gap},
		{"salary", salary, &report.Salary},
	}
	for _, col := range columns {
		if len(col.data) == 0 {
			continue
		}
		if err := json.Unmarshal(col.data, col.dst); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", col.name, err)
		}
	}

	return &report, nil
}

// ListReports retrieves recent report summaries with optional filters
func (db *DB) ListReports(ctx context.Context, filters ReportFilters) ([]ReportSummary, error) {
	query, args := buildListQuery(filters)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	summaries := []ReportSummary{}
	for rows.Next() {
		var s ReportSummary
		if err := rows.Scan(&s.ID, &s.Kind, &s.OverallScore, &s.MatchPercentage, &s.SalaryMid, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return summaries, nil
}

// DeleteReport deletes a report by ID
func (db *DB) DeleteReport(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM analysis_reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrReportNotFound, id)
	}
	return nil
}

func buildListQuery(filters ReportFilters) (string, []any) {
	if filters.Limit <= 0 {
		filters.Limit = defaultListLimit
	}

	query := `SELECT id, kind, overall_score, match_percentage, salary_mid, created_at
		FROM analysis_reports WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Kind != "" {
		query += fmt.Sprintf(" AND kind = $%d", argNum)
		args = append(args, filters.Kind)
		argNum++
	}
	if filters.MinScore > 0 {
		query += fmt.Sprintf(" AND overall_score >= $%d", argNum)
		args = append(args, filters.MinScore)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)
	return query, args
}

// marshalColumn encodes v for a JSONB column, mapping nil values to SQL NULL
func marshalColumn(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(data) == "null" {
		return nil, nil
	}
	return data, nil
}
