package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/jonathan/resume-scorer/internal/pipeline"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score many resumes against one job and rank them",
	Long: `Runs the analysis for every resume against the same job with bounded
concurrency (batch_concurrency in --config, BATCH_CONCURRENCY, or --concurrency)
and prints the resumes ranked by ATS score.`,
	RunE: runBatchCmd,
}

var (
	batchJob         string
	batchResumes     []string
	batchAnswers     string
	batchSteps       []string
	batchConcurrency int
	batchFormat      string
	batchOut         string
)

// BatchEntry is one ranked resume in batch output
type BatchEntry struct {
	Resume string           `json:"resume"`
	Result *pipeline.Result `json:"result"`
}

func init() {
	batchCmd.Flags().StringVarP(&batchJob, "job", "j", "", "Path to job requirements JSON (required)")
	batchCmd.Flags().StringSliceVarP(&batchResumes, "resumes", "r", nil, "Resume JSON files or glob patterns (required)")
	batchCmd.Flags().StringVarP(&batchAnswers, "answers", "a", "", "Path to user answers JSON applied to every resume")
	batchCmd.Flags().StringSliceVar(&batchSteps, "steps", []string{"score"}, "Steps to run for each resume")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Maximum analyses in flight (default from config)")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", formatText, "Output format: text or json")
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", "", "Write JSON output to this file")

	if err := batchCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := batchCmd.MarkFlagRequired("resumes"); err != nil {
		panic(fmt.Sprintf("failed to mark resumes flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatchCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg)

	concurrency := cfg.BatchConcurrency
	if cmd.Flags().Changed("concurrency") {
		concurrency = batchConcurrency
	}

	paths, err := expandPaths(batchResumes)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	entries, err := runBatch(ctx, batchJob, paths, batchAnswers, concurrency, pipeline.RunOptions{Steps: batchSteps, Logger: logger})
	if err != nil {
		return err
	}

	format := batchFormat
	if batchOut != "" {
		format = formatJSON
	}
	return writeBatch(cmd.OutOrStdout(), entries, format, batchOut)
}

// expandPaths resolves glob patterns, keeping literal paths that match nothing
func expandPaths(patterns []string) ([]string, error) {
	var paths []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			matches = []string{pattern}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	return paths, nil
}

// runBatch analyzes every resume against the job and ranks the results by
// overall score, best first. Ties keep input order.
func runBatch(ctx context.Context, jobPath string, resumePaths []string, answersPath string, concurrency int, opts pipeline.RunOptions) ([]BatchEntry, error) {
	inputs := make([]pipeline.Input, len(resumePaths))
	for i, path := range resumePaths {
		in, err := readInput(jobPath, path, answersPath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		inputs[i] = in
	}

	results, err := pipeline.RunBatch(ctx, inputs, concurrency, opts)
	if err != nil {
		return nil, err
	}

	entries := make([]BatchEntry, len(results))
	for i, res := range results {
		entries[i] = BatchEntry{Resume: resumePaths[i], Result: res}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return rankScore(entries[i].Result) > rankScore(entries[j].Result)
	})
	return entries, nil
}

// rankScore is the ATS score, or the gap match when only gap ran
func rankScore(res *pipeline.Result) int {
	switch {
	case res.Score != nil:
		return res.Score.OverallScore
	case res.Gap != nil:
		return res.Gap.OverallMatchPercentage
	default:
		return 0
	}
}

func writeBatch(w io.Writer, entries []BatchEntry, format, outPath string) error {
	switch format {
	case formatJSON:
		return writeJSON(w, entries, outPath)
	case formatText:
		for i, e := range entries {
			line := fmt.Sprintf("%2d. %-40s", i+1, e.Resume)
			if e.Result.Score != nil {
				line += fmt.Sprintf("  ATS %3d", e.Result.Score.OverallScore)
			}
			if e.Result.Gap != nil {
				line += fmt.Sprintf("  match %3d%%", e.Result.Gap.OverallMatchPercentage)
			}
			if e.Result.Salary != nil {
				line += fmt.Sprintf("  salary $%d-$%d", e.Result.Salary.Range.Min, e.Result.Salary.Range.Max)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}
}
