package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-scorer/internal/pipeline"
	"github.com/jonathan/resume-scorer/internal/pipeline/steps"
	"github.com/spf13/cobra"
)

// analysisFlags are the flags shared by score, gap, salary and analyze
type analysisFlags struct {
	job         string
	resume      string
	answers     string
	out         string
	format      string
	steps       []string
	save        bool
	databaseURL string
}

func (f *analysisFlags) register(cmd *cobra.Command, withSteps bool) {
	cmd.Flags().StringVarP(&f.job, "job", "j", "", "Path to job requirements JSON (required)")
	cmd.Flags().StringVarP(&f.resume, "resume", "r", "", "Path to resume content JSON (required)")
	cmd.Flags().StringVarP(&f.answers, "answers", "a", "", "Path to user answers JSON (optional)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Write JSON output to this file")
	cmd.Flags().StringVarP(&f.format, "format", "f", formatText, "Output format: text or json")
	cmd.Flags().BoolVar(&f.save, "save", false, "Save the report to the database")
	cmd.Flags().StringVar(&f.databaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	if withSteps {
		cmd.Flags().StringSliceVar(&f.steps, "steps", nil, "Steps to run: "+strings.Join(steps.AllSteps(), ", ")+" (default all)")
	}

	for _, name := range []string{"job", "resume"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
}

var (
	scoreFlags   analysisFlags
	gapFlags     analysisFlags
	salaryFlags  analysisFlags
	analyzeFlags analysisFlags
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute the ATS score of a resume against a job",
	Long: `Scores keyword match (50%), required-skill coverage (30%) and content quality (20%),
flags keyword stuffing and lists improvement suggestions.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAnalysisCmd(cmd, &scoreFlags, []string{steps.StepScore})
	},
}

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Analyze skill and qualification gaps",
	Long: `Classifies required skills and preferred qualifications as matched or missing,
suggests transferable experience for missing skills and prioritizes recommendations.
Answers to screening questions count as evidence.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAnalysisCmd(cmd, &gapFlags, []string{steps.StepGap})
	},
}

var salaryCmd = &cobra.Command{
	Use:   "salary",
	Short: "Estimate a salary range for the job and candidate",
	Long: `Estimates a salary range from job level, industry, years of experience,
high-demand skills and the ATS score, with an explanation of each factor.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAnalysisCmd(cmd, &salaryFlags, []string{steps.StepSalary})
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run score, gap and salary analysis together",
	Long:  `Runs every analysis step, or those selected with --steps. Score and gap run in parallel.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAnalysisCmd(cmd, &analyzeFlags, analyzeFlags.steps)
	},
}

func init() {
	scoreFlags.register(scoreCmd, false)
	gapFlags.register(gapCmd, false)
	salaryFlags.register(salaryCmd, false)
	analyzeFlags.register(analyzeCmd, true)

	rootCmd.AddCommand(scoreCmd, gapCmd, salaryCmd, analyzeCmd)
}

func runAnalysisCmd(cmd *cobra.Command, f *analysisFlags, selected []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	opts := pipeline.RunOptions{Steps: selected, Logger: logger}
	if f.save {
		databaseURL := cfg.DatabaseURL
		if f.databaseURL != "" {
			databaseURL = f.databaseURL
		}
		database, err := openStore(ctx, databaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
		opts.Store = database
	}

	return analyze(ctx, cmd.OutOrStdout(), f, opts)
}

// analyze loads the input files, runs the pipeline and writes the result
func analyze(ctx context.Context, w io.Writer, f *analysisFlags, opts pipeline.RunOptions) error {
	in, err := readInput(f.job, f.resume, f.answers)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(ctx, in, opts)
	if err != nil {
		return err
	}

	format := f.format
	if f.out != "" {
		format = formatJSON
	}
	if err := writeResult(w, result, format, f.out); err != nil {
		return err
	}

	if opts.Store != nil {
		_, _ = fmt.Fprintf(w, "Saved report %s\n", result.ID)
	}
	return nil
}
