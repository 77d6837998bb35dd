package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/db"
	"github.com/jonathan/resume-scorer/internal/observability"
	"github.com/jonathan/resume-scorer/internal/pipeline"
	"github.com/spf13/cobra"
)

// Output formats
const (
	formatText = "text"
	formatJSON = "json"
)

// resolveConfig merges the config file, environment and the --verbose flag,
// then fills defaults
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	cfg.ApplyEnv()
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{})
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setupLogger builds the logger for cfg and installs it as the slog default
func setupLogger(cfg config.Config) *slog.Logger {
	logger := cfg.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// readInput loads the job, resume and optional answers files
func readInput(jobPath, resumePath, answersPath string) (pipeline.Input, error) {
	if jobPath == "" || resumePath == "" {
		return pipeline.Input{}, fmt.Errorf("both --job and --resume are required")
	}

	job, err := readFile("job", jobPath)
	if err != nil {
		return pipeline.Input{}, err
	}
	resume, err := readFile("resume", resumePath)
	if err != nil {
		return pipeline.Input{}, err
	}

	var answers []byte
	if answersPath != "" {
		if answers, err = readFile("answers", answersPath); err != nil {
			return pipeline.Input{}, err
		}
	}

	in, err := pipeline.DecodeInput(job, resume, answers)
	if err != nil {
		return pipeline.Input{}, err
	}
	return in, nil
}

func readFile(what, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s file not found: %s", what, path)
		}
		return nil, fmt.Errorf("failed to read %s file: %w", what, err)
	}
	return data, nil
}

// openStore connects to the report database and ensures its schema
func openStore(ctx context.Context, databaseURL string) (*db.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL not set (set DATABASE_URL environment variable, database_url in --config, or use --db-url flag)")
	}
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// writeResult renders a result as boxed text or JSON. JSON goes to outPath
// when set, otherwise to w.
func writeResult(w io.Writer, result *pipeline.Result, format, outPath string) error {
	switch format {
	case formatText:
		observability.NewPrinter(w).PrintReports(result.Score, result.Gap, result.Salary)
		return nil
	case formatJSON:
		return writeJSON(w, result, outPath)
	default:
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}
}

func writeJSON(w io.Writer, v any, outPath string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	if outPath == "" {
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Wrote %s\n", outPath)
	return nil
}
