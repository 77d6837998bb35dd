package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-scorer/internal/db"
	"github.com/jonathan/resume-scorer/internal/observability"
	"github.com/spf13/cobra"
)

var (
	reportsDatabaseURL string
	reportsKind        string
	reportsMinScore    int
	reportsLimit       int
	reportsFormat      string
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List, show and delete stored reports",
}

var reportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored reports, newest first",
	RunE:  runReportsList,
}

var reportsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a stored report",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportsGet,
}

var reportsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored report",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportsDelete,
}

func init() {
	reportsCmd.PersistentFlags().StringVar(&reportsDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	reportsListCmd.Flags().StringVar(&reportsKind, "kind", "", "Only reports of this kind: score, gap, salary or analysis")
	reportsListCmd.Flags().IntVar(&reportsMinScore, "min-score", 0, "Only reports with at least this ATS score")
	reportsListCmd.Flags().IntVar(&reportsLimit, "limit", 20, "Maximum reports to list")

	reportsGetCmd.Flags().StringVarP(&reportsFormat, "format", "f", formatText, "Output format: text or json")

	reportsCmd.AddCommand(reportsListCmd, reportsGetCmd, reportsDeleteCmd)
	rootCmd.AddCommand(reportsCmd)
}

// withStore resolves config, connects and runs fn against the database
func withStore(cmd *cobra.Command, fn func(ctx context.Context, database *db.DB) error) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	setupLogger(cfg)

	if reportsDatabaseURL != "" {
		cfg.DatabaseURL = reportsDatabaseURL
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := openStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	return fn(ctx, database)
}

func runReportsList(cmd *cobra.Command, _ []string) error {
	if reportsKind != "" && !db.ValidKind(reportsKind) {
		return fmt.Errorf("invalid kind %q", reportsKind)
	}

	return withStore(cmd, func(ctx context.Context, database *db.DB) error {
		summaries, err := database.ListReports(ctx, db.ReportFilters{
			Kind:     reportsKind,
			MinScore: reportsMinScore,
			Limit:    reportsLimit,
		})
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "ID\tKIND\tATS\tMATCH\tSALARY MID\tCREATED")
		for _, s := range summaries {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				s.ID, s.Kind, optionalInt(s.OverallScore, ""), optionalInt(s.MatchPercentage, "%"),
				optionalInt(s.SalaryMid, ""), s.CreatedAt.Format(time.DateTime))
		}
		return tw.Flush()
	})
}

func runReportsGet(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid report ID: %w", err)
	}

	return withStore(cmd, func(ctx context.Context, database *db.DB) error {
		report, err := database.GetReport(ctx, id)
		if err != nil {
			return err
		}
		if report == nil {
			return fmt.Errorf("report not found: %s", id)
		}

		out := cmd.OutOrStdout()
		if reportsFormat == formatJSON {
			return writeJSON(out, report, "")
		}
		_, _ = fmt.Fprintf(out, "Report %s (%s, %s)\n", report.ID, report.Kind, report.CreatedAt.Format(time.DateTime))
		observability.NewPrinter(out).PrintReports(report.Score, report.Gap, report.Salary)
		return nil
	})
}

func runReportsDelete(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid report ID: %w", err)
	}

	return withStore(cmd, func(ctx context.Context, database *db.DB) error {
		if err := database.DeleteReport(ctx, id); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted report %s\n", id)
		return nil
	})
}

func optionalInt(v *int, suffix string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d%s", *v, suffix)
}
