package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/pipeline/steps"
	"github.com/jonathan/resume-scorer/internal/queue"
	"github.com/spf13/cobra"
)

var (
	workerAMQPURL     string
	workerQueue       string
	workerResultQueue string
	workerCount       int
	workerDatabaseURL string
	workerSave        bool

	submitJob     string
	submitResume  string
	submitAnswers string
	submitSteps   []string
	submitReplyTo string
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consume analysis requests from RabbitMQ",
	Long: `Start a pool of consumers on the request queue. Each request is validated,
analyzed and answered on its reply_to queue (or the result queue) with a
"processing" update followed by "completed" or "failed".`,
	RunE: runWorker,
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Publish an analysis request to RabbitMQ",
	RunE:  runSubmit,
}

func init() {
	workerCmd.Flags().StringVar(&workerAMQPURL, "amqp-url", "", "RabbitMQ URL (defaults to AMQP_URL or RABBITMQ_URL env var)")
	workerCmd.Flags().StringVar(&workerQueue, "queue", "", "Request queue (default analysis_requests)")
	workerCmd.Flags().StringVar(&workerResultQueue, "result-queue", "", "Queue for results of requests without reply_to (default analysis_results)")
	workerCmd.Flags().IntVar(&workerCount, "workers", 0, "Number of consumers (default 3)")
	workerCmd.Flags().StringVar(&workerDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	workerCmd.Flags().BoolVar(&workerSave, "save", false, "Store every result in the report database")

	submitCmd.Flags().StringVarP(&submitJob, "job", "j", "", "Path to job requirements JSON (required)")
	submitCmd.Flags().StringVarP(&submitResume, "resume", "r", "", "Path to resume JSON (required)")
	submitCmd.Flags().StringVarP(&submitAnswers, "answers", "a", "", "Path to user answers JSON")
	submitCmd.Flags().StringSliceVar(&submitSteps, "steps", nil, "Steps to run: score, gap, salary (default all)")
	submitCmd.Flags().StringVar(&submitReplyTo, "reply-to", "", "Queue the worker should answer on")
	submitCmd.Flags().StringVar(&workerAMQPURL, "amqp-url", "", "RabbitMQ URL (defaults to AMQP_URL or RABBITMQ_URL env var)")
	submitCmd.Flags().StringVar(&workerQueue, "queue", "", "Request queue (default analysis_requests)")

	if err := submitCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := submitCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(workerCmd, submitCmd)
}

// resolveQueueConfig applies the queue flags on top of the merged config
func resolveQueueConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return cfg, err
	}
	if workerAMQPURL != "" {
		cfg.AMQPURL = workerAMQPURL
	}
	if workerQueue != "" {
		cfg.RequestQueue = workerQueue
	}
	if workerResultQueue != "" {
		cfg.ResultQueue = workerResultQueue
	}
	if workerCount != 0 {
		cfg.Workers = workerCount
	}
	if workerDatabaseURL != "" {
		cfg.DatabaseURL = workerDatabaseURL
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.AMQPURL == "" {
		return cfg, fmt.Errorf("AMQP_URL not set (set AMQP_URL environment variable, amqp_url in --config, or use --amqp-url flag)")
	}
	return cfg, nil
}

func runWorker(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveQueueConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := queue.Options{
		RequestQueue: cfg.RequestQueue,
		ResultQueue:  cfg.ResultQueue,
		Workers:      cfg.Workers,
		Logger:       logger,
	}
	if workerSave {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		database, err := openStore(connectCtx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			return err
		}
		defer database.Close()
		opts.Store = database
	}

	conn, ch, err := queue.Dial(cfg.AMQPURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	logger.Info("starting worker pool",
		slog.Int("workers", cfg.Workers),
		slog.String("queue", cfg.RequestQueue),
		slog.Bool("save", workerSave),
	)
	if err := queue.NewWorker(ch, opts).Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	logger.Info("worker pool stopped")
	return nil
}

func runSubmit(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveQueueConfig(cmd)
	if err != nil {
		return err
	}
	setupLogger(cfg)

	req, err := readRequest(submitJob, submitResume, submitAnswers, submitSteps)
	if err != nil {
		return err
	}

	conn, ch, err := queue.Dial(cfg.AMQPURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	id, err := queue.Submit(ch, cfg.RequestQueue, submitReplyTo, req)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Submitted request %s to %s\n", id, cfg.RequestQueue)
	return nil
}

// readRequest loads the input files into a queue request, checking them
// against their schemas before anything is published
func readRequest(jobPath, resumePath, answersPath string, selected []string) (queue.Request, error) {
	if _, err := readInput(jobPath, resumePath, answersPath); err != nil {
		return queue.Request{}, err
	}
	if _, err := steps.Resolve(selected); err != nil {
		return queue.Request{}, err
	}

	req := queue.Request{Steps: selected}
	var err error
	if req.Job, err = readFile("job", jobPath); err != nil {
		return req, err
	}
	if req.Resume, err = readFile("resume", resumePath); err != nil {
		return req, err
	}
	if answersPath != "" {
		if req.Answers, err = readFile("answers", answersPath); err != nil {
			return req, err
		}
	}
	return req, nil
}
