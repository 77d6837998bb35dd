// Package queue runs analyses requested over RabbitMQ. Each request carries a
// job, a resume and optional answers; the worker replies with status updates
// and finally the pipeline result.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/jonathan/resume-scorer/internal/pipeline"
)

// Update statuses
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Channel is the subset of *amqp.Channel the worker uses
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Qos(prefetchCount, prefetchSize int, global bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Request is the body of a message on the request queue
type Request struct {
	ID      string          `json:"id"`
	Job     json.RawMessage `json:"job"`
	Resume  json.RawMessage `json:"resume"`
	Answers json.RawMessage `json:"answers,omitempty"`
	Steps   []string        `json:"steps,omitempty"`
}

// Update is published for every state change of a request
type Update struct {
	RequestID string           `json:"request_id"`
	Status    string           `json:"status"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Result    *pipeline.Result `json:"result,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// Options configures a Worker
type Options struct {
	RequestQueue string
	ResultQueue  string // used when a message has no ReplyTo
	Workers      int
	Store        pipeline.ReportStore
	Logger       *slog.Logger
}

// Worker consumes analysis requests and publishes their results
type Worker struct {
	ch   Channel
	opts Options
	now  func() time.Time
}

// NewWorker creates a worker on ch. Zero options fall back to one consumer
// on "analysis_requests" replying to "analysis_results".
func NewWorker(ch Channel, opts Options) *Worker {
	if opts.RequestQueue == "" {
		opts.RequestQueue = "analysis_requests"
	}
	if opts.ResultQueue == "" {
		opts.ResultQueue = "analysis_results"
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Worker{ch: ch, opts: opts, now: time.Now}
}

// Declare creates the request and result queues as durable queues
func (w *Worker) Declare() error {
	for _, name := range []string{w.opts.RequestQueue, w.opts.ResultQueue} {
		if _, err := w.ch.QueueDeclare(
			name,
			true,  // durable
			false, // auto-delete
			false, // exclusive
			false, // no-wait
			nil,
		); err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", name, err)
		}
	}
	return nil
}

// Run consumes requests with the configured number of consumers until ctx
// is cancelled or the broker closes the delivery channel.
func (w *Worker) Run(ctx context.Context) error {
	if err := w.Declare(); err != nil {
		return err
	}
	if err := w.ch.Qos(w.opts.Workers, 0, false); err != nil {
		return fmt.Errorf("failed to set prefetch: %w", err)
	}

	deliveries, err := w.ch.Consume(
		w.opts.RequestQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to consume %s: %w", w.opts.RequestQueue, err)
	}

	var wg sync.WaitGroup
	wg.Add(w.opts.Workers)
	for i := range w.opts.Workers {
		w.opts.Logger.Info("worker started", slog.Int("worker", i+1), slog.String("queue", w.opts.RequestQueue))
		go func() {
			defer wg.Done()
			w.consume(ctx, deliveries)
		}()
	}
	wg.Wait()
	return ctx.Err()
}

func (w *Worker) consume(ctx context.Context, deliveries <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				return
			}
			w.Handle(ctx, d)
		}
	}
}

// Handle processes one delivery. Malformed and failing requests are acked
// after a failed update is published, so they are not redelivered; a
// delivery is requeued when its updates cannot be published or when ctx
// ends before the analysis does.
func (w *Worker) Handle(ctx context.Context, d amqp.Delivery) {
	if ctx.Err() != nil {
		w.release(d)
		return
	}

	var req Request
	if err := json.Unmarshal(d.Body, &req); err != nil {
		w.finish(d, w.failed(req.ID, fmt.Errorf("invalid request body: %w", err)))
		return
	}
	if req.ID == "" {
		req.ID = d.CorrelationId
	}

	logger := w.opts.Logger.With(slog.String("request_id", req.ID))
	logger.Info("processing request")

	if err := w.publish(d, Update{RequestID: req.ID, Status: StatusProcessing, Message: "analysis started"}); err != nil {
		logger.Error("failed to publish update", slog.Any("error", err))
		w.requeue(d)
		return
	}

	result, err := w.analyze(ctx, req, logger)
	if err != nil && interrupted(ctx, err) {
		logger.Info("analysis interrupted, returning request to queue")
		w.release(d)
		return
	}
	if err != nil {
		logger.Warn("analysis failed", slog.Any("error", err))
		w.finish(d, w.failed(req.ID, err))
		return
	}

	w.finish(d, Update{
		RequestID: req.ID,
		Status:    StatusCompleted,
		Message:   "analysis completed",
		Result:    result,
	})
	logger.Info("request completed", slog.String("result_id", result.ID.String()))
}

func (w *Worker) analyze(ctx context.Context, req Request, logger *slog.Logger) (*pipeline.Result, error) {
	in, err := pipeline.DecodeInput(req.Job, req.Resume, req.Answers)
	if err != nil {
		return nil, err
	}
	return pipeline.Run(ctx, in, pipeline.RunOptions{
		Steps:  req.Steps,
		Store:  w.opts.Store,
		Logger: logger,
	})
}

func (w *Worker) failed(id string, err error) Update {
	return Update{RequestID: id, Status: StatusFailed, Message: "analysis failed", Error: err.Error()}
}

// finish publishes the final update and acks the delivery
func (w *Worker) finish(d amqp.Delivery, update Update) {
	if err := w.publish(d, update); err != nil {
		w.opts.Logger.Error("failed to publish update",
			slog.String("request_id", update.RequestID), slog.Any("error", err))
		w.requeue(d)
		return
	}
	if err := d.Ack(false); err != nil {
		w.opts.Logger.Error("failed to ack delivery", slog.Any("error", err))
	}
}

func (w *Worker) requeue(d amqp.Delivery) {
	if err := d.Nack(false, !d.Redelivered); err != nil {
		w.opts.Logger.Error("failed to nack delivery", slog.Any("error", err))
	}
}

// release returns a delivery the worker stopped before finishing
func (w *Worker) release(d amqp.Delivery) {
	if err := d.Nack(false, true); err != nil {
		w.opts.Logger.Error("failed to nack delivery", slog.Any("error", err))
	}
}

// interrupted reports whether err comes from ctx ending rather than from the
// request itself
func interrupted(ctx context.Context, err error) bool {
	if ctx.Err() == nil {
		return false
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// publish sends update to the delivery's ReplyTo queue, or the result queue
func (w *Worker) publish(d amqp.Delivery, update Update) error {
	update.Timestamp = w.now().UTC()
	body, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal update: %w", err)
	}

	key := d.ReplyTo
	if key == "" {
		key = w.opts.ResultQueue
	}
	correlationID := d.CorrelationId
	if correlationID == "" {
		correlationID = update.RequestID
	}

	_, err = retry(3, 200*time.Millisecond, func() (struct{}, error) {
		return struct{}{}, w.ch.Publish("", key, false, false, amqp.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp.Persistent,
			CorrelationId: correlationID,
			Timestamp:     update.Timestamp,
			Body:          body,
		})
	})
	return err
}

// retry calls fn up to attempts times, waiting a linearly growing delay
// between failures
func retry[T any](attempts int, base time.Duration, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error
	for i := range attempts {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		if i < attempts-1 {
			time.Sleep(base * time.Duration(i+1))
		}
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

// Dial connects to the broker and opens a channel. Closing the connection
// also closes the channel.
func Dial(url string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("error dialling rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("error opening rabbitmq channel: %w", err)
	}
	return conn, ch, nil
}

// Submit publishes req to the request queue. A missing ID is filled with a
// new UUID, which is returned so callers can match the replies. An empty
// replyTo leaves the worker's result queue in charge.
func Submit(ch Channel, queue, replyTo string, req Request) (string, error) {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}
	if err := ch.Publish("", queue, false, false, amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		CorrelationId: req.ID,
		ReplyTo:       replyTo,
		Timestamp:     time.Now().UTC(),
		Body:          body,
	}); err != nil {
		return "", fmt.Errorf("failed to publish request: %w", err)
	}
	return req.ID, nil
}
