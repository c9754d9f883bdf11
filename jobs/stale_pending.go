package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	jobmetrics "github.com/payd-hq/payd/internal/jobs"
	"github.com/payd-hq/payd/internal/platform/db"
)

// StalePendingJob reports pending payments whose decision is overdue. It is
// strictly read-only: the lifecycle engine stays the sole producer of state
// transitions, the job only surfaces what operators should chase.
type StalePendingJob struct {
	Pool    *pgxpool.Pool
	Logger  *slog.Logger
	Metrics *jobmetrics.Metrics
	clock   func() time.Time
}

// NewStalePendingJob initialises the stale pending scan handler.
func NewStalePendingJob(pool *pgxpool.Pool, logger *slog.Logger, metrics *jobmetrics.Metrics) *StalePendingJob {
	return &StalePendingJob{
		Pool:    pool,
		Logger:  logger,
		Metrics: metrics,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

type stalePayment struct {
	ID         string
	CustomerID string
	Amount     string
	Requested  time.Time
}

// Handle executes the stale pending scan.
func (j *StalePendingJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil {
		return errors.New("stale scan: handler not configured")
	}
	var payload StaleScanPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	if payload.OlderThanHours <= 0 {
		payload.OlderThanHours = 72
	}
	if payload.Limit <= 0 {
		payload.Limit = 100
	}

	now := j.now()
	tracker := j.metrics().Track(TaskPaymentsStaleScan)
	var resultErr error
	defer func() {
		resultErr = tracker.End(resultErr)
	}()

	logger := j.logger().With(
		slog.Int("older_than_hours", payload.OlderThanHours),
		slog.Int("limit", payload.Limit),
	)
	logger.Info("starting stale pending scan")

	stale, err := j.scan(ctx, payload, now)
	if err != nil {
		resultErr = err
		logger.Error("scan failed", slog.Any("error", err))
		return resultErr
	}

	for _, p := range stale {
		logger.Warn("stale pending payment",
			slog.String("payment_id", p.ID),
			slog.String("customer_id", p.CustomerID),
			slog.String("amount", p.Amount),
			slog.Duration("age", now.Sub(p.Requested)),
		)
	}
	j.metrics().SetStalePending(TaskPaymentsStaleScan, len(stale))

	logger.Info("completed stale pending scan",
		slog.Int("stale", len(stale)),
		slog.Duration("duration", time.Since(now)),
	)
	return resultErr
}

func (j *StalePendingJob) scan(ctx context.Context, payload StaleScanPayload, now time.Time) ([]stalePayment, error) {
	if j.Pool == nil {
		return nil, errors.New("stale scan: pool not configured")
	}
	cutoff := now.Add(-time.Duration(payload.OlderThanHours) * time.Hour)
	rows, err := j.Pool.Query(ctx, `
		SELECT id, customer_id, amount, requested_date_utc
		FROM payments
		WHERE status = 'PENDING' AND requested_date_utc < $1
		ORDER BY requested_date_utc
		LIMIT $2
	`, cutoff, payload.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []stalePayment
	for rows.Next() {
		var p stalePayment
		var amount pgtype.Numeric
		if err := rows.Scan(&p.ID, &p.CustomerID, &amount, &p.Requested); err != nil {
			return nil, err
		}
		p.Amount = db.Decimal(amount).String()
		out = append(out, p)
	}
	return out, rows.Err()
}

func (j *StalePendingJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger.With(slog.String("job", TaskPaymentsStaleScan))
	}
	return slog.Default().With(slog.String("job", TaskPaymentsStaleScan))
}

func (j *StalePendingJob) metrics() *jobmetrics.Metrics {
	if j.Metrics != nil {
		return j.Metrics
	}
	return jobmetrics.NewMetrics(nil)
}

func (j *StalePendingJob) now() time.Time {
	if j.clock != nil {
		return j.clock()
	}
	return time.Now().UTC()
}
