package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerline/ledgerline/internal/invoices"
	jobmetrics "github.com/ledgerline/ledgerline/internal/jobs"
)

var defaultJobMetrics = jobmetrics.NewMetrics(nil)

// driftTolerance absorbs float representation noise; anything beyond a
// paisa is real drift.
const driftTolerance = 0.005

// TotalsIntegrityJob sweeps stored documents and compares their cached
// totals against a fresh computation from the raw lines. Drift means a
// past write bypassed the recompute path or the data was edited directly.
type TotalsIntegrityJob struct {
	Repo    invoices.Repository
	Pool    *pgxpool.Pool
	Logger  *slog.Logger
	Metrics *jobmetrics.Metrics
	clock   func() time.Time
}

// NewTotalsIntegrityJob wires dependencies for the integrity handler.
func NewTotalsIntegrityJob(repo invoices.Repository, pool *pgxpool.Pool, logger *slog.Logger, metrics *jobmetrics.Metrics) *TotalsIntegrityJob {
	return &TotalsIntegrityJob{
		Repo:    repo,
		Pool:    pool,
		Logger:  logger,
		Metrics: metrics,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Handle processes totals integrity tasks.
func (j *TotalsIntegrityJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil {
		return errors.New("totals integrity: handler not configured")
	}
	var payload TotalsIntegrityPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	tracker := j.metrics().Track(TaskTotalsIntegrity)
	var resultErr error
	defer func() {
		resultErr = tracker.End(resultErr)
	}()

	logger := j.logger()
	logger.Info("starting totals integrity sweep", slog.Bool("repair", payload.Repair))

	tenants, err := j.fetchTenants(ctx)
	if err != nil {
		resultErr = err
		logger.Error("load tenants", slog.Any("error", err))
		return resultErr
	}

	start := j.now()
	checked, drifted := 0, 0
	for _, tenantID := range tenants {
		c, d, err := j.sweepTenant(ctx, tenantID, payload.Repair, logger)
		if err != nil {
			resultErr = err
			logger.Error("sweep tenant", slog.String("tenant_id", tenantID.String()), slog.Any("error", err))
			return resultErr
		}
		j.metrics().AddDrift(tenantID.String(), d)
		checked += c
		drifted += d
	}

	logger.Info("completed totals integrity sweep",
		slog.Int("checked", checked),
		slog.Int("drifted", drifted),
		slog.Duration("duration", time.Since(start)))
	return resultErr
}

func (j *TotalsIntegrityJob) sweepTenant(ctx context.Context, tenantID uuid.UUID, repair bool, logger *slog.Logger) (checked, drifted int, err error) {
	docs, _, err := j.Repo.List(ctx, tenantID, invoices.ListInvoicesRequest{})
	if err != nil {
		return 0, 0, err
	}

	for _, doc := range docs {
		full, err := j.Repo.Get(ctx, tenantID, doc.ID)
		if err != nil {
			return checked, drifted, err
		}
		checked++

		stored := full.Totals
		full.Recompute()
		if math.Abs(stored.GrandTotal-full.Totals.GrandTotal) <= driftTolerance &&
			math.Abs(stored.TotalTax-full.Totals.TotalTax) <= driftTolerance {
			continue
		}

		drifted++
		logger.Warn("totals drift detected",
			slog.String("tenant_id", tenantID.String()),
			slog.String("number", full.Number),
			slog.Float64("stored_grand_total", stored.GrandTotal),
			slog.Float64("computed_grand_total", full.Totals.GrandTotal))

		if repair {
			full.UpdatedAt = j.now()
			if err := j.Repo.Update(ctx, *full); err != nil {
				return checked, drifted, err
			}
		}
	}
	return checked, drifted, nil
}

func (j *TotalsIntegrityJob) fetchTenants(ctx context.Context) ([]uuid.UUID, error) {
	if j.Pool == nil {
		return nil, errors.New("totals integrity: pool not configured")
	}
	rows, err := j.Pool.Query(ctx, `SELECT DISTINCT tenant_id FROM invoices`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenants []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		tenants = append(tenants, id)
	}
	return tenants, rows.Err()
}

func (j *TotalsIntegrityJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger.With(slog.String("job", TaskTotalsIntegrity))
	}
	return slog.Default().With(slog.String("job", TaskTotalsIntegrity))
}

func (j *TotalsIntegrityJob) metrics() *jobmetrics.Metrics {
	if j.Metrics != nil {
		return j.Metrics
	}
	return defaultJobMetrics
}

func (j *TotalsIntegrityJob) now() time.Time {
	if j.clock != nil {
		return j.clock()
	}
	return time.Now().UTC()
}
