package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"

	jobmetrics "github.com/ledgerline/ledgerline/internal/jobs"
	"github.com/ledgerline/ledgerline/internal/ledger"
	"github.com/ledgerline/ledgerline/internal/parties"
)

// LedgerWarmupJob pre-populates ledger caches so the first statement view
// of the day is served warm. It reconciles the current fiscal year for
// every party of every tenant.
type LedgerWarmupJob struct {
	Ledger  *ledger.Service
	Parties parties.Repository
	Pool    *pgxpool.Pool
	Logger  *slog.Logger
	Metrics *jobmetrics.Metrics
	clock   func() time.Time
}

// NewLedgerWarmupJob wires dependencies for the warmup handler.
func NewLedgerWarmupJob(ledgerSvc *ledger.Service, partyRepo parties.Repository, pool *pgxpool.Pool, logger *slog.Logger, metrics *jobmetrics.Metrics) *LedgerWarmupJob {
	return &LedgerWarmupJob{
		Ledger:  ledgerSvc,
		Parties: partyRepo,
		Pool:    pool,
		Logger:  logger,
		Metrics: metrics,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Handle processes ledger warmup tasks.
func (j *LedgerWarmupJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil {
		return errors.New("ledger warmup: handler not configured")
	}
	var payload LedgerWarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	tracker := j.metrics().Track(TaskLedgerWarmup)
	var resultErr error
	defer func() {
		resultErr = tracker.End(resultErr)
	}()

	logger := j.logger()
	logger.Info("starting ledger warmup")

	tenants, err := j.fetchTenants(ctx)
	if err != nil {
		resultErr = err
		logger.Error("load tenants", slog.Any("error", err))
		return resultErr
	}

	now := j.now()
	from, to := fiscalYearRange(now)
	warmed := 0
	for _, tenantID := range tenants {
		partyList, _, err := j.Parties.List(ctx, tenantID, parties.ListPartiesRequest{})
		if err != nil {
			resultErr = err
			logger.Error("list parties", slog.String("tenant_id", tenantID.String()), slog.Any("error", err))
			return resultErr
		}
		for _, party := range partyList {
			warmCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
			_, err := j.Ledger.Reconcile(warmCtx, tenantID, party.ID, from, to)
			cancel()
			if err != nil {
				resultErr = err
				logger.Error("warm ledger",
					slog.String("tenant_id", tenantID.String()),
					slog.String("party_id", party.ID.String()),
					slog.Any("error", err))
				return resultErr
			}
			warmed++
		}
	}

	logger.Info("completed ledger warmup", slog.Int("parties", warmed), slog.Duration("duration", time.Since(now)))
	return resultErr
}

// fiscalYearRange is the April-to-March year containing now.
func fiscalYearRange(now time.Time) (time.Time, time.Time) {
	year := now.Year()
	if now.Month() < time.April {
		year--
	}
	from := time.Date(year, time.April, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year+1, time.March, 31, 0, 0, 0, 0, time.UTC)
	return from, to
}

func (j *LedgerWarmupJob) fetchTenants(ctx context.Context) ([]uuid.UUID, error) {
	if j.Pool == nil {
		return nil, errors.New("ledger warmup: pool not configured")
	}
	rows, err := j.Pool.Query(ctx, `
		SELECT DISTINCT tenant_id FROM invoices
		UNION
		SELECT DISTINCT tenant_id FROM payments`)
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

func (j *LedgerWarmupJob) metrics() *jobmetrics.Metrics {
	if j.Metrics != nil {
		return j.Metrics
	}
	return defaultJobMetrics
}

func (j *LedgerWarmupJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger.With(slog.String("job", TaskLedgerWarmup))
	}
	return slog.Default().With(slog.String("job", TaskLedgerWarmup))
}

func (j *LedgerWarmupJob) now() time.Time {
	if j.clock != nil {
		return j.clock()
	}
	return time.Now().UTC()
}
