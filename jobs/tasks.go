package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTotalsIntegrity verifies stored invoice totals against a fresh
	// computation.
	TaskTotalsIntegrity = "invoices:totals_integrity"
	// TaskLedgerWarmup pre-populates ledger caches for every party.
	TaskLedgerWarmup = "ledger:warmup"
)

// TotalsIntegrityPayload controls the totals verification sweep. With
// Repair set, drifted documents are rewritten with recomputed totals;
// otherwise drift is only reported.
type TotalsIntegrityPayload struct {
	ScheduledFor time.Time `json:"scheduled_for"`
	Repair       bool      `json:"repair"`
}

// NewTotalsIntegrityTask constructs an Asynq task for the totals sweep.
func NewTotalsIntegrityTask(at time.Time, repair bool) (*asynq.Task, error) {
	body, err := json.Marshal(TotalsIntegrityPayload{ScheduledFor: at, Repair: repair})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTotalsIntegrity, body, asynq.Queue(QueueDefault)), nil
}

// LedgerWarmupPayload carries scheduling metadata for the warmup sweep.
type LedgerWarmupPayload struct {
	ScheduledFor time.Time `json:"scheduled_for"`
}

// NewLedgerWarmupTask constructs an Asynq task for the ledger warmup.
func NewLedgerWarmupTask(at time.Time) (*asynq.Task, error) {
	body, err := json.Marshal(LedgerWarmupPayload{ScheduledFor: at})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLedgerWarmup, body, asynq.Queue(QueueDefault)), nil
}
