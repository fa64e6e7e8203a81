package persistence

import (
	"context"
	"encoding/json"

	"github.com/jmoiron/sqlx"

	"worker_server/core/domain"
)

// =============================================================================
// Batch Audit Adapter (PostgreSQL)
// =============================================================================

// BatchAuditAdapter implements out.AuditPort using PostgreSQL. It persists
// the final state of a completed triage batch for audit/replay; it is
// never consulted by the pipeline itself.
type BatchAuditAdapter struct {
	db *sqlx.DB
}

// NewBatchAuditAdapter creates a new BatchAuditAdapter.
func NewBatchAuditAdapter(db *sqlx.DB) *BatchAuditAdapter {
	return &BatchAuditAdapter{db: db}
}

const batchAuditUpsert = `
	INSERT INTO triage_batches (
		batch_id, user_command, user_scope, mode,
		started_at, completed_at, total_processed, errors, emails
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9
	)
	ON CONFLICT (batch_id) DO UPDATE SET
		completed_at = EXCLUDED.completed_at,
		total_processed = EXCLUDED.total_processed,
		errors = EXCLUDED.errors,
		emails = EXCLUDED.emails`

// RecordBatch implements out.AuditPort.
func (a *BatchAuditAdapter) RecordBatch(ctx context.Context, batch *domain.ProcessingBatch) error {
	scope, err := json.Marshal(batch.UserScope)
	if err != nil {
		return err
	}
	errs, err := json.Marshal(batch.Errors)
	if err != nil {
		return err
	}
	emails, err := json.Marshal(batch.Emails)
	if err != nil {
		return err
	}

	_, err = a.db.ExecContext(ctx, batchAuditUpsert,
		batch.BatchID, batch.UserCommand, scope, batch.Mode,
		batch.StartedAt, batch.CompletedAt, batch.TotalProcessed, errs, emails,
	)
	return err
}
