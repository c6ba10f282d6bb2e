package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
	"github.com/goodnatureofminers/h2credit-ledger/internal/repository"
	"github.com/google/uuid"
)

const chainOperationColumns = `
	id,
	kind,
	request_id,
	credit_id,
	actor_id,
	target_address,
	amount,
	status,
	tx_hash,
	last_error,
	created_at,
	updated_at`

func scanChainOperation(row scanner) (model.ChainOperation, error) {
	var (
		op     model.ChainOperation
		kind   string
		status string
	)
	err := row.Scan(
		&op.ID,
		&kind,
		&op.RequestID,
		&op.CreditID,
		&op.ActorID,
		&op.TargetAddress,
		&op.Amount,
		&status,
		&op.TxHash,
		&op.LastError,
		&op.CreatedAt,
		&op.UpdatedAt,
	)
	op.Kind = model.RequestKind(kind)
	op.Status = model.ChainOperationStatus(status)
	return op, err
}

// BeginChainOperation records the intent to act on chain. A second unresolved
// operation for the same credit yields ErrConflict.
func (r *Repository) BeginChainOperation(ctx context.Context, op model.ChainOperation) (_ model.ChainOperation, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("begin_chain_operation", err, start)
	}()

	const query = `
INSERT INTO chain_operations (
	id,
	kind,
	request_id,
	credit_id,
	actor_id,
	target_address,
	amount,
	status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING created_at, updated_at`

	if op.ID == "" {
		op.ID = uuid.NewString()
	}
	op.Status = model.ChainOperationInFlight
	err = r.db.QueryRowContext(ctx, query,
		op.ID,
		string(op.Kind),
		op.RequestID,
		op.CreditID,
		op.ActorID,
		op.TargetAddress,
		op.Amount,
		string(op.Status),
	).Scan(&op.CreatedAt, &op.UpdatedAt)
	if err != nil {
		err = mapError(err)
		return model.ChainOperation{}, fmt.Errorf("insert chain operation: %w", err)
	}
	return op, nil
}

// ConfirmChainOperation records that the chain effect landed.
func (r *Repository) ConfirmChainOperation(ctx context.Context, id, txHash string) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("confirm_chain_operation", err, start)
	}()

	const query = `
UPDATE chain_operations
SET status = 'confirmed', tx_hash = $2, last_error = '', updated_at = now()
WHERE id = $1 AND status = 'in_flight'`

	if err = r.execOne(ctx, query, id, txHash); err != nil {
		return fmt.Errorf("confirm chain operation %s: %w", id, err)
	}
	return nil
}

// FailChainOperation records that the chain effect is known to be absent.
func (r *Repository) FailChainOperation(ctx context.Context, id, reason string) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("fail_chain_operation", err, start)
	}()

	const query = `
UPDATE chain_operations
SET status = 'failed', last_error = $2, updated_at = now()
WHERE id = $1 AND status = 'in_flight'`

	if err = r.execOne(ctx, query, id, reason); err != nil {
		return fmt.Errorf("fail chain operation %s: %w", id, err)
	}
	return nil
}

// MarkChainOperationUncertain keeps the operation in flight but records what
// is known about an unresolved outcome.
func (r *Repository) MarkChainOperationUncertain(ctx context.Context, id, txHash, reason string) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("mark_chain_operation_uncertain", err, start)
	}()

	const query = `
UPDATE chain_operations
SET tx_hash = COALESCE(NULLIF($2::text, ''), tx_hash), last_error = $3, updated_at = now()
WHERE id = $1 AND status = 'in_flight'`

	if err = r.execOne(ctx, query, id, txHash, reason); err != nil {
		return fmt.Errorf("mark chain operation %s uncertain: %w", id, err)
	}
	return nil
}

// StaleChainOperations lists unresolved operations last touched before olderThan, oldest first.
func (r *Repository) StaleChainOperations(ctx context.Context, olderThan time.Time, limit int) (_ []model.ChainOperation, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("stale_chain_operations", err, start)
	}()

	query := "SELECT " + chainOperationColumns + `
FROM chain_operations
WHERE status IN ('in_flight', 'confirmed')
  AND updated_at < $1
ORDER BY created_at
LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, olderThan, limit)
	if err != nil {
		err = mapError(err)
		return nil, fmt.Errorf("select stale chain operations: %w", err)
	}
	defer rows.Close()

	var ops []model.ChainOperation
	for rows.Next() {
		op, scanErr := scanChainOperation(rows)
		if scanErr != nil {
			err = fmt.Errorf("scan chain operation: %w", scanErr)
			return nil, err
		}
		ops = append(ops, op)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chain operations: %w", err)
	}
	return ops, nil
}

func (r *Repository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return repository.ErrStaleState
	}
	return nil
}

// rejectWhere runs a conditional reject. When nothing matched it tells an
// unresolved chain operation apart from a request that already left PENDING.
func (r *Repository) rejectWhere(ctx context.Context, query, id string, args ...any) error {
	err := r.execOne(ctx, query, append([]any{id}, args...)...)
	if !errors.Is(err, repository.ErrStaleState) {
		return err
	}

	const activeQuery = `
SELECT EXISTS (
  SELECT 1 FROM chain_operations
  WHERE request_id = $1 AND status IN ('in_flight', 'confirmed')
)`

	var active bool
	if err := r.db.QueryRowContext(ctx, activeQuery, id).Scan(&active); err != nil {
		return fmt.Errorf("check chain operations: %w", mapError(err))
	}
	if active {
		return repository.ErrOperationInProgress
	}
	return repository.ErrStaleState
}

// markCommitted closes the outbox entry inside the accept transaction.
func markCommitted(ctx context.Context, tx *sql.Tx, id, txHash string) error {
	const query = `
UPDATE chain_operations
SET status = 'committed', tx_hash = COALESCE(NULLIF($2::text, ''), tx_hash), last_error = '', updated_at = now()
WHERE id = $1 AND status IN ('in_flight', 'confirmed')`

	res, err := tx.ExecContext(ctx, query, id, txHash)
	if err != nil {
		return fmt.Errorf("mark chain operation %s committed: %w", id, mapError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("mark chain operation %s committed: %w", id, repository.ErrStaleState)
	}
	return nil
}
