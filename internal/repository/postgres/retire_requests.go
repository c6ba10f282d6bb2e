package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const retireRequestSelect = `
SELECT
	x.id,
	x.credit_id,
	x.user_id,
	u.username,
	c.amount,
	x.metadata,
	x.anomaly,
	x.anomaly_reasons,
	x.status,
	x.txn_hash,
	COALESCE(x.action_by_id::text, ''),
	COALESCE(a.username, ''),
	x.created_at,
	x.updated_at
FROM credit_retire_requests x
JOIN users u ON u.id = x.user_id
JOIN credit_issue_requests c ON c.id = x.credit_id
LEFT JOIN users a ON a.id = x.action_by_id`

func scanRetireRequest(row scanner) (model.RetireRequest, error) {
	var (
		req     model.RetireRequest
		status  string
		reasons []string
	)
	err := row.Scan(
		&req.ID,
		&req.CreditID,
		&req.UserID,
		&req.Username,
		&req.Amount,
		&req.Metadata,
		&req.Anomaly,
		pq.Array(&reasons),
		&status,
		&req.TxnHash,
		&req.ActionByID,
		&req.ActionByUsername,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	req.Status = model.RetireStatus(status)
	req.AnomalyReasons = nonEmpty(reasons)
	return req, err
}

// CreateRetireRequest persists a PENDING retire request. The unique index on
// credit_id turns a second request for the same credit into ErrConflict.
func (r *Repository) CreateRetireRequest(ctx context.Context, req model.RetireRequest) (_ model.RetireRequest, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("create_retire_request", err, start)
	}()

	const query = `
INSERT INTO credit_retire_requests (
	id,
	credit_id,
	user_id,
	metadata,
	anomaly,
	anomaly_reasons,
	status
) VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING created_at, updated_at`

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	req.Status = model.RetirePending
	err = r.db.QueryRowContext(ctx, query,
		req.ID,
		req.CreditID,
		req.UserID,
		req.Metadata,
		req.Anomaly,
		stringArray(req.AnomalyReasons),
		string(req.Status),
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		err = mapError(err)
		return model.RetireRequest{}, fmt.Errorf("insert retire request: %w", err)
	}
	return req, nil
}

func (r *Repository) RetireRequestByID(ctx context.Context, id string) (_ model.RetireRequest, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("retire_request_by_id", err, start)
	}()

	req, err := scanRetireRequest(r.db.QueryRowContext(ctx, retireRequestSelect+"\nWHERE x.id = $1", id))
	if err != nil {
		err = mapError(err)
		return model.RetireRequest{}, fmt.Errorf("select retire request %s: %w", id, err)
	}
	return req, nil
}

// RetireRequestsForAuditor lists retire requests of users assigned to the auditor.
func (r *Repository) RetireRequestsForAuditor(ctx context.Context, auditorID string) (_ []model.RetireRequest, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("retire_requests_for_auditor", err, start)
	}()

	rows, err := r.db.QueryContext(ctx, retireRequestSelect+"\nWHERE u.assigned_auditor_id = $1\nORDER BY x.created_at DESC", auditorID)
	if err != nil {
		err = mapError(err)
		return nil, fmt.Errorf("select retire requests for %s: %w", auditorID, err)
	}
	defer rows.Close()

	var out []model.RetireRequest
	for rows.Next() {
		req, scanErr := scanRetireRequest(rows)
		if scanErr != nil {
			err = fmt.Errorf("scan retire request: %w", scanErr)
			return nil, err
		}
		out = append(out, req)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate retire requests: %w", err)
	}
	return out, nil
}

// RetiredCreditIDs lists the credits whose retire request was accepted.
func (r *Repository) RetiredCreditIDs(ctx context.Context) (_ []string, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("retired_credit_ids", err, start)
	}()

	const query = `SELECT credit_id FROM credit_retire_requests WHERE status = 'RETIRED'`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err = mapError(err)
		return nil, fmt.Errorf("select retired credits: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan retired credit: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate retired credits: %w", err)
	}
	return ids, nil
}

// RejectRetireRequest moves a PENDING request without an unresolved chain
// operation to REJECTED.
func (r *Repository) RejectRetireRequest(ctx context.Context, id, auditorID string) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("reject_retire_request", err, start)
	}()

	const query = `
UPDATE credit_retire_requests
SET status = 'REJECTED', action_by_id = $2, updated_at = now()
WHERE id = $1
  AND status = 'PENDING'
  AND NOT EXISTS (
    SELECT 1 FROM chain_operations
    WHERE request_id = $1 AND status IN ('in_flight', 'confirmed')
  )`

	if err = r.rejectWhere(ctx, query, id, auditorID); err != nil {
		return fmt.Errorf("reject retire request %s: %w", id, err)
	}
	return nil
}
