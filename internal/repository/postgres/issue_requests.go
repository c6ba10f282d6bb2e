package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const issueRequestSelect = `
SELECT
	r.id,
	r.user_id,
	u.username,
	r.amount,
	r.metadata,
	r.anomaly,
	r.anomaly_reasons,
	r.status,
	r.txn_hash,
	COALESCE(r.action_by_id::text, ''),
	COALESCE(a.username, ''),
	r.created_at,
	r.updated_at
FROM credit_issue_requests r
JOIN users u ON u.id = r.user_id
LEFT JOIN users a ON a.id = r.action_by_id`

func scanIssueRequest(row scanner) (model.IssueRequest, error) {
	var (
		req     model.IssueRequest
		status  string
		reasons []string
	)
	err := row.Scan(
		&req.ID,
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
	req.Status = model.IssueStatus(status)
	req.AnomalyReasons = nonEmpty(reasons)
	return req, err
}

// CreateIssueRequest persists a new PENDING issue request.
func (r *Repository) CreateIssueRequest(ctx context.Context, req model.IssueRequest) (_ model.IssueRequest, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("create_issue_request", err, start)
	}()

	const query = `
INSERT INTO credit_issue_requests (
	id,
	user_id,
	amount,
	metadata,
	anomaly,
	anomaly_reasons,
	status
) VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING created_at, updated_at`

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	req.Status = model.IssuePending
	err = r.db.QueryRowContext(ctx, query,
		req.ID,
		req.UserID,
		req.Amount,
		req.Metadata,
		req.Anomaly,
		stringArray(req.AnomalyReasons),
		string(req.Status),
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		err = mapError(err)
		return model.IssueRequest{}, fmt.Errorf("insert issue request: %w", err)
	}
	return req, nil
}

func (r *Repository) IssueRequestByID(ctx context.Context, id string) (_ model.IssueRequest, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("issue_request_by_id", err, start)
	}()

	req, err := scanIssueRequest(r.db.QueryRowContext(ctx, issueRequestSelect+"\nWHERE r.id = $1", id))
	if err != nil {
		err = mapError(err)
		return model.IssueRequest{}, fmt.Errorf("select issue request %s: %w", id, err)
	}
	return req, nil
}

// IssueRequestsByUser lists every issue request of a user, newest first.
func (r *Repository) IssueRequestsByUser(ctx context.Context, userID string) (_ []model.IssueRequest, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("issue_requests_by_user", err, start)
	}()

	reqs, err := r.queryIssueRequests(ctx, issueRequestSelect+"\nWHERE r.user_id = $1\nORDER BY r.created_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("select issue requests of %s: %w", userID, err)
	}
	return reqs, nil
}

// PendingIssueRequestsForAuditor lists PENDING issue requests of users assigned to the auditor.
func (r *Repository) PendingIssueRequestsForAuditor(ctx context.Context, auditorID string) (_ []model.IssueRequest, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("pending_issue_requests_for_auditor", err, start)
	}()

	query := issueRequestSelect + `
WHERE u.assigned_auditor_id = $1
  AND r.status = 'PENDING'
ORDER BY r.created_at`

	reqs, err := r.queryIssueRequests(ctx, query, auditorID)
	if err != nil {
		return nil, fmt.Errorf("select pending issue requests for %s: %w", auditorID, err)
	}
	return reqs, nil
}

// IssuedCredits lists every ISSUED request, oldest first.
func (r *Repository) IssuedCredits(ctx context.Context) (_ []model.IssueRequest, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("issued_credits", err, start)
	}()

	reqs, err := r.queryIssueRequests(ctx, issueRequestSelect+"\nWHERE r.status = 'ISSUED'\nORDER BY r.created_at")
	if err != nil {
		return nil, fmt.Errorf("select issued credits: %w", err)
	}
	return reqs, nil
}

func (r *Repository) queryIssueRequests(ctx context.Context, query string, args ...any) ([]model.IssueRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var out []model.IssueRequest
	for rows.Next() {
		req, err := scanIssueRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan issue request: %w", err)
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate issue requests: %w", err)
	}
	return out, nil
}

// RejectIssueRequest moves a PENDING request without an unresolved chain
// operation to REJECTED.
func (r *Repository) RejectIssueRequest(ctx context.Context, id, auditorID string) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("reject_issue_request", err, start)
	}()

	const query = `
UPDATE credit_issue_requests
SET status = 'REJECTED', action_by_id = $2, updated_at = now()
WHERE id = $1
  AND status = 'PENDING'
  AND NOT EXISTS (
    SELECT 1 FROM chain_operations
    WHERE request_id = $1 AND status IN ('in_flight', 'confirmed')
  )`

	if err = r.rejectWhere(ctx, query, id, auditorID); err != nil {
		return fmt.Errorf("reject issue request %s: %w", id, err)
	}
	return nil
}
