package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
	"github.com/goodnatureofminers/h2credit-ledger/internal/repository"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const buyRequestSelect = `
SELECT
	b.id,
	b.credit_id,
	b.from_id,
	f.username,
	b.to_id,
	t.username,
	c.amount,
	b.metadata,
	b.anomaly,
	b.anomaly_reasons,
	b.status,
	b.txn_hash,
	b.created_at,
	b.updated_at
FROM credit_buy_requests b
JOIN users f ON f.id = b.from_id
JOIN users t ON t.id = b.to_id
JOIN credit_issue_requests c ON c.id = b.credit_id`

func scanBuyRequest(row scanner) (model.BuyRequest, error) {
	var (
		req     model.BuyRequest
		status  string
		reasons []string
	)
	err := row.Scan(
		&req.ID,
		&req.CreditID,
		&req.FromID,
		&req.FromUsername,
		&req.ToID,
		&req.ToUsername,
		&req.Amount,
		&req.Metadata,
		&req.Anomaly,
		pq.Array(&reasons),
		&status,
		&req.TxnHash,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	req.Status = model.BuyStatus(status)
	req.AnomalyReasons = nonEmpty(reasons)
	return req, err
}

// CreateBuyRequest persists a PENDING buy request. Creation is serialized per
// credit and refused once the credit was transferred or retired.
func (r *Repository) CreateBuyRequest(ctx context.Context, req model.BuyRequest) (_ model.BuyRequest, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("create_buy_request", err, start)
	}()

	const (
		lockQuery        = `SELECT pg_advisory_xact_lock(hashtext($1))`
		transferredQuery = `SELECT EXISTS (SELECT 1 FROM credit_buy_requests WHERE credit_id = $1 AND status = 'TRANSFERRED')`
		retiredQuery     = `SELECT EXISTS (SELECT 1 FROM credit_retire_requests WHERE credit_id = $1 AND status = 'RETIRED')`
		insertQuery      = `
INSERT INTO credit_buy_requests (
	id,
	credit_id,
	from_id,
	to_id,
	metadata,
	anomaly,
	anomaly_reasons,
	status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING created_at, updated_at`
	)

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	req.Status = model.BuyPending

	err = r.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, lockQuery, req.CreditID); err != nil {
			return fmt.Errorf("lock credit %s: %w", req.CreditID, err)
		}

		var exists bool
		if err := tx.QueryRowContext(ctx, transferredQuery, req.CreditID).Scan(&exists); err != nil {
			return fmt.Errorf("check transferred credit: %w", mapError(err))
		}
		if exists {
			return repository.ErrAlreadyTransferred
		}
		if err := tx.QueryRowContext(ctx, retiredQuery, req.CreditID).Scan(&exists); err != nil {
			return fmt.Errorf("check retired credit: %w", mapError(err))
		}
		if exists {
			return repository.ErrAlreadyRetired
		}

		if err := tx.QueryRowContext(ctx, insertQuery,
			req.ID,
			req.CreditID,
			req.FromID,
			req.ToID,
			req.Metadata,
			req.Anomaly,
			stringArray(req.AnomalyReasons),
			string(req.Status),
		).Scan(&req.CreatedAt, &req.UpdatedAt); err != nil {
			return fmt.Errorf("insert buy request: %w", mapError(err))
		}
		return nil
	})
	if err != nil {
		return model.BuyRequest{}, err
	}
	return req, nil
}

func (r *Repository) BuyRequestByID(ctx context.Context, id string) (_ model.BuyRequest, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("buy_request_by_id", err, start)
	}()

	req, err := scanBuyRequest(r.db.QueryRowContext(ctx, buyRequestSelect+"\nWHERE b.id = $1", id))
	if err != nil {
		err = mapError(err)
		return model.BuyRequest{}, fmt.Errorf("select buy request %s: %w", id, err)
	}
	return req, nil
}

// CreditTransferred reports whether the credit has a TRANSFERRED buy request.
func (r *Repository) CreditTransferred(ctx context.Context, creditID string) (_ bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("credit_transferred", err, start)
	}()

	const query = `SELECT EXISTS (SELECT 1 FROM credit_buy_requests WHERE credit_id = $1 AND status = 'TRANSFERRED')`

	var exists bool
	if err = r.db.QueryRowContext(ctx, query, creditID).Scan(&exists); err != nil {
		err = mapError(err)
		return false, fmt.Errorf("check transferred credit %s: %w", creditID, err)
	}
	return exists, nil
}

// PendingBuyRequestsForSeller lists PENDING buy requests addressed to the seller.
func (r *Repository) PendingBuyRequestsForSeller(ctx context.Context, sellerID string) (_ []model.BuyRequest, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("pending_buy_requests_for_seller", err, start)
	}()

	reqs, err := r.queryBuyRequests(ctx, buyRequestSelect+"\nWHERE b.from_id = $1 AND b.status = 'PENDING'\nORDER BY b.created_at", sellerID)
	if err != nil {
		return nil, fmt.Errorf("select pending buy requests for %s: %w", sellerID, err)
	}
	return reqs, nil
}

// TransferredBuyRequestsFrom lists credits the user transferred away.
func (r *Repository) TransferredBuyRequestsFrom(ctx context.Context, userID string) (_ []model.BuyRequest, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transferred_buy_requests_from", err, start)
	}()

	reqs, err := r.queryBuyRequests(ctx, buyRequestSelect+"\nWHERE b.from_id = $1 AND b.status = 'TRANSFERRED'\nORDER BY b.updated_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("select outgoing transfers of %s: %w", userID, err)
	}
	return reqs, nil
}

// TransferredBuyRequestsTo lists credits the user received.
func (r *Repository) TransferredBuyRequestsTo(ctx context.Context, userID string) (_ []model.BuyRequest, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transferred_buy_requests_to", err, start)
	}()

	reqs, err := r.queryBuyRequests(ctx, buyRequestSelect+"\nWHERE b.to_id = $1 AND b.status = 'TRANSFERRED'\nORDER BY b.updated_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("select incoming transfers of %s: %w", userID, err)
	}
	return reqs, nil
}

// TransferredBuyRequests lists every TRANSFERRED buy request, oldest first.
func (r *Repository) TransferredBuyRequests(ctx context.Context) (_ []model.BuyRequest, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transferred_buy_requests", err, start)
	}()

	reqs, err := r.queryBuyRequests(ctx, buyRequestSelect+"\nWHERE b.status = 'TRANSFERRED'\nORDER BY b.updated_at")
	if err != nil {
		return nil, fmt.Errorf("select transferred buy requests: %w", err)
	}
	return reqs, nil
}

func (r *Repository) queryBuyRequests(ctx context.Context, query string, args ...any) ([]model.BuyRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var out []model.BuyRequest
	for rows.Next() {
		req, err := scanBuyRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan buy request: %w", err)
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate buy requests: %w", err)
	}
	return out, nil
}

// RejectBuyRequest moves a PENDING request without an unresolved chain
// operation to REJECTED.
func (r *Repository) RejectBuyRequest(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("reject_buy_request", err, start)
	}()

	const query = `
UPDATE credit_buy_requests
SET status = 'REJECTED', updated_at = now()
WHERE id = $1
  AND status = 'PENDING'
  AND NOT EXISTS (
    SELECT 1 FROM chain_operations
    WHERE request_id = $1 AND status IN ('in_flight', 'confirmed')
  )`

	if err = r.rejectWhere(ctx, query, id); err != nil {
		return fmt.Errorf("reject buy request %s: %w", id, err)
	}
	return nil
}
