package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
	"github.com/goodnatureofminers/h2credit-ledger/internal/repository"
)

// CommitIssue applies an on-chain issuance locally: the request becomes
// ISSUED, the issuer's generated counter grows by the amount, the holdings
// projection gains the credit and the chain operation is closed. All or nothing.
func (r *Repository) CommitIssue(ctx context.Context, c model.Commit) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("commit_issue", err, start)
	}()

	const (
		updateRequest = `
UPDATE credit_issue_requests
SET status = 'ISSUED', txn_hash = $2, action_by_id = $3, updated_at = now()
WHERE id = $1 AND status = 'PENDING'
RETURNING user_id, amount`
		incrementGenerated = `UPDATE users SET lifetime_generated = lifetime_generated + $2 WHERE id = $1`
		upsertHolding      = `
INSERT INTO credit_holdings (credit_id, issuer_id, holder_id, amount, retired, last_tx_hash, updated_at)
VALUES ($1, $2, $2, $3, FALSE, $4, now())
ON CONFLICT (credit_id) DO UPDATE
SET holder_id = EXCLUDED.holder_id, amount = EXCLUDED.amount, last_tx_hash = EXCLUDED.last_tx_hash, updated_at = now()`
	)

	err = r.withTx(ctx, func(tx *sql.Tx) error {
		var (
			userID string
			amount int64
		)
		if err := tx.QueryRowContext(ctx, updateRequest, c.RequestID, c.TxHash, c.ActorID).Scan(&userID, &amount); err != nil {
			return fmt.Errorf("issue request %s: %w", c.RequestID, staleOnNoRows(err))
		}
		if err := execAffectingOne(ctx, tx, incrementGenerated, userID, amount); err != nil {
			return fmt.Errorf("increment generated credits of %s: %w", userID, err)
		}
		if _, err := tx.ExecContext(ctx, upsertHolding, c.RequestID, userID, amount, c.TxHash); err != nil {
			return fmt.Errorf("project holding %s: %w", c.RequestID, mapError(err))
		}
		return markCommitted(ctx, tx, c.OperationID, c.TxHash)
	})
	if err != nil {
		return fmt.Errorf("commit issue: %w", err)
	}
	return nil
}

// CommitTransfer applies an on-chain transfer locally: the buy request becomes
// TRANSFERRED, the seller's transferred and the buyer's bought counters grow by
// the credit amount and the projection moves custody to the buyer.
func (r *Repository) CommitTransfer(ctx context.Context, c model.Commit) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("commit_transfer", err, start)
	}()

	const (
		updateRequest = `
UPDATE credit_buy_requests
SET status = 'TRANSFERRED', txn_hash = $2, updated_at = now()
WHERE id = $1 AND status = 'PENDING'
RETURNING credit_id, from_id, to_id`
		creditAmount         = `SELECT amount FROM credit_issue_requests WHERE id = $1`
		incrementTransferred = `UPDATE users SET lifetime_transferred = lifetime_transferred + $2 WHERE id = $1`
		incrementBought      = `UPDATE users SET lifetime_bought = lifetime_bought + $2 WHERE id = $1`
		moveHolding          = `
UPDATE credit_holdings
SET holder_id = $2, last_tx_hash = $3, updated_at = now()
WHERE credit_id = $1`
	)

	err = r.withTx(ctx, func(tx *sql.Tx) error {
		var creditID, fromID, toID string
		if err := tx.QueryRowContext(ctx, updateRequest, c.RequestID, c.TxHash).Scan(&creditID, &fromID, &toID); err != nil {
			return fmt.Errorf("buy request %s: %w", c.RequestID, staleOnNoRows(err))
		}
		var amount int64
		if err := tx.QueryRowContext(ctx, creditAmount, creditID).Scan(&amount); err != nil {
			return fmt.Errorf("credit %s amount: %w", creditID, mapError(err))
		}
		if err := execAffectingOne(ctx, tx, incrementTransferred, fromID, amount); err != nil {
			return fmt.Errorf("increment transferred credits of %s: %w", fromID, err)
		}
		if err := execAffectingOne(ctx, tx, incrementBought, toID, amount); err != nil {
			return fmt.Errorf("increment bought credits of %s: %w", toID, err)
		}
		if _, err := tx.ExecContext(ctx, moveHolding, creditID, toID, c.TxHash); err != nil {
			return fmt.Errorf("project holding %s: %w", creditID, mapError(err))
		}
		return markCommitted(ctx, tx, c.OperationID, c.TxHash)
	})
	if err != nil {
		return fmt.Errorf("commit transfer: %w", err)
	}
	return nil
}

// CommitRetire applies an on-chain retirement locally: the retire request
// becomes RETIRED, the requester's retired counter grows by the credit amount
// and the projection marks the credit retired.
func (r *Repository) CommitRetire(ctx context.Context, c model.Commit) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("commit_retire", err, start)
	}()

	const (
		updateRequest = `
UPDATE credit_retire_requests
SET status = 'RETIRED', txn_hash = $2, action_by_id = $3, updated_at = now()
WHERE id = $1 AND status = 'PENDING'
RETURNING credit_id, user_id`
		creditAmount     = `SELECT amount FROM credit_issue_requests WHERE id = $1`
		incrementRetired = `UPDATE users SET lifetime_retired = lifetime_retired + $2 WHERE id = $1`
		retireHolding    = `
UPDATE credit_holdings
SET retired = TRUE, last_tx_hash = $2, updated_at = now()
WHERE credit_id = $1`
	)

	err = r.withTx(ctx, func(tx *sql.Tx) error {
		var creditID, userID string
		if err := tx.QueryRowContext(ctx, updateRequest, c.RequestID, c.TxHash, c.ActorID).Scan(&creditID, &userID); err != nil {
			return fmt.Errorf("retire request %s: %w", c.RequestID, staleOnNoRows(err))
		}
		var amount int64
		if err := tx.QueryRowContext(ctx, creditAmount, creditID).Scan(&amount); err != nil {
			return fmt.Errorf("credit %s amount: %w", creditID, mapError(err))
		}
		if err := execAffectingOne(ctx, tx, incrementRetired, userID, amount); err != nil {
			return fmt.Errorf("increment retired credits of %s: %w", userID, err)
		}
		if _, err := tx.ExecContext(ctx, retireHolding, creditID, c.TxHash); err != nil {
			return fmt.Errorf("project holding %s: %w", creditID, mapError(err))
		}
		return markCommitted(ctx, tx, c.OperationID, c.TxHash)
	})
	if err != nil {
		return fmt.Errorf("commit retire: %w", err)
	}
	return nil
}

// staleOnNoRows reports a conditional update that matched nothing as ErrStaleState.
func staleOnNoRows(err error) error {
	mapped := mapError(err)
	if errors.Is(mapped, repository.ErrNotFound) {
		return repository.ErrStaleState
	}
	return mapped
}

func execAffectingOne(ctx context.Context, tx *sql.Tx, query string, args ...any) error {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("expected 1 row, affected %d: %w", n, repository.ErrNotFound)
	}
	return nil
}
