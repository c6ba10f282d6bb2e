package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
)

func (r *Repository) CreditHolding(ctx context.Context, creditID string) (_ model.CreditHolding, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("credit_holding", err, start)
	}()

	const query = `
SELECT credit_id, issuer_id, holder_id, amount, retired, last_tx_hash, updated_at
FROM credit_holdings
WHERE credit_id = $1`

	var h model.CreditHolding
	err = r.db.QueryRowContext(ctx, query, creditID).Scan(
		&h.CreditID,
		&h.IssuerID,
		&h.HolderID,
		&h.Amount,
		&h.Retired,
		&h.LastTxHash,
		&h.UpdatedAt,
	)
	if err != nil {
		err = mapError(err)
		return model.CreditHolding{}, fmt.Errorf("select holding %s: %w", creditID, err)
	}
	return h, nil
}

// ReplaceHoldings swaps the whole projection for holdings rebuilt from the request logs.
func (r *Repository) ReplaceHoldings(ctx context.Context, holdings []model.CreditHolding) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("replace_holdings", err, start)
	}()

	const insert = `
INSERT INTO credit_holdings (credit_id, issuer_id, holder_id, amount, retired, last_tx_hash, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	err = r.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM credit_holdings`); err != nil {
			return fmt.Errorf("clear holdings: %w", err)
		}
		stmt, err := tx.PrepareContext(ctx, insert)
		if err != nil {
			return fmt.Errorf("prepare holding insert: %w", err)
		}
		defer stmt.Close()

		for _, h := range holdings {
			if _, err := stmt.ExecContext(ctx, h.CreditID, h.IssuerID, h.HolderID, h.Amount, h.Retired, h.LastTxHash, h.UpdatedAt); err != nil {
				return fmt.Errorf("insert holding %s: %w", h.CreditID, mapError(err))
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace holdings: %w", err)
	}
	return nil
}
