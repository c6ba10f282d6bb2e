package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
)

// EventsByCredit returns the archived lifecycle of a credit, oldest first.
func (r *Repository) EventsByCredit(ctx context.Context, creditID string) ([]model.LifecycleEvent, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("events_by_credit", err, start)
	}()

	const query = `
SELECT
	toString(id),
	kind,
	action,
	request_id,
	credit_id,
	actor_id,
	amount,
	anomaly,
	anomaly_reasons,
	tx_hash,
	occurred_at
FROM lifecycle_events FINAL
WHERE credit_id = ?
ORDER BY occurred_at ASC, id ASC`

	rows, err := r.conn.Query(ctx, query, creditID)
	if err != nil {
		return nil, fmt.Errorf("query lifecycle events: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	events := make([]model.LifecycleEvent, 0)
	for rows.Next() {
		var (
			event        model.LifecycleEvent
			kind, action string
		)
		if err = rows.Scan(
			&event.ID,
			&kind,
			&action,
			&event.RequestID,
			&event.CreditID,
			&event.ActorID,
			&event.Amount,
			&event.Anomaly,
			&event.AnomalyReasons,
			&event.TxHash,
			&event.OccurredAt,
		); err != nil {
			return nil, fmt.Errorf("scan lifecycle event: %w", err)
		}

		event.Kind = model.RequestKind(kind)
		event.Action = model.LifecycleAction(action)
		event.OccurredAt = event.OccurredAt.UTC()
		if len(event.AnomalyReasons) == 0 {
			event.AnomalyReasons = nil
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lifecycle events: %w", err)
	}

	return events, nil
}
