package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
)

// InsertEvents writes lifecycle events in a single ClickHouse batch.
func (r *Repository) InsertEvents(ctx context.Context, events []model.LifecycleEvent) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_events", err, start)
		if err == nil {
			r.metrics.ObserveRows("insert_events", len(events))
		}
	}()

	if len(events) == 0 {
		return nil
	}

	const query = `
INSERT INTO lifecycle_events (
    id,
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
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare lifecycle events batch: %w", err)
	}

	for _, e := range events {
		reasons := e.AnomalyReasons
		if reasons == nil {
			reasons = []string{}
		}
		if err = batch.Append(
			e.ID,
			string(e.Kind),
			string(e.Action),
			e.RequestID,
			e.CreditID,
			e.ActorID,
			e.Amount,
			e.Anomaly,
			reasons,
			e.TxHash,
			e.OccurredAt,
		); err != nil {
			return fmt.Errorf("append lifecycle event %s: %w", e.ID, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("send lifecycle events batch: %w", err)
	}

	return nil
}
