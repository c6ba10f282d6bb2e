package archive

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
	"github.com/goodnatureofminers/h2credit-ledger/pkg/batcher"
)

const enqueueTimeout = 250 * time.Millisecond

// Archiver buffers lifecycle events and writes them in batches. Losing an
// event never fails the transition that produced it.
type Archiver struct {
	batcher *batcher.Batcher[model.LifecycleEvent]
	logger  *zap.Logger
}

func NewArchiver(writer Writer, cfg batcher.Config, logger *zap.Logger) *Archiver {
	return &Archiver{
		batcher: batcher.New(logger, writer.InsertEvents, cfg),
		logger:  logger,
	}
}

func (a *Archiver) Start(ctx context.Context) {
	a.batcher.Start(ctx)
}

// Stop flushes buffered events and waits for the writer to finish.
func (a *Archiver) Stop() {
	a.batcher.Stop()
}

func (a *Archiver) Record(ctx context.Context, event model.LifecycleEvent) {
	ctx, cancel := context.WithTimeout(ctx, enqueueTimeout)
	defer cancel()

	if err := a.batcher.Add(ctx, event); err != nil {
		a.logger.Warn("lifecycle event dropped",
			zap.String("event_id", event.ID),
			zap.String("kind", string(event.Kind)),
			zap.String("action", string(event.Action)),
			zap.String("request_id", event.RequestID),
			zap.Error(err),
		)
	}
}

// Nop stands in for the archive when no ClickHouse DSN is configured.
type Nop struct{}

func (Nop) Record(context.Context, model.LifecycleEvent) {}

func (Nop) EventsByCredit(context.Context, string) ([]model.LifecycleEvent, error) {
	return []model.LifecycleEvent{}, nil
}
