// Package reconcile resolves chain operations whose local commit never happened.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/h2credit-ledger/internal/chain"
	"github.com/goodnatureofminers/h2credit-ledger/internal/clock"
	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
	"github.com/goodnatureofminers/h2credit-ledger/pkg/workerpool"
)

const (
	OutcomeReplayed  = "replayed"
	OutcomeFailed    = "failed"
	OutcomePending   = "pending"
	OutcomeUnknown   = "unknown"
	OutcomeCommitErr = "commit_error"
)

const (
	defaultInterval    = 30 * time.Second
	defaultGracePeriod = 5 * time.Minute
	defaultWorkers     = 4
	defaultBatchSize   = 100
	defaultChainWait   = 30 * time.Second
	intervalJitter     = 0.1
)

// Config tunes the scan loop. GracePeriod is how long an operation must sit
// untouched before the reconciler takes it over from the request that started it.
type Config struct {
	Interval    time.Duration
	GracePeriod time.Duration
	Workers     int
	BatchSize   int
	ChainWait   time.Duration
}

type Reconciler struct {
	store   Store
	chain   Chain
	metrics Metrics
	events  EventSink
	logger  *zap.Logger
	cfg     Config
	sleep   func(context.Context, time.Duration) error
	now     func() time.Time
}

func NewReconciler(store Store, chain Chain, metrics Metrics, events EventSink, logger *zap.Logger, cfg Config) (*Reconciler, error) {
	if store == nil {
		return nil, errors.New("reconciler store is required")
	}
	if chain == nil {
		return nil, errors.New("reconciler chain is required")
	}
	if metrics == nil {
		return nil, errors.New("reconciler metrics is required")
	}
	if events == nil {
		return nil, errors.New("reconciler event sink is required")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.GracePeriod <= 0 {
		cfg.GracePeriod = defaultGracePeriod
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.ChainWait <= 0 {
		cfg.ChainWait = defaultChainWait
	}

	return &Reconciler{
		store:   store,
		chain:   chain,
		metrics: metrics,
		events:  events,
		logger:  logger,
		cfg:     cfg,
		sleep:   clock.SleepWithContext,
		now:     time.Now,
	}, nil
}

// Run scans the outbox every interval until the context is canceled.
func (r *Reconciler) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if _, err := r.Scan(ctx); err != nil && ctx.Err() == nil {
			r.logger.Warn("outbox scan failed, backing off", zap.Error(err), zap.Duration("sleep", r.cfg.Interval))
		}
		if err := r.sleep(ctx, clock.Jitter(r.cfg.Interval, intervalJitter)); err != nil {
			return err
		}
	}
}

// Scan resolves one batch of stale operations and reports how many it found.
func (r *Reconciler) Scan(ctx context.Context) (n int, err error) {
	started := time.Now()
	defer func() {
		r.metrics.ObserveScan(err, n, started)
	}()

	ops, err := r.store.StaleChainOperations(ctx, r.now().Add(-r.cfg.GracePeriod), r.cfg.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("list stale chain operations: %w", err)
	}
	if len(ops) == 0 {
		r.logger.Debug("no stale chain operations")
		return 0, nil
	}

	r.logger.Info("resolving stale chain operations", zap.Int("operations", len(ops)))
	if err = workerpool.Process(ctx, r.cfg.Workers, ops, r.resolve); err != nil {
		return len(ops), fmt.Errorf("resolve chain operations: %w", err)
	}
	return len(ops), nil
}

func (r *Reconciler) resolve(ctx context.Context, op model.ChainOperation) error {
	logger := r.logger.With(
		zap.String("operation_id", op.ID),
		zap.String("kind", string(op.Kind)),
		zap.String("request_id", op.RequestID),
		zap.String("credit_id", op.CreditID),
		zap.String("status", string(op.Status)),
	)

	if op.Status == model.ChainOperationConfirmed {
		return r.replay(ctx, op, logger)
	}

	// A recorded hash means a transaction was signed and possibly broadcast;
	// its fate decides the operation before the credit state does.
	reason := "chain effect absent after grace period"
	if op.TxHash != "" {
		status, err := r.txStatus(ctx, op.TxHash)
		if err != nil {
			r.metrics.ObserveOutcome(string(op.Kind), OutcomeUnknown)
			logger.Warn("transaction status undetermined, leaving operation in flight", zap.String("tx_hash", op.TxHash), zap.Error(err))
			return err
		}
		switch status {
		case chain.TxPending:
			r.metrics.ObserveOutcome(string(op.Kind), OutcomePending)
			logger.Info("transaction not mined yet, leaving operation in flight", zap.String("tx_hash", op.TxHash))
			return nil
		case chain.TxSucceeded:
			return r.replay(ctx, op, logger)
		case chain.TxReverted:
			return r.fail(ctx, op, fmt.Sprintf("transaction %s reverted", op.TxHash), logger)
		default:
			reason = fmt.Sprintf("transaction %s unknown to the node and chain effect absent", op.TxHash)
		}
	}

	present, err := r.effectPresent(ctx, op)
	if err != nil {
		r.metrics.ObserveOutcome(string(op.Kind), OutcomeUnknown)
		logger.Warn("chain effect undetermined, leaving operation in flight", zap.Error(err))
		return err
	}
	if present {
		return r.replay(ctx, op, logger)
	}
	return r.fail(ctx, op, reason, logger)
}

func (r *Reconciler) fail(ctx context.Context, op model.ChainOperation, reason string, logger *zap.Logger) error {
	if err := r.store.FailChainOperation(ctx, op.ID, reason); err != nil {
		r.metrics.ObserveOutcome(string(op.Kind), OutcomeCommitErr)
		logger.Error("mark chain operation failed", zap.Error(err))
		return fmt.Errorf("fail operation %s: %w", op.ID, err)
	}
	r.metrics.ObserveOutcome(string(op.Kind), OutcomeFailed)
	logger.Info("chain operation failed, request stays pending", zap.String("reason", reason))
	return nil
}

func (r *Reconciler) txStatus(ctx context.Context, txHash string) (chain.TxStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ChainWait)
	defer cancel()

	status, err := r.chain.TransactionStatus(ctx, txHash)
	if err != nil {
		return "", fmt.Errorf("read transaction %s: %w", txHash, err)
	}
	return status, nil
}

// effectPresent reads the credit on chain and decides whether the operation landed.
func (r *Reconciler) effectPresent(ctx context.Context, op model.ChainOperation) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ChainWait)
	defer cancel()

	credit, err := r.chain.Credit(ctx, op.CreditID)
	if errors.Is(err, chain.ErrCreditNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read credit %s: %w", op.CreditID, err)
	}

	switch op.Kind {
	case model.KindIssue:
		// Credit ids are request ids, so any record proves this issuance landed.
		return true, nil
	case model.KindBuy:
		return strings.EqualFold(credit.Holder, op.TargetAddress), nil
	case model.KindRetire:
		return credit.Retired, nil
	default:
		return false, fmt.Errorf("unknown operation kind %q", op.Kind)
	}
}

func (r *Reconciler) replay(ctx context.Context, op model.ChainOperation, logger *zap.Logger) error {
	commit := model.Commit{
		OperationID: op.ID,
		RequestID:   op.RequestID,
		ActorID:     op.ActorID,
		TxHash:      op.TxHash,
	}

	var err error
	switch op.Kind {
	case model.KindIssue:
		err = r.store.CommitIssue(ctx, commit)
	case model.KindBuy:
		err = r.store.CommitTransfer(ctx, commit)
	case model.KindRetire:
		err = r.store.CommitRetire(ctx, commit)
	default:
		err = fmt.Errorf("unknown operation kind %q", op.Kind)
	}
	if err != nil {
		r.metrics.ObserveOutcome(string(op.Kind), OutcomeCommitErr)
		logger.Error("replay ledger commit failed", zap.String("tx_hash", op.TxHash), zap.Error(err))
		return fmt.Errorf("replay operation %s: %w", op.ID, err)
	}

	r.metrics.ObserveOutcome(string(op.Kind), OutcomeReplayed)
	logger.Info("ledger commit replayed", zap.String("tx_hash", op.TxHash))
	r.events.Record(ctx, model.LifecycleEvent{
		ID:         uuid.NewString(),
		Kind:       op.Kind,
		Action:     model.ActionReplayed,
		RequestID:  op.RequestID,
		CreditID:   op.CreditID,
		ActorID:    op.ActorID,
		Amount:     op.Amount,
		TxHash:     op.TxHash,
		OccurredAt: r.now().UTC(),
	})
	return nil
}
