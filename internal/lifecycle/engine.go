// Package lifecycle moves issue, buy and retire requests through their state
// machines. Accepting a request writes to the chain first and commits the
// ledger second; the chain_operations outbox covers the gap between the two.
package lifecycle

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/h2credit-ledger/internal/anomaly"
	"github.com/goodnatureofminers/h2credit-ledger/internal/apperr"
	"github.com/goodnatureofminers/h2credit-ledger/internal/chain"
	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
	"github.com/goodnatureofminers/h2credit-ledger/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultGatewayTimeout = 90 * time.Second

// Engine runs the request lifecycle operations.
type Engine struct {
	store    Store
	gateway  Gateway
	detector Detector
	events   EventSink
	metrics  Metrics
	logger   *zap.Logger

	gatewayTimeout time.Duration
	now            func() time.Time
}

// NewEngine wires the engine. A non-positive gatewayTimeout falls back to 90s.
func NewEngine(
	store Store,
	gateway Gateway,
	detector Detector,
	events EventSink,
	metrics Metrics,
	logger *zap.Logger,
	gatewayTimeout time.Duration,
) (*Engine, error) {
	switch {
	case store == nil:
		return nil, errors.New("store is required")
	case gateway == nil:
		return nil, errors.New("gateway is required")
	case detector == nil:
		return nil, errors.New("detector is required")
	case events == nil:
		return nil, errors.New("event sink is required")
	case metrics == nil:
		return nil, errors.New("metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if gatewayTimeout <= 0 {
		gatewayTimeout = defaultGatewayTimeout
	}
	return &Engine{
		store:          store,
		gateway:        gateway,
		detector:       detector,
		events:         events,
		metrics:        metrics,
		logger:         logger.With(zap.String("component", "lifecycle")),
		gatewayTimeout: gatewayTimeout,
		now:            time.Now,
	}, nil
}

// actor loads the caller and checks its role.
func (e *Engine) actor(ctx context.Context, userID string, role model.Role) (model.User, error) {
	user, err := e.store.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, apperr.NotFound("user not found")
		}
		return model.User{}, apperr.Internal(err, "load user")
	}
	if user.Role != role {
		return model.User{}, apperr.Authorization("only %s users can perform this action", role)
	}
	return user, nil
}

// detect evaluates metadata and counts anomalous submissions.
func (e *Engine) detect(kind model.RequestKind, metadata string) anomaly.Result {
	res := e.detector.Detect(kind, metadata)
	if res.Anomaly {
		e.metrics.AnomalyFlagged(string(kind))
	}
	return res
}

// onChain records an outbox entry, performs call under the gateway timeout
// and resolves the entry by what is known about the outcome.
func (e *Engine) onChain(ctx context.Context, op model.ChainOperation, call func(context.Context) (string, error)) (model.ChainOperation, error) {
	started, err := e.store.BeginChainOperation(ctx, op)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return op, apperr.Conflict("credit %s has a blockchain operation in progress", op.CreditID)
		}
		return op, apperr.Internal(err, "record chain operation")
	}
	op = started

	callCtx, cancel := context.WithTimeout(ctx, e.gatewayTimeout)
	txHash, callErr := call(callCtx)
	cancel()

	// Outcome bookkeeping must survive a cancelled request.
	bg := context.WithoutCancel(ctx)
	logger := e.logger.With(
		zap.String("kind", string(op.Kind)),
		zap.String("operation_id", op.ID),
		zap.String("request_id", op.RequestID),
		zap.String("credit_id", op.CreditID),
		zap.String("tx_hash", txHash),
	)

	if callErr != nil {
		if chain.Definite(callErr) {
			if err := e.store.FailChainOperation(bg, op.ID, callErr.Error()); err != nil {
				logger.Error("failed to close chain operation", zap.Error(err))
			}
			logger.Warn("blockchain call failed", zap.Error(callErr))
		} else {
			if err := e.store.MarkChainOperationUncertain(bg, op.ID, txHash, callErr.Error()); err != nil {
				logger.Error("failed to annotate chain operation", zap.Error(err))
			}
			logger.Warn("blockchain outcome unknown, left for reconciliation", zap.Error(callErr))
		}
		return op, apperr.Gateway(callErr, "blockchain %s failed", op.Kind)
	}

	op.TxHash = txHash
	op.Status = model.ChainOperationConfirmed
	if err := e.store.ConfirmChainOperation(bg, op.ID, txHash); err != nil {
		logger.Warn("failed to confirm chain operation", zap.Error(err))
	}
	return op, nil
}

// commit applies the local half of an accepted transition. A failure here
// means the chain moved and the ledger did not.
func (e *Engine) commit(ctx context.Context, op model.ChainOperation, actorID string, apply func(context.Context, model.Commit) error) error {
	c := model.Commit{
		OperationID: op.ID,
		RequestID:   op.RequestID,
		ActorID:     actorID,
		TxHash:      op.TxHash,
	}
	bg := context.WithoutCancel(ctx)
	if err := apply(bg, c); err != nil {
		e.metrics.PersistenceFailure(string(op.Kind))
		e.logger.Error("ledger commit failed after blockchain confirmation",
			zap.String("kind", string(op.Kind)),
			zap.String("operation_id", op.ID),
			zap.String("request_id", op.RequestID),
			zap.String("credit_id", op.CreditID),
			zap.String("tx_hash", op.TxHash),
			zap.Error(err),
		)
		e.record(bg, model.LifecycleEvent{
			Kind:      op.Kind,
			Action:    model.ActionCommitFailed,
			RequestID: op.RequestID,
			CreditID:  op.CreditID,
			ActorID:   actorID,
			Amount:    op.Amount,
			TxHash:    op.TxHash,
		})
		return apperr.Persistence(err, "%s confirmed on blockchain in %s but the ledger update failed", op.Kind, op.TxHash)
	}
	return nil
}

func (e *Engine) record(ctx context.Context, event model.LifecycleEvent) {
	event.ID = uuid.NewString()
	event.OccurredAt = e.now().UTC()
	e.events.Record(ctx, event)
}

// storeError translates a store failure that happened before any chain call.
func storeError(err error, what string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperr.NotFound("%s not found", what)
	case errors.Is(err, repository.ErrAlreadyTransferred):
		return apperr.Conflict("credit already transferred")
	case errors.Is(err, repository.ErrAlreadyRetired):
		return apperr.Conflict("credit already retired")
	case errors.Is(err, repository.ErrConflict):
		return apperr.Conflict("%s already exists", what)
	case errors.Is(err, repository.ErrOperationInProgress):
		return apperr.State("%s has a blockchain operation in progress", what)
	case errors.Is(err, repository.ErrStaleState):
		return apperr.State("%s is no longer pending", what)
	default:
		return apperr.Internal(err, "ledger store failed on %s", what)
	}
}

func notPending(what, status string) error {
	return apperr.State("%s is %s, only PENDING requests can be resolved", what, status)
}
