package lifecycle

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/h2credit-ledger/internal/apperr"
	"github.com/goodnatureofminers/h2credit-ledger/internal/chain"
	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
	"github.com/goodnatureofminers/h2credit-ledger/internal/repository"
	"go.uber.org/zap"
)

// CreateRetireRequest declares a held credit consumed. Only the credit's
// current holder may file it, and a credit accepts one retire request ever,
// whatever became of earlier ones.
func (e *Engine) CreateRetireRequest(ctx context.Context, userID, creditID, metadata string) (_ model.RetireRequest, err error) {
	started := time.Now()
	defer func() {
		e.metrics.ObserveTransition(string(model.KindRetire), "create", err, started)
	}()

	user, err := e.actor(ctx, userID, model.RoleIndustry)
	if err != nil {
		return model.RetireRequest{}, err
	}
	credit, err := e.issuedCredit(ctx, creditID)
	if err != nil {
		return model.RetireRequest{}, err
	}
	if err := e.requireHolder(ctx, user, credit.ID); err != nil {
		return model.RetireRequest{}, err
	}

	res := e.detect(model.KindRetire, metadata)
	req, err := e.store.CreateRetireRequest(ctx, model.RetireRequest{
		CreditID:       credit.ID,
		UserID:         user.ID,
		Metadata:       metadata,
		Anomaly:        res.Anomaly,
		AnomalyReasons: res.Strings(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return model.RetireRequest{}, apperr.Conflict("credit already retired or pending retirement")
		}
		return model.RetireRequest{}, storeError(err, "retire request")
	}
	req.Amount = credit.Amount
	req.Username = user.Username

	e.record(ctx, model.LifecycleEvent{
		Kind:           model.KindRetire,
		Action:         model.ActionCreated,
		RequestID:      req.ID,
		CreditID:       req.CreditID,
		ActorID:        user.ID,
		Amount:         req.Amount,
		Anomaly:        req.Anomaly,
		AnomalyReasons: req.AnomalyReasons,
	})
	return req, nil
}

// AcceptRetireRequest retires the credit on chain with the wallet that holds
// it now, which may differ from the requester's, and then marks the request RETIRED.
func (e *Engine) AcceptRetireRequest(ctx context.Context, auditorID, requestID string) (_ model.RetireRequest, err error) {
	started := time.Now()
	defer func() {
		e.metrics.ObserveTransition(string(model.KindRetire), "accept", err, started)
	}()

	auditor, req, err := e.auditorsRetireRequest(ctx, auditorID, requestID)
	if err != nil {
		return model.RetireRequest{}, err
	}

	holder, err := e.currentHolder(ctx, req.CreditID)
	if err != nil {
		return model.RetireRequest{}, err
	}

	op, err := e.onChain(ctx, model.ChainOperation{
		Kind:          model.KindRetire,
		RequestID:     req.ID,
		CreditID:      req.CreditID,
		ActorID:       auditor.ID,
		TargetAddress: holder.WalletAddress,
		Amount:        req.Amount,
	}, func(ctx context.Context) (string, error) {
		return e.gateway.RetireCredit(ctx, req.CreditID, holder.WalletAddress)
	})
	if err != nil {
		return model.RetireRequest{}, err
	}
	if err = e.commit(ctx, op, auditor.ID, e.store.CommitRetire); err != nil {
		return model.RetireRequest{}, err
	}

	req.Status = model.RetireRetired
	req.TxnHash = op.TxHash
	req.ActionByID = auditor.ID
	req.ActionByUsername = auditor.Username

	e.record(ctx, model.LifecycleEvent{
		Kind:      model.KindRetire,
		Action:    model.ActionAccepted,
		RequestID: req.ID,
		CreditID:  req.CreditID,
		ActorID:   auditor.ID,
		Amount:    req.Amount,
		Anomaly:   req.Anomaly,
		TxHash:    op.TxHash,
	})
	return req, nil
}

// RejectRetireRequest declines a PENDING retire request. The credit stays
// unretirable because its one retire request has been spent.
func (e *Engine) RejectRetireRequest(ctx context.Context, auditorID, requestID string) (_ model.RetireRequest, err error) {
	started := time.Now()
	defer func() {
		e.metrics.ObserveTransition(string(model.KindRetire), "reject", err, started)
	}()

	auditor, req, err := e.auditorsRetireRequest(ctx, auditorID, requestID)
	if err != nil {
		return model.RetireRequest{}, err
	}
	if err = e.store.RejectRetireRequest(ctx, req.ID, auditor.ID); err != nil {
		return model.RetireRequest{}, storeError(err, "retire request")
	}

	req.Status = model.RetireRejected
	req.ActionByID = auditor.ID
	req.ActionByUsername = auditor.Username

	e.record(ctx, model.LifecycleEvent{
		Kind:      model.KindRetire,
		Action:    model.ActionRejected,
		RequestID: req.ID,
		CreditID:  req.CreditID,
		ActorID:   auditor.ID,
		Amount:    req.Amount,
		Anomaly:   req.Anomaly,
	})
	return req, nil
}

// RetireRequests lists every retire request of users assigned to the auditor.
func (e *Engine) RetireRequests(ctx context.Context, auditorID string) (_ []model.RetireRequest, err error) {
	started := time.Now()
	defer func() {
		e.metrics.ObserveTransition(string(model.KindRetire), "list", err, started)
	}()

	if _, err = e.actor(ctx, auditorID, model.RoleAuditor); err != nil {
		return nil, err
	}
	reqs, err := e.store.RetireRequestsForAuditor(ctx, auditorID)
	if err != nil {
		return nil, storeError(err, "retire requests")
	}
	return reqs, nil
}

// auditorsRetireRequest loads a PENDING retire request whose requester is
// assigned to the auditor. Assignment is checked before status.
func (e *Engine) auditorsRetireRequest(ctx context.Context, auditorID, requestID string) (model.User, model.RetireRequest, error) {
	auditor, err := e.actor(ctx, auditorID, model.RoleAuditor)
	if err != nil {
		return model.User{}, model.RetireRequest{}, err
	}
	req, err := e.store.RetireRequestByID(ctx, requestID)
	if err != nil {
		return model.User{}, model.RetireRequest{}, storeError(err, "retire request")
	}
	requester, err := e.store.UserByID(ctx, req.UserID)
	if err != nil {
		return model.User{}, model.RetireRequest{}, storeError(err, "requesting user")
	}
	if requester.AssignedAuditorID != auditor.ID {
		return model.User{}, model.RetireRequest{}, apperr.Authorization("you are not the assigned auditor for this user")
	}
	if req.Status != model.RetirePending {
		return model.User{}, model.RetireRequest{}, notPending("retire request", string(req.Status))
	}
	return auditor, req, nil
}

// currentHolder resolves the custodian of a credit on chain and the ledger user owning that wallet.
func (e *Engine) currentHolder(ctx context.Context, creditID string) (model.User, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, e.gatewayTimeout)
	address, err := e.gateway.HolderAddress(lookupCtx, creditID)
	cancel()
	if err != nil {
		if errors.Is(err, chain.ErrCreditNotFound) {
			return model.User{}, apperr.NotFound("credit not found on blockchain")
		}
		return model.User{}, apperr.Gateway(err, "blockchain holder lookup failed")
	}

	holder, err := e.store.UserByWalletAddress(ctx, address)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			e.logger.Warn("credit held by a wallet outside the ledger",
				zap.String("credit_id", creditID),
				zap.String("holder", address),
			)
			return model.User{}, apperr.State("credit is held by a wallet this ledger does not custody")
		}
		return model.User{}, storeError(err, "holder")
	}
	return holder, nil
}

// requireHolder checks the custody projection for the credit's holder.
func (e *Engine) requireHolder(ctx context.Context, user model.User, creditID string) error {
	holding, err := e.store.CreditHolding(ctx, creditID)
	if err != nil {
		return storeError(err, "credit")
	}
	if holding.Retired {
		return apperr.Conflict("credit already retired")
	}
	if holding.HolderID != user.ID {
		return apperr.Authorization("only the current holder can retire this credit")
	}
	return nil
}
