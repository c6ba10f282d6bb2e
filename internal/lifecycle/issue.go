package lifecycle

import (
	"context"
	"time"

	"github.com/goodnatureofminers/h2credit-ledger/internal/apperr"
	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
)

// CreateIssueRequest files a PENDING claim for amount credits on behalf of a Plant.
func (e *Engine) CreateIssueRequest(ctx context.Context, userID string, amount int64, metadata string) (_ model.IssueRequest, err error) {
	started := time.Now()
	defer func() {
		e.metrics.ObserveTransition(string(model.KindIssue), "create", err, started)
	}()

	if amount <= 0 {
		return model.IssueRequest{}, apperr.Validation("amount must be a positive number")
	}
	user, err := e.actor(ctx, userID, model.RolePlant)
	if err != nil {
		return model.IssueRequest{}, err
	}

	res := e.detect(model.KindIssue, metadata)
	req, err := e.store.CreateIssueRequest(ctx, model.IssueRequest{
		UserID:         user.ID,
		Amount:         amount,
		Metadata:       metadata,
		Anomaly:        res.Anomaly,
		AnomalyReasons: res.Strings(),
	})
	if err != nil {
		return model.IssueRequest{}, storeError(err, "issue request")
	}
	req.Username = user.Username

	e.record(ctx, model.LifecycleEvent{
		Kind:           model.KindIssue,
		Action:         model.ActionCreated,
		RequestID:      req.ID,
		CreditID:       req.ID,
		ActorID:        user.ID,
		Amount:         req.Amount,
		Anomaly:        req.Anomaly,
		AnomalyReasons: req.AnomalyReasons,
	})
	return req, nil
}

// AcceptIssueRequest issues the credit on chain to the requester's wallet and
// then marks the request ISSUED.
func (e *Engine) AcceptIssueRequest(ctx context.Context, auditorID, requestID string) (_ model.IssueRequest, err error) {
	started := time.Now()
	defer func() {
		e.metrics.ObserveTransition(string(model.KindIssue), "accept", err, started)
	}()

	auditor, err := e.actor(ctx, auditorID, model.RoleAuditor)
	if err != nil {
		return model.IssueRequest{}, err
	}
	req, err := e.store.IssueRequestByID(ctx, requestID)
	if err != nil {
		return model.IssueRequest{}, storeError(err, "issue request")
	}
	if req.Status != model.IssuePending {
		return model.IssueRequest{}, notPending("issue request", string(req.Status))
	}
	requester, err := e.store.UserByID(ctx, req.UserID)
	if err != nil {
		return model.IssueRequest{}, storeError(err, "requesting user")
	}
	if requester.WalletAddress == "" {
		return model.IssueRequest{}, apperr.State("user %s has no wallet", requester.Username)
	}

	op, err := e.onChain(ctx, model.ChainOperation{
		Kind:          model.KindIssue,
		RequestID:     req.ID,
		CreditID:      req.ID,
		ActorID:       auditor.ID,
		TargetAddress: requester.WalletAddress,
		Amount:        req.Amount,
	}, func(ctx context.Context) (string, error) {
		return e.gateway.IssueCredit(ctx, req.ID, requester.WalletAddress, req.Amount)
	})
	if err != nil {
		return model.IssueRequest{}, err
	}
	if err = e.commit(ctx, op, auditor.ID, e.store.CommitIssue); err != nil {
		return model.IssueRequest{}, err
	}

	req.Status = model.IssueIssued
	req.TxnHash = op.TxHash
	req.ActionByID = auditor.ID
	req.ActionByUsername = auditor.Username

	e.record(ctx, model.LifecycleEvent{
		Kind:      model.KindIssue,
		Action:    model.ActionAccepted,
		RequestID: req.ID,
		CreditID:  req.ID,
		ActorID:   auditor.ID,
		Amount:    req.Amount,
		Anomaly:   req.Anomaly,
		TxHash:    op.TxHash,
	})
	return req, nil
}

// RejectIssueRequest closes a PENDING issue request without touching the chain.
func (e *Engine) RejectIssueRequest(ctx context.Context, auditorID, requestID string) (_ model.IssueRequest, err error) {
	started := time.Now()
	defer func() {
		e.metrics.ObserveTransition(string(model.KindIssue), "reject", err, started)
	}()

	auditor, err := e.actor(ctx, auditorID, model.RoleAuditor)
	if err != nil {
		return model.IssueRequest{}, err
	}
	req, err := e.store.IssueRequestByID(ctx, requestID)
	if err != nil {
		return model.IssueRequest{}, storeError(err, "issue request")
	}
	if req.Status != model.IssuePending {
		return model.IssueRequest{}, notPending("issue request", string(req.Status))
	}
	if err = e.store.RejectIssueRequest(ctx, req.ID, auditor.ID); err != nil {
		return model.IssueRequest{}, storeError(err, "issue request")
	}

	req.Status = model.IssueRejected
	req.ActionByID = auditor.ID
	req.ActionByUsername = auditor.Username

	e.record(ctx, model.LifecycleEvent{
		Kind:      model.KindIssue,
		Action:    model.ActionRejected,
		RequestID: req.ID,
		CreditID:  req.ID,
		ActorID:   auditor.ID,
		Amount:    req.Amount,
		Anomaly:   req.Anomaly,
	})
	return req, nil
}

// PendingIssueRequests lists PENDING issue requests of users assigned to the auditor.
func (e *Engine) PendingIssueRequests(ctx context.Context, auditorID string) (_ []model.IssueRequest, err error) {
	started := time.Now()
	defer func() {
		e.metrics.ObserveTransition(string(model.KindIssue), "list", err, started)
	}()

	if _, err = e.actor(ctx, auditorID, model.RoleAuditor); err != nil {
		return nil, err
	}
	reqs, err := e.store.PendingIssueRequestsForAuditor(ctx, auditorID)
	if err != nil {
		return nil, storeError(err, "issue requests")
	}
	return reqs, nil
}
