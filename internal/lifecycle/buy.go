package lifecycle

import (
	"context"
	"time"

	"github.com/goodnatureofminers/h2credit-ledger/internal/apperr"
	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
)

// CreateBuyRequest asks the issuing Plant to transfer an issued credit to the buyer.
func (e *Engine) CreateBuyRequest(ctx context.Context, buyerID, creditID, metadata string) (_ model.BuyRequest, err error) {
	started := time.Now()
	defer func() {
		e.metrics.ObserveTransition(string(model.KindBuy), "create", err, started)
	}()

	buyer, err := e.actor(ctx, buyerID, model.RoleIndustry)
	if err != nil {
		return model.BuyRequest{}, err
	}
	credit, err := e.issuedCredit(ctx, creditID)
	if err != nil {
		return model.BuyRequest{}, err
	}

	res := e.detect(model.KindBuy, metadata)
	req, err := e.store.CreateBuyRequest(ctx, model.BuyRequest{
		CreditID:       credit.ID,
		FromID:         credit.UserID,
		ToID:           buyer.ID,
		Metadata:       metadata,
		Anomaly:        res.Anomaly,
		AnomalyReasons: res.Strings(),
	})
	if err != nil {
		return model.BuyRequest{}, storeError(err, "buy request")
	}
	req.Amount = credit.Amount
	req.FromUsername = credit.Username
	req.ToUsername = buyer.Username

	e.record(ctx, model.LifecycleEvent{
		Kind:           model.KindBuy,
		Action:         model.ActionCreated,
		RequestID:      req.ID,
		CreditID:       req.CreditID,
		ActorID:        buyer.ID,
		Amount:         req.Amount,
		Anomaly:        req.Anomaly,
		AnomalyReasons: req.AnomalyReasons,
	})
	return req, nil
}

// AcceptBuyRequest transfers the credit on chain from the seller's wallet to
// the buyer's and then marks the request TRANSFERRED.
func (e *Engine) AcceptBuyRequest(ctx context.Context, sellerID, requestID string) (_ model.BuyRequest, err error) {
	started := time.Now()
	defer func() {
		e.metrics.ObserveTransition(string(model.KindBuy), "accept", err, started)
	}()

	seller, req, err := e.sellersRequest(ctx, sellerID, requestID)
	if err != nil {
		return model.BuyRequest{}, err
	}
	transferred, err := e.store.CreditTransferred(ctx, req.CreditID)
	if err != nil {
		return model.BuyRequest{}, storeError(err, "credit")
	}
	if transferred {
		return model.BuyRequest{}, apperr.Conflict("credit already transferred")
	}
	buyer, err := e.store.UserByID(ctx, req.ToID)
	if err != nil {
		return model.BuyRequest{}, storeError(err, "buyer")
	}
	if seller.WalletAddress == "" || buyer.WalletAddress == "" {
		return model.BuyRequest{}, apperr.State("both parties need a wallet to transfer a credit")
	}

	op, err := e.onChain(ctx, model.ChainOperation{
		Kind:          model.KindBuy,
		RequestID:     req.ID,
		CreditID:      req.CreditID,
		ActorID:       seller.ID,
		TargetAddress: buyer.WalletAddress,
		Amount:        req.Amount,
	}, func(ctx context.Context) (string, error) {
		return e.gateway.TransferCredit(ctx, req.CreditID, seller.WalletAddress, buyer.WalletAddress)
	})
	if err != nil {
		return model.BuyRequest{}, err
	}
	if err = e.commit(ctx, op, seller.ID, e.store.CommitTransfer); err != nil {
		return model.BuyRequest{}, err
	}

	req.Status = model.BuyTransferred
	req.TxnHash = op.TxHash

	e.record(ctx, model.LifecycleEvent{
		Kind:      model.KindBuy,
		Action:    model.ActionAccepted,
		RequestID: req.ID,
		CreditID:  req.CreditID,
		ActorID:   seller.ID,
		Amount:    req.Amount,
		Anomaly:   req.Anomaly,
		TxHash:    op.TxHash,
	})
	return req, nil
}

// RejectBuyRequest declines a PENDING buy request without touching the chain.
func (e *Engine) RejectBuyRequest(ctx context.Context, sellerID, requestID string) (_ model.BuyRequest, err error) {
	started := time.Now()
	defer func() {
		e.metrics.ObserveTransition(string(model.KindBuy), "reject", err, started)
	}()

	seller, req, err := e.sellersRequest(ctx, sellerID, requestID)
	if err != nil {
		return model.BuyRequest{}, err
	}
	if err = e.store.RejectBuyRequest(ctx, req.ID); err != nil {
		return model.BuyRequest{}, storeError(err, "buy request")
	}
	req.Status = model.BuyRejected

	e.record(ctx, model.LifecycleEvent{
		Kind:      model.KindBuy,
		Action:    model.ActionRejected,
		RequestID: req.ID,
		CreditID:  req.CreditID,
		ActorID:   seller.ID,
		Amount:    req.Amount,
		Anomaly:   req.Anomaly,
	})
	return req, nil
}

// PendingBuyRequests lists PENDING buy requests addressed to the seller.
func (e *Engine) PendingBuyRequests(ctx context.Context, sellerID string) (_ []model.BuyRequest, err error) {
	started := time.Now()
	defer func() {
		e.metrics.ObserveTransition(string(model.KindBuy), "list", err, started)
	}()

	if _, err = e.actor(ctx, sellerID, model.RolePlant); err != nil {
		return nil, err
	}
	reqs, err := e.store.PendingBuyRequestsForSeller(ctx, sellerID)
	if err != nil {
		return nil, storeError(err, "buy requests")
	}
	return reqs, nil
}

// sellersRequest loads a PENDING buy request the seller may resolve.
func (e *Engine) sellersRequest(ctx context.Context, sellerID, requestID string) (model.User, model.BuyRequest, error) {
	seller, err := e.actor(ctx, sellerID, model.RolePlant)
	if err != nil {
		return model.User{}, model.BuyRequest{}, err
	}
	req, err := e.store.BuyRequestByID(ctx, requestID)
	if err != nil {
		return model.User{}, model.BuyRequest{}, storeError(err, "buy request")
	}
	if req.FromID != seller.ID {
		return model.User{}, model.BuyRequest{}, apperr.Authorization("only the credit owner can resolve this buy request")
	}
	if req.Status != model.BuyPending {
		return model.User{}, model.BuyRequest{}, notPending("buy request", string(req.Status))
	}
	return seller, req, nil
}

// issuedCredit loads the issue request that originated creditID and requires it ISSUED.
func (e *Engine) issuedCredit(ctx context.Context, creditID string) (model.IssueRequest, error) {
	credit, err := e.store.IssueRequestByID(ctx, creditID)
	if err != nil {
		return model.IssueRequest{}, storeError(err, "credit")
	}
	if credit.Status != model.IssueIssued {
		return model.IssueRequest{}, apperr.NotFound("credit not found or not issued")
	}
	return credit, nil
}
