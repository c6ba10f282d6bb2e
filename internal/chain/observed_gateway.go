package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
	"go.uber.org/ratelimit"
)

// ObservedGateway paces and measures every contract call. Callers bound each
// call with their own deadline; pacing gives up when that deadline passes.
type ObservedGateway struct {
	backend Backend
	metrics Metrics
	limiter ratelimit.Limiter
}

// NewObservedGateway wraps backend. A non-positive rps disables pacing.
func NewObservedGateway(backend Backend, metrics Metrics, rps int) (*ObservedGateway, error) {
	if backend == nil {
		return nil, errors.New("chain backend is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &ObservedGateway{backend: backend, metrics: metrics, limiter: limiter}, nil
}

// take waits for a pacing slot or for ctx, whichever comes first. A call
// that never got a slot was never sent.
func (g *ObservedGateway) take(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrNotSubmitted, err)
	}

	taken := make(chan struct{})
	go func() {
		g.limiter.Take()
		close(taken)
	}()

	select {
	case <-taken:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: waiting for rate limit: %v", ErrNotSubmitted, ctx.Err())
	}
}

func (g *ObservedGateway) IssueCredit(ctx context.Context, creditID, holderAddress string, amount int64) (txHash string, err error) {
	if err = g.take(ctx); err != nil {
		return "", err
	}
	started := time.Now()
	defer func() {
		g.metrics.Observe("issue_credit", err, started)
	}()
	return g.backend.IssueCredit(ctx, creditID, holderAddress, amount)
}

func (g *ObservedGateway) TransferCredit(ctx context.Context, creditID, fromAddress, toAddress string) (txHash string, err error) {
	if err = g.take(ctx); err != nil {
		return "", err
	}
	started := time.Now()
	defer func() {
		g.metrics.Observe("transfer_credit", err, started)
	}()
	return g.backend.TransferCredit(ctx, creditID, fromAddress, toAddress)
}

func (g *ObservedGateway) RetireCredit(ctx context.Context, creditID, holderAddress string) (txHash string, err error) {
	if err = g.take(ctx); err != nil {
		return "", err
	}
	started := time.Now()
	defer func() {
		g.metrics.Observe("retire_credit", err, started)
	}()
	return g.backend.RetireCredit(ctx, creditID, holderAddress)
}

func (g *ObservedGateway) Credit(ctx context.Context, creditID string) (credit model.OnChainCredit, err error) {
	if err = g.take(ctx); err != nil {
		return model.OnChainCredit{}, err
	}
	started := time.Now()
	defer func() {
		g.metrics.Observe("get_credit", err, started)
	}()
	return g.backend.Credit(ctx, creditID)
}

// HolderAddress resolves the current custodian of a credit.
func (g *ObservedGateway) HolderAddress(ctx context.Context, creditID string) (string, error) {
	credit, err := g.Credit(ctx, creditID)
	if err != nil {
		return "", err
	}
	return credit.Holder, nil
}

func (g *ObservedGateway) AllCredits(ctx context.Context) (credits []model.OnChainCredit, err error) {
	if err = g.take(ctx); err != nil {
		return nil, err
	}
	started := time.Now()
	defer func() {
		g.metrics.Observe("get_all_credits", err, started)
	}()
	return g.backend.AllCredits(ctx)
}

func (g *ObservedGateway) FundWallet(ctx context.Context, address string, wei *big.Int) (txHash string, err error) {
	if err = g.take(ctx); err != nil {
		return "", err
	}
	started := time.Now()
	defer func() {
		g.metrics.Observe("fund_wallet", err, started)
	}()
	return g.backend.FundWallet(ctx, address, wei)
}

func (g *ObservedGateway) TransactionStatus(ctx context.Context, txHash string) (status TxStatus, err error) {
	if err = g.take(ctx); err != nil {
		return "", err
	}
	started := time.Now()
	defer func() {
		g.metrics.Observe("transaction_status", err, started)
	}()
	return g.backend.TransactionStatus(ctx, txHash)
}
