// Package ledger builds per-user credit ledgers from the request history and
// keeps the custody projection replayable.
package ledger

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/goodnatureofminers/h2credit-ledger/internal/apperr"
	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
	"github.com/goodnatureofminers/h2credit-ledger/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultChainTimeout = 90 * time.Second

// Aggregator serves ledger views.
type Aggregator struct {
	store  Store
	chain  Chain
	logger *zap.Logger

	chainTimeout time.Duration
}

// NewAggregator wires the aggregator. A non-positive chainTimeout falls back to 90s.
func NewAggregator(store Store, chain Chain, chainTimeout time.Duration, logger *zap.Logger) (*Aggregator, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	if chain == nil {
		return nil, errors.New("chain is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if chainTimeout <= 0 {
		chainTimeout = defaultChainTimeout
	}
	return &Aggregator{
		store:        store,
		chain:        chain,
		logger:       logger.With(zap.String("component", "ledger")),
		chainTimeout: chainTimeout,
	}, nil
}

// UserLedger rebuilds the ledger of username as seen by viewerID.
func (a *Aggregator) UserLedger(ctx context.Context, viewerID, username string) (model.UserLedger, error) {
	subject, err := a.subject(ctx, viewerID, username)
	if err != nil {
		return model.UserLedger{}, err
	}

	snap := Snapshot{User: subject}
	var retiredIDs []string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.Issues, err = a.store.IssueRequestsByUser(gctx, subject.ID)
		return err
	})
	g.Go(func() (err error) {
		snap.Outgoing, err = a.store.TransferredBuyRequestsFrom(gctx, subject.ID)
		return err
	})
	g.Go(func() (err error) {
		snap.Incoming, err = a.store.TransferredBuyRequestsTo(gctx, subject.ID)
		return err
	})
	g.Go(func() (err error) {
		retiredIDs, err = a.store.RetiredCreditIDs(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.UserLedger{}, apperr.Internal(err, "failed to load ledger history")
	}

	snap.Retired = make(map[string]struct{}, len(retiredIDs))
	for _, id := range retiredIDs {
		snap.Retired[id] = struct{}{}
	}
	return Reconcile(snap), nil
}

// ChainLedger lists the credits the contract records for the user's wallet.
func (a *Aggregator) ChainLedger(ctx context.Context, viewerID, username string) (model.ChainLedger, error) {
	subject, err := a.subject(ctx, viewerID, username)
	if err != nil {
		return model.ChainLedger{}, err
	}
	chainCtx, cancel := context.WithTimeout(ctx, a.chainTimeout)
	all, err := a.chain.AllCredits(chainCtx)
	cancel()
	if err != nil {
		return model.ChainLedger{}, apperr.Gateway(err, "failed to read credits from blockchain")
	}

	out := model.ChainLedger{
		Username:      subject.Username,
		WalletAddress: subject.WalletAddress,
		Credits:       []model.OnChainCredit{},
	}
	for _, c := range all {
		if !strings.EqualFold(c.Holder, subject.WalletAddress) {
			continue
		}
		out.Credits = append(out.Credits, c)
		out.TotalAmount += c.Amount
		if c.Retired {
			out.RetiredAmount += c.Amount
		} else {
			out.ActiveAmount += c.Amount
		}
	}
	sort.SliceStable(out.Credits, func(i, j int) bool {
		return out.Credits[i].Timestamp.After(out.Credits[j].Timestamp)
	})
	return out, nil
}

// Credit returns the projected custody of one credit.
func (a *Aggregator) Credit(ctx context.Context, creditID string) (model.CreditHolding, error) {
	h, err := a.store.CreditHolding(ctx, creditID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.CreditHolding{}, apperr.NotFound("credit not found")
		}
		return model.CreditHolding{}, apperr.Internal(err, "failed to load credit")
	}
	return h, nil
}

// RebuildHoldings replaces the custody projection with a replay of the request logs.
func (a *Aggregator) RebuildHoldings(ctx context.Context) (int, error) {
	issued, err := a.store.IssuedCredits(ctx)
	if err != nil {
		return 0, err
	}
	transfers, err := a.store.TransferredBuyRequests(ctx)
	if err != nil {
		return 0, err
	}
	retired, err := a.store.RetiredCreditIDs(ctx)
	if err != nil {
		return 0, err
	}

	holdings := ReplayHoldings(issued, transfers, retired)
	if err := a.store.ReplaceHoldings(ctx, holdings); err != nil {
		return 0, err
	}
	a.logger.Info("holdings projection rebuilt", zap.Int("credits", len(holdings)))
	return len(holdings), nil
}

// subject resolves whose ledger is requested and enforces who may read it:
// the user themself or any Auditor. Auditors hold no credits.
func (a *Aggregator) subject(ctx context.Context, viewerID, username string) (model.User, error) {
	viewer, err := a.store.UserByID(ctx, viewerID)
	if err != nil {
		return model.User{}, userError(err)
	}
	subject, err := a.store.UserByUsername(ctx, username)
	if err != nil {
		return model.User{}, userError(err)
	}
	if viewer.ID != subject.ID && viewer.Role != model.RoleAuditor {
		return model.User{}, apperr.Authorization("you can only view your own ledger")
	}
	if !subject.Role.HoldsWallet() {
		return model.User{}, apperr.Validation("only Plant or Industry users have a ledger")
	}
	return subject, nil
}

func userError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("user not found")
	}
	return apperr.Internal(err, "failed to load user")
}
