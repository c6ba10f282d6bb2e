package ledger

import (
	"context"

	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Store interface {
		UserByID(ctx context.Context, id string) (model.User, error)
		UserByUsername(ctx context.Context, username string) (model.User, error)
		IssueRequestsByUser(ctx context.Context, userID string) ([]model.IssueRequest, error)
		TransferredBuyRequestsFrom(ctx context.Context, userID string) ([]model.BuyRequest, error)
		TransferredBuyRequestsTo(ctx context.Context, userID string) ([]model.BuyRequest, error)
		RetiredCreditIDs(ctx context.Context) ([]string, error)
		IssuedCredits(ctx context.Context) ([]model.IssueRequest, error)
		TransferredBuyRequests(ctx context.Context) ([]model.BuyRequest, error)
		CreditHolding(ctx context.Context, creditID string) (model.CreditHolding, error)
		ReplaceHoldings(ctx context.Context, holdings []model.CreditHolding) error
	}

	// Chain reads credits straight from the contract.
	Chain interface {
		AllCredits(ctx context.Context) ([]model.OnChainCredit, error)
	}
)
