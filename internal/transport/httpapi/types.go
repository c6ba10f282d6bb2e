package httpapi

import (
	"context"
	"time"

	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
	"github.com/goodnatureofminers/h2credit-ledger/internal/registry"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=httpapi

type (
	Lifecycle interface {
		CreateIssueRequest(ctx context.Context, userID string, amount int64, metadata string) (model.IssueRequest, error)
		AcceptIssueRequest(ctx context.Context, auditorID, requestID string) (model.IssueRequest, error)
		RejectIssueRequest(ctx context.Context, auditorID, requestID string) (model.IssueRequest, error)
		PendingIssueRequests(ctx context.Context, auditorID string) ([]model.IssueRequest, error)

		CreateBuyRequest(ctx context.Context, buyerID, creditID, metadata string) (model.BuyRequest, error)
		AcceptBuyRequest(ctx context.Context, sellerID, requestID string) (model.BuyRequest, error)
		RejectBuyRequest(ctx context.Context, sellerID, requestID string) (model.BuyRequest, error)
		PendingBuyRequests(ctx context.Context, sellerID string) ([]model.BuyRequest, error)

		CreateRetireRequest(ctx context.Context, userID, creditID, metadata string) (model.RetireRequest, error)
		AcceptRetireRequest(ctx context.Context, auditorID, requestID string) (model.RetireRequest, error)
		RejectRetireRequest(ctx context.Context, auditorID, requestID string) (model.RetireRequest, error)
		RetireRequests(ctx context.Context, auditorID string) ([]model.RetireRequest, error)
	}

	Ledger interface {
		UserLedger(ctx context.Context, viewerID, username string) (model.UserLedger, error)
		ChainLedger(ctx context.Context, viewerID, username string) (model.ChainLedger, error)
		Credit(ctx context.Context, creditID string) (model.CreditHolding, error)
	}

	Registry interface {
		Register(ctx context.Context, reg registry.Registration) (registry.Result, error)
		Profile(ctx context.Context, userID string) (model.User, error)
	}

	Archive interface {
		EventsByCredit(ctx context.Context, creditID string) ([]model.LifecycleEvent, error)
	}

	Metrics interface {
		Observe(method, route string, code int, started time.Time)
	}
)
