package lifecycle

import (
	"context"
	"time"

	"github.com/goodnatureofminers/h2credit-ledger/internal/anomaly"
	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Store interface {
		UserByID(ctx context.Context, id string) (model.User, error)
		UserByWalletAddress(ctx context.Context, address string) (model.User, error)

		CreateIssueRequest(ctx context.Context, req model.IssueRequest) (model.IssueRequest, error)
		IssueRequestByID(ctx context.Context, id string) (model.IssueRequest, error)
		PendingIssueRequestsForAuditor(ctx context.Context, auditorID string) ([]model.IssueRequest, error)
		RejectIssueRequest(ctx context.Context, id, auditorID string) error
		CommitIssue(ctx context.Context, c model.Commit) error

		CreateBuyRequest(ctx context.Context, req model.BuyRequest) (model.BuyRequest, error)
		BuyRequestByID(ctx context.Context, id string) (model.BuyRequest, error)
		CreditTransferred(ctx context.Context, creditID string) (bool, error)
		PendingBuyRequestsForSeller(ctx context.Context, sellerID string) ([]model.BuyRequest, error)
		RejectBuyRequest(ctx context.Context, id string) error
		CommitTransfer(ctx context.Context, c model.Commit) error

		CreditHolding(ctx context.Context, creditID string) (model.CreditHolding, error)
		CreateRetireRequest(ctx context.Context, req model.RetireRequest) (model.RetireRequest, error)
		RetireRequestByID(ctx context.Context, id string) (model.RetireRequest, error)
		RetireRequestsForAuditor(ctx context.Context, auditorID string) ([]model.RetireRequest, error)
		RejectRetireRequest(ctx context.Context, id, auditorID string) error
		CommitRetire(ctx context.Context, c model.Commit) error

		BeginChainOperation(ctx context.Context, op model.ChainOperation) (model.ChainOperation, error)
		ConfirmChainOperation(ctx context.Context, id, txHash string) error
		FailChainOperation(ctx context.Context, id, reason string) error
		MarkChainOperationUncertain(ctx context.Context, id, txHash, reason string) error
	}

	// Gateway is the part of the chain gateway the engine writes through.
	Gateway interface {
		IssueCredit(ctx context.Context, creditID, holderAddress string, amount int64) (string, error)
		TransferCredit(ctx context.Context, creditID, fromAddress, toAddress string) (string, error)
		RetireCredit(ctx context.Context, creditID, holderAddress string) (string, error)
		HolderAddress(ctx context.Context, creditID string) (string, error)
	}

	Detector interface {
		Detect(kind model.RequestKind, metadata string) anomaly.Result
	}

	// EventSink receives lifecycle events. Record must not block on storage.
	EventSink interface {
		Record(ctx context.Context, event model.LifecycleEvent)
	}

	Metrics interface {
		ObserveTransition(kind, action string, err error, started time.Time)
		AnomalyFlagged(kind string)
		PersistenceFailure(kind string)
	}
)
