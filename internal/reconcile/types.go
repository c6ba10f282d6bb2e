package reconcile

import (
	"context"
	"time"

	"github.com/goodnatureofminers/h2credit-ledger/internal/chain"
	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=reconcile

type (
	Store interface {
		StaleChainOperations(ctx context.Context, olderThan time.Time, limit int) ([]model.ChainOperation, error)
		CommitIssue(ctx context.Context, c model.Commit) error
		CommitTransfer(ctx context.Context, c model.Commit) error
		CommitRetire(ctx context.Context, c model.Commit) error
		FailChainOperation(ctx context.Context, id, reason string) error
	}

	Chain interface {
		Credit(ctx context.Context, creditID string) (model.OnChainCredit, error)
		TransactionStatus(ctx context.Context, txHash string) (chain.TxStatus, error)
	}

	Metrics interface {
		ObserveScan(err error, operations int, started time.Time)
		ObserveOutcome(kind, outcome string)
	}

	EventSink interface {
		Record(ctx context.Context, event model.LifecycleEvent)
	}
)
