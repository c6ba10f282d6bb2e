package archive

import (
	"context"
	"time"

	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=archive

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveRows(operation string, rows int)
	}

	Writer interface {
		InsertEvents(ctx context.Context, events []model.LifecycleEvent) error
	}
)
