package registry

import (
	"context"
	"math/big"

	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Store interface {
		CreateUser(ctx context.Context, nu model.NewUser) (model.User, error)
		UserByID(ctx context.Context, id string) (model.User, error)
		UserByUsername(ctx context.Context, username string) (model.User, error)
	}

	// Funder sends gas money to freshly created wallets.
	Funder interface {
		FundWallet(ctx context.Context, address string, wei *big.Int) (string, error)
	}
)
