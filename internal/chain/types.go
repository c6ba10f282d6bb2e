// Package chain exposes the credit contract to the rest of the service.
package chain

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

var (
	// ErrNotSubmitted means the transaction never left the service, so the
	// chain effect is known to be absent.
	ErrNotSubmitted = errors.New("transaction not submitted")
	// ErrReverted means the transaction was mined and reverted.
	ErrReverted = errors.New("transaction reverted")
	// ErrCreditNotFound means the contract holds no record of the credit.
	ErrCreditNotFound = errors.New("credit not found on chain")
)

// Definite reports whether err proves the chain effect did not happen.
// Any other error leaves the outcome unknown.
func Definite(err error) bool {
	return errors.Is(err, ErrNotSubmitted) || errors.Is(err, ErrReverted)
}

// TxStatus is what the node knows about a previously sent transaction.
type TxStatus string

const (
	TxPending   TxStatus = "pending"
	TxSucceeded TxStatus = "succeeded"
	TxReverted  TxStatus = "reverted"
	// TxNotFound means the node has neither a receipt nor a pooled copy.
	TxNotFound TxStatus = "not_found"
)

type (
	// Backend performs contract calls. Write methods return the transaction
	// hash whenever a transaction was signed, even alongside an error.
	Backend interface {
		IssueCredit(ctx context.Context, creditID, holderAddress string, amount int64) (string, error)
		TransferCredit(ctx context.Context, creditID, fromAddress, toAddress string) (string, error)
		RetireCredit(ctx context.Context, creditID, holderAddress string) (string, error)
		Credit(ctx context.Context, creditID string) (model.OnChainCredit, error)
		AllCredits(ctx context.Context) ([]model.OnChainCredit, error)
		FundWallet(ctx context.Context, address string, wei *big.Int) (string, error)
		TransactionStatus(ctx context.Context, txHash string) (TxStatus, error)
	}

	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
