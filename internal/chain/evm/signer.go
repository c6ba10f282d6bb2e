package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// KeyStore resolves custodial keys by wallet address.
	KeyStore interface {
		WalletKey(ctx context.Context, address string) (string, error)
	}

	// Signer produces transactors for wallets the service may act for.
	Signer interface {
		Transactor(ctx context.Context, address common.Address) (*bind.TransactOpts, error)
	}
)

// CustodialSigner signs for user wallets whose keys the ledger store keeps.
type CustodialSigner struct {
	keys    KeyStore
	chainID *big.Int
}

func NewCustodialSigner(keys KeyStore, chainID *big.Int) (*CustodialSigner, error) {
	if keys == nil {
		return nil, errors.New("key store is required")
	}
	if chainID == nil {
		return nil, errors.New("chain id is required")
	}
	return &CustodialSigner{keys: keys, chainID: chainID}, nil
}

func (s *CustodialSigner) Transactor(ctx context.Context, address common.Address) (*bind.TransactOpts, error) {
	hexKey, err := s.keys.WalletKey(ctx, address.Hex())
	if err != nil {
		return nil, fmt.Errorf("load key for %s: %w", address.Hex(), err)
	}
	key, err := ParsePrivateKey(hexKey)
	if err != nil {
		return nil, err
	}
	if owner := crypto.PubkeyToAddress(key.PublicKey); owner != address {
		return nil, fmt.Errorf("stored key belongs to %s, not %s", owner.Hex(), address.Hex())
	}
	opts, err := bind.NewKeyedTransactorWithChainID(key, s.chainID)
	if err != nil {
		return nil, fmt.Errorf("build transactor for %s: %w", address.Hex(), err)
	}
	return opts, nil
}
