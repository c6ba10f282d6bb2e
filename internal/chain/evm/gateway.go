// Package evm binds the hydrogen credit contract on an EVM chain.
package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/goodnatureofminers/h2credit-ledger/internal/chain"
	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
	"github.com/goodnatureofminers/h2credit-ledger/pkg/safe"
)

const transferGasLimit = 21000

// Backend is the RPC surface the gateway needs; *ethclient.Client satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	TransactionByHash(ctx context.Context, hash common.Hash) (tx *types.Transaction, isPending bool, err error)
}

// Gateway signs, sends and confirms contract transactions. Issuance and
// wallet funding are signed by the operator; transfers and retirements by
// the custodial wallet that holds the credit.
type Gateway struct {
	backend  Backend
	contract *bind.BoundContract
	operator *bind.TransactOpts
	custody  Signer

	mu      sync.Mutex
	senders map[common.Address]*sync.Mutex
}

// Dial connects to an RPC endpoint and reads its chain id.
func Dial(ctx context.Context, rpcURL string) (*ethclient.Client, *big.Int, error) {
	if rpcURL == "" {
		return nil, nil, errors.New("rpc url is required")
	}
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, nil, fmt.Errorf("dial %s: %w", rpcURL, err)
	}
	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("read chain id: %w", err)
	}
	return client, chainID, nil
}

func NewGateway(backend Backend, contractAddress, operatorKey string, chainID *big.Int, custody Signer) (*Gateway, error) {
	if backend == nil {
		return nil, errors.New("backend is required")
	}
	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("invalid contract address %q", contractAddress)
	}
	if custody == nil {
		return nil, errors.New("custody signer is required")
	}
	key, err := ParsePrivateKey(operatorKey)
	if err != nil {
		return nil, fmt.Errorf("operator key: %w", err)
	}
	operator, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("operator transactor: %w", err)
	}
	parsed, err := parseCreditABI()
	if err != nil {
		return nil, fmt.Errorf("parse contract abi: %w", err)
	}

	return &Gateway{
		backend:  backend,
		contract: bind.NewBoundContract(common.HexToAddress(contractAddress), parsed, backend, backend, backend),
		operator: operator,
		custody:  custody,
		senders:  make(map[common.Address]*sync.Mutex),
	}, nil
}

// OperatorAddress is the account that signs issuance and funds wallets.
func (g *Gateway) OperatorAddress() string {
	return g.operator.From.Hex()
}

func (g *Gateway) IssueCredit(ctx context.Context, creditID, holderAddress string, amount int64) (string, error) {
	if !common.IsHexAddress(holderAddress) {
		return "", fmt.Errorf("%w: invalid holder address %q", chain.ErrNotSubmitted, holderAddress)
	}
	if amount == 0 {
		return "", fmt.Errorf("%w: amount must be positive", chain.ErrNotSubmitted)
	}
	units, err := safe.BigUint(amount)
	if err != nil {
		return "", fmt.Errorf("%w: %v", chain.ErrNotSubmitted, err)
	}
	return g.transact(ctx, g.operator, "issueCredit", creditID, common.HexToAddress(holderAddress), units)
}

func (g *Gateway) TransferCredit(ctx context.Context, creditID, fromAddress, toAddress string) (string, error) {
	if !common.IsHexAddress(fromAddress) || !common.IsHexAddress(toAddress) {
		return "", fmt.Errorf("%w: invalid transfer addresses %q -> %q", chain.ErrNotSubmitted, fromAddress, toAddress)
	}
	opts, err := g.custody.Transactor(ctx, common.HexToAddress(fromAddress))
	if err != nil {
		return "", fmt.Errorf("%w: %v", chain.ErrNotSubmitted, err)
	}
	return g.transact(ctx, opts, "transferCredit", creditID, common.HexToAddress(toAddress))
}

func (g *Gateway) RetireCredit(ctx context.Context, creditID, holderAddress string) (string, error) {
	if !common.IsHexAddress(holderAddress) {
		return "", fmt.Errorf("%w: invalid holder address %q", chain.ErrNotSubmitted, holderAddress)
	}
	opts, err := g.custody.Transactor(ctx, common.HexToAddress(holderAddress))
	if err != nil {
		return "", fmt.Errorf("%w: %v", chain.ErrNotSubmitted, err)
	}
	return g.transact(ctx, opts, "retireCredit", creditID)
}

func (g *Gateway) Credit(ctx context.Context, creditID string) (model.OnChainCredit, error) {
	var out []interface{}
	if err := g.contract.Call(&bind.CallOpts{Context: ctx}, &out, "getCredit", creditID); err != nil {
		return model.OnChainCredit{}, fmt.Errorf("call getCredit %s: %w", creditID, err)
	}
	if len(out) != 1 {
		return model.OnChainCredit{}, fmt.Errorf("getCredit returned %d values", len(out))
	}
	rec := *abi.ConvertType(out[0], new(creditRecord)).(*creditRecord)
	if rec.Holder == (common.Address{}) {
		return model.OnChainCredit{}, fmt.Errorf("%s: %w", creditID, chain.ErrCreditNotFound)
	}
	return toModel(rec), nil
}

func (g *Gateway) AllCredits(ctx context.Context) ([]model.OnChainCredit, error) {
	var out []interface{}
	if err := g.contract.Call(&bind.CallOpts{Context: ctx}, &out, "getAllCredits"); err != nil {
		return nil, fmt.Errorf("call getAllCredits: %w", err)
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("getAllCredits returned %d values", len(out))
	}
	records := *abi.ConvertType(out[0], new([]creditRecord)).(*[]creditRecord)

	credits := make([]model.OnChainCredit, 0, len(records))
	for _, rec := range records {
		credits = append(credits, toModel(rec))
	}
	return credits, nil
}

// FundWallet sends wei from the operator account to address.
func (g *Gateway) FundWallet(ctx context.Context, address string, wei *big.Int) (string, error) {
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("%w: invalid wallet address %q", chain.ErrNotSubmitted, address)
	}
	to := common.HexToAddress(address)

	lock := g.senderLock(g.operator.From)
	lock.Lock()
	signed, err := func() (*types.Transaction, error) {
		nonce, err := g.backend.PendingNonceAt(ctx, g.operator.From)
		if err != nil {
			return nil, fmt.Errorf("pending nonce: %w", err)
		}
		gasPrice, err := g.backend.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("suggest gas price: %w", err)
		}
		tx := types.NewTx(&types.LegacyTx{
			Nonce:    nonce,
			To:       &to,
			Value:    wei,
			Gas:      transferGasLimit,
			GasPrice: gasPrice,
		})
		return g.operator.Signer(g.operator.From, tx)
	}()
	if err != nil {
		lock.Unlock()
		return "", fmt.Errorf("%w: fund %s: %v", chain.ErrNotSubmitted, address, err)
	}
	err = g.backend.SendTransaction(ctx, signed)
	lock.Unlock()

	return g.confirm(ctx, signed, "fund wallet", err)
}

// TransactionStatus reports whether a previously sent transaction is mined,
// still waiting in the pool, or unknown to the node.
func (g *Gateway) TransactionStatus(ctx context.Context, txHash string) (chain.TxStatus, error) {
	if !isTxHash(txHash) {
		return "", fmt.Errorf("invalid transaction hash %q", txHash)
	}
	hash := common.HexToHash(txHash)

	receipt, err := g.backend.TransactionReceipt(ctx, hash)
	switch {
	case err == nil:
		if receipt.Status == types.ReceiptStatusSuccessful {
			return chain.TxSucceeded, nil
		}
		return chain.TxReverted, nil
	case !errors.Is(err, ethereum.NotFound):
		return "", fmt.Errorf("read receipt %s: %w", txHash, err)
	}

	_, _, err = g.backend.TransactionByHash(ctx, hash)
	switch {
	case errors.Is(err, ethereum.NotFound):
		return chain.TxNotFound, nil
	case err != nil:
		return "", fmt.Errorf("read transaction %s: %w", txHash, err)
	}
	// Known but without a receipt: pooled, or mined and not yet indexed.
	return chain.TxPending, nil
}

func isTxHash(s string) bool {
	b, err := hexutil.Decode(s)
	return err == nil && len(b) == common.HashLength
}

// transact builds and signs a contract call without sending it, then sends
// it under the sender's lock so concurrent calls never reuse a nonce.
func (g *Gateway) transact(ctx context.Context, opts *bind.TransactOpts, method string, params ...interface{}) (string, error) {
	lock := g.senderLock(opts.From)
	lock.Lock()

	call := *opts
	call.Context = ctx
	call.NoSend = true
	tx, err := g.contract.Transact(&call, method, params...)
	if err != nil {
		lock.Unlock()
		return "", fmt.Errorf("%w: build %s: %v", chain.ErrNotSubmitted, method, err)
	}
	err = g.backend.SendTransaction(ctx, tx)
	lock.Unlock()

	return g.confirm(ctx, tx, method, err)
}

func (g *Gateway) confirm(ctx context.Context, tx *types.Transaction, what string, sendErr error) (string, error) {
	hash := tx.Hash().Hex()
	if sendErr != nil {
		return hash, fmt.Errorf("send %s %s: %w", what, hash, sendErr)
	}
	receipt, err := bind.WaitMined(ctx, g.backend, tx)
	if err != nil {
		return hash, fmt.Errorf("wait for %s %s: %w", what, hash, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return hash, fmt.Errorf("%s %s: %w", what, hash, chain.ErrReverted)
	}
	return hash, nil
}

func (g *Gateway) senderLock(from common.Address) *sync.Mutex {
	g.mu.Lock()
	defer g.mu.Unlock()

	lock, ok := g.senders[from]
	if !ok {
		lock = &sync.Mutex{}
		g.senders[from] = lock
	}
	return lock
}

func toModel(rec creditRecord) model.OnChainCredit {
	credit := model.OnChainCredit{
		ID:      rec.Id,
		Retired: rec.Retired,
		Issuer:  rec.Issuer.Hex(),
		Holder:  rec.Holder.Hex(),
	}
	if amount, err := safe.Int64(rec.Amount); err == nil {
		credit.Amount = amount
	}
	if ts, err := safe.Int64(rec.Timestamp); err == nil {
		credit.Timestamp = time.Unix(ts, 0).UTC()
	}
	return credit
}
