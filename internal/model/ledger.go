package model

import "time"

// TransactionType tags the origin of a ledger transaction entry.
type TransactionType string

var (
	TransactionIssue       TransactionType = "ISSUE"
	TransactionTransferIn  TransactionType = "TRANSFER_IN"
	TransactionTransferOut TransactionType = "TRANSFER_OUT"
)

// StatusTransferredIssued relabels an issued credit that has left its issuer's custody.
const StatusTransferredIssued = "TRANSFERRED_ISSUED"

// LedgerSummary aggregates a user's credit buckets. Lifetime counters are
// role specific and omitted for the other role.
type LedgerSummary struct {
	TotalAmount         int64  `json:"totalAmount"`
	ActiveAmount        int64  `json:"activeAmount"`
	PendingAmount       int64  `json:"pendingAmount"`
	RetiredAmount       int64  `json:"retiredAmount"`
	LifetimeGenerated   *int64 `json:"lifetimeGenerated,omitempty"`
	LifetimeTransferred *int64 `json:"lifetimeTransferred,omitempty"`
	LifetimeRetired     *int64 `json:"lifetimeRetired,omitempty"`
	LifetimeBought      *int64 `json:"lifetimeBought,omitempty"`
}

// CreditBalance is an active credit held by a user.
type CreditBalance struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
}

// LedgerTransaction is one entry of the flattened transaction history.
type LedgerTransaction struct {
	ID        string          `json:"id"`
	Type      TransactionType `json:"type"`
	CreditID  string          `json:"creditId"`
	Amount    int64           `json:"amount"`
	Status    string          `json:"status"`
	Anomaly   bool            `json:"anomaly"`
	TxnHash   string          `json:"txnHash,omitempty"`
	From      string          `json:"from,omitempty"`
	To        string          `json:"to,omitempty"`
	ActionBy  string          `json:"actionBy,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// UserLedger is the reconciled view of a user's credits.
type UserLedger struct {
	Username      string              `json:"username"`
	Role          Role                `json:"role"`
	CompanyName   string              `json:"companyName"`
	WalletAddress string              `json:"walletAddress"`
	Summary       LedgerSummary       `json:"summary"`
	Credits       []CreditBalance     `json:"credits"`
	Transactions  []LedgerTransaction `json:"transactions"`
}

// ChainLedger is the ledger view built from on-chain state alone.
type ChainLedger struct {
	Username      string          `json:"username"`
	WalletAddress string          `json:"walletAddress"`
	TotalAmount   int64           `json:"totalAmount"`
	ActiveAmount  int64           `json:"activeAmount"`
	RetiredAmount int64           `json:"retiredAmount"`
	Credits       []OnChainCredit `json:"credits"`
}
