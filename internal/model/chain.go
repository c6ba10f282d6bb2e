package model

import "time"

// ChainOperationStatus tracks an outbox entry through the dual write.
type ChainOperationStatus string

var (
	// ChainOperationInFlight is recorded before the chain call; the outcome may be unknown.
	ChainOperationInFlight ChainOperationStatus = "in_flight"
	// ChainOperationConfirmed means the chain effect landed but the local commit has not.
	ChainOperationConfirmed ChainOperationStatus = "confirmed"
	// ChainOperationCommitted means both sides agree.
	ChainOperationCommitted ChainOperationStatus = "committed"
	// ChainOperationFailed means the chain effect is known to be absent.
	ChainOperationFailed ChainOperationStatus = "failed"
)

// ChainOperation is a durable record of an on-chain action taken for a request.
type ChainOperation struct {
	ID            string
	Kind          RequestKind
	RequestID     string
	CreditID      string
	ActorID       string
	TargetAddress string
	Amount        int64
	Status        ChainOperationStatus
	TxHash        string
	LastError     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OnChainCredit mirrors a credit record held by the contract.
type OnChainCredit struct {
	ID        string    `json:"id"`
	Amount    int64     `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
	Retired   bool      `json:"retired"`
	Issuer    string    `json:"issuer"`
	Holder    string    `json:"holder"`
}

// CreditHolding is the projected current custody of a credit.
type CreditHolding struct {
	CreditID   string    `json:"creditId"`
	IssuerID   string    `json:"issuerId"`
	HolderID   string    `json:"holderId"`
	Amount     int64     `json:"amount"`
	Retired    bool      `json:"retired"`
	LastTxHash string    `json:"lastTxHash,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
