package model

import "time"

// RequestKind names one of the three lifecycle sub-machines.
type RequestKind string

var (
	KindIssue  RequestKind = "issue"
	KindBuy    RequestKind = "buy"
	KindRetire RequestKind = "retire"
)

// IssueStatus is the status of a credit issue request.
type IssueStatus string

var (
	IssuePending  IssueStatus = "PENDING"
	IssueIssued   IssueStatus = "ISSUED"
	IssueRejected IssueStatus = "REJECTED"
)

// BuyStatus is the status of a credit buy request.
type BuyStatus string

var (
	BuyPending     BuyStatus = "PENDING"
	BuyTransferred BuyStatus = "TRANSFERRED"
	BuyRejected    BuyStatus = "REJECTED"
)

// RetireStatus is the status of a credit retire request.
type RetireStatus string

var (
	RetirePending  RetireStatus = "PENDING"
	RetireRetired  RetireStatus = "RETIRED"
	RetireRejected RetireStatus = "REJECTED"
)

// IssueRequest is a Plant's claim for newly produced credits. Its ID doubles
// as the credit id once issued.
type IssueRequest struct {
	ID               string      `json:"id"`
	UserID           string      `json:"userId"`
	Username         string      `json:"username,omitempty"`
	Amount           int64       `json:"amount"`
	Metadata         string      `json:"metadata,omitempty"`
	Anomaly          bool        `json:"anomaly"`
	AnomalyReasons   []string    `json:"anomalyReasons,omitempty"`
	Status           IssueStatus `json:"status"`
	TxnHash          string      `json:"txnHash,omitempty"`
	ActionByID       string      `json:"actionById,omitempty"`
	ActionByUsername string      `json:"actionBy,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// BuyRequest is an Industry's request to acquire an issued credit.
type BuyRequest struct {
	ID             string    `json:"id"`
	CreditID       string    `json:"creditId"`
	FromID         string    `json:"fromId"`
	FromUsername   string    `json:"from,omitempty"`
	ToID           string    `json:"toId"`
	ToUsername     string    `json:"to,omitempty"`
	Amount         int64     `json:"amount"`
	Metadata       string    `json:"metadata,omitempty"`
	Anomaly        bool      `json:"anomaly"`
	AnomalyReasons []string  `json:"anomalyReasons,omitempty"`
	Status         BuyStatus `json:"status"`
	TxnHash        string    `json:"txnHash,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// RetireRequest declares that a credit was consumed. At most one exists per credit.
type RetireRequest struct {
	ID               string       `json:"id"`
	CreditID         string       `json:"creditId"`
	UserID           string       `json:"userId"`
	Username         string       `json:"username,omitempty"`
	Amount           int64        `json:"amount"`
	Metadata         string       `json:"metadata,omitempty"`
	Anomaly          bool         `json:"anomaly"`
	AnomalyReasons   []string     `json:"anomalyReasons,omitempty"`
	Status           RetireStatus `json:"status"`
	TxnHash          string       `json:"txnHash,omitempty"`
	ActionByID       string       `json:"actionById,omitempty"`
	ActionByUsername string       `json:"actionBy,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

// Commit is the local half of an accepted transition, applied after the
// chain confirmed the matching effect.
type Commit struct {
	OperationID string
	RequestID   string
	ActorID     string
	TxHash      string
}
