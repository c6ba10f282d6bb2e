package model

import "time"

// LifecycleAction is what happened to a request.
type LifecycleAction string

var (
	ActionCreated      LifecycleAction = "created"
	ActionAccepted     LifecycleAction = "accepted"
	ActionRejected     LifecycleAction = "rejected"
	ActionCommitFailed LifecycleAction = "commit_failed"
	ActionReplayed     LifecycleAction = "replayed"
)

// LifecycleEvent is an append-only audit record of a request transition.
type LifecycleEvent struct {
	ID             string          `json:"id"`
	Kind           RequestKind     `json:"kind"`
	Action         LifecycleAction `json:"action"`
	RequestID      string          `json:"requestId"`
	CreditID       string          `json:"creditId"`
	ActorID        string          `json:"actorId"`
	Amount         int64           `json:"amount"`
	Anomaly        bool            `json:"anomaly"`
	AnomalyReasons []string        `json:"anomalyReasons,omitempty"`
	TxHash         string          `json:"txHash,omitempty"`
	OccurredAt     time.Time       `json:"occurredAt"`
}
