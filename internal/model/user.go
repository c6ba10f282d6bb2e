// Package model defines domain models for the hydrogen credit ledger.
package model

import "time"

// Role is the marketplace role of a user.
type Role string

var (
	// RolePlant issues credits for hydrogen it produced.
	RolePlant Role = "Plant"
	// RoleIndustry buys and retires credits.
	RoleIndustry Role = "Industry"
	// RoleAuditor approves issuance and retirement.
	RoleAuditor Role = "Auditor"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RolePlant, RoleIndustry, RoleAuditor:
		return true
	}
	return false
}

// HoldsWallet reports whether users of this role own a custodial wallet.
func (r Role) HoldsWallet() bool {
	return r == RolePlant || r == RoleIndustry
}

// User is a registered marketplace participant. Wallet key material is only
// reachable through the store's key lookup.
type User struct {
	ID                  string    `json:"id"`
	Username            string    `json:"username"`
	Role                Role      `json:"role"`
	CompanyName         string    `json:"companyName"`
	GovernmentLicenseID string    `json:"governmentLicenseId"`
	DID                 string    `json:"did,omitempty"`
	WalletAddress       string    `json:"walletAddress,omitempty"`
	AssignedAuditorID   string    `json:"assignedAuditorId,omitempty"`
	Lifetime            Lifetime  `json:"lifetime"`
	CreatedAt           time.Time `json:"createdAt"`
}

// Lifetime holds the monotonically increasing credit counters of a user.
type Lifetime struct {
	Generated   int64 `json:"generated"`
	Transferred int64 `json:"transferred"`
	Retired     int64 `json:"retired"`
	Bought      int64 `json:"bought"`
}

// NewUser carries everything needed to persist a freshly registered user.
type NewUser struct {
	User
	WalletPrivateKey string
}
