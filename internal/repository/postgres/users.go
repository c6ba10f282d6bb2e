package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
)

const userColumns = `
	id,
	username,
	role,
	company_name,
	government_license_id,
	did,
	COALESCE(wallet_address, ''),
	COALESCE(assigned_auditor_id::text, ''),
	lifetime_generated,
	lifetime_transferred,
	lifetime_retired,
	lifetime_bought,
	created_at`

func scanUser(row scanner) (model.User, error) {
	var (
		u    model.User
		role string
	)
	err := row.Scan(
		&u.ID,
		&u.Username,
		&role,
		&u.CompanyName,
		&u.GovernmentLicenseID,
		&u.DID,
		&u.WalletAddress,
		&u.AssignedAuditorID,
		&u.Lifetime.Generated,
		&u.Lifetime.Transferred,
		&u.Lifetime.Retired,
		&u.Lifetime.Bought,
		&u.CreatedAt,
	)
	u.Role = model.Role(role)
	return u, err
}

// CreateUser inserts a user together with its custodial wallet key.
func (r *Repository) CreateUser(ctx context.Context, nu model.NewUser) (_ model.User, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("create_user", err, start)
	}()

	const query = `
INSERT INTO users (
	id,
	username,
	role,
	company_name,
	government_license_id,
	did,
	wallet_address,
	wallet_private_key,
	assigned_auditor_id
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING created_at`

	u := nu.User
	err = r.db.QueryRowContext(ctx, query,
		u.ID,
		u.Username,
		string(u.Role),
		u.CompanyName,
		u.GovernmentLicenseID,
		u.DID,
		nullString(u.WalletAddress),
		nullString(nu.WalletPrivateKey),
		nullString(u.AssignedAuditorID),
	).Scan(&u.CreatedAt)
	if err != nil {
		err = mapError(err)
		return model.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (r *Repository) UserByID(ctx context.Context, id string) (_ model.User, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("user_by_id", err, start)
	}()

	u, err := r.userWhere(ctx, "id = $1", id)
	if err != nil {
		return model.User{}, fmt.Errorf("select user %s: %w", id, err)
	}
	return u, nil
}

func (r *Repository) UserByUsername(ctx context.Context, username string) (_ model.User, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("user_by_username", err, start)
	}()

	u, err := r.userWhere(ctx, "username = $1", username)
	if err != nil {
		return model.User{}, fmt.Errorf("select user %q: %w", username, err)
	}
	return u, nil
}

// UserByWalletAddress matches addresses case-insensitively.
func (r *Repository) UserByWalletAddress(ctx context.Context, address string) (_ model.User, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("user_by_wallet_address", err, start)
	}()

	u, err := r.userWhere(ctx, "lower(wallet_address) = lower($1)", address)
	if err != nil {
		return model.User{}, fmt.Errorf("select user by wallet %s: %w", address, err)
	}
	return u, nil
}

func (r *Repository) userWhere(ctx context.Context, predicate string, arg any) (model.User, error) {
	query := "SELECT " + userColumns + "\nFROM users\nWHERE " + predicate
	u, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		return model.User{}, mapError(err)
	}
	return u, nil
}

// WalletKey returns the custodial private key of the wallet at address.
func (r *Repository) WalletKey(ctx context.Context, address string) (_ string, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("wallet_key", err, start)
	}()

	const query = `
SELECT wallet_private_key
FROM users
WHERE lower(wallet_address) = lower($1)`

	var key sql.NullString
	if err = r.db.QueryRowContext(ctx, query, address).Scan(&key); err != nil {
		err = mapError(err)
		return "", fmt.Errorf("select wallet key %s: %w", address, err)
	}
	if !key.Valid || key.String == "" {
		err = fmt.Errorf("wallet %s has no custodial key", address)
		return "", err
	}
	return key.String, nil
}
