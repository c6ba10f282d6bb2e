// Package registry onboards marketplace users with a custodial wallet.
package registry

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goodnatureofminers/h2credit-ledger/internal/apperr"
	"github.com/goodnatureofminers/h2credit-ledger/internal/chain/evm"
	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
	"github.com/goodnatureofminers/h2credit-ledger/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 50
)

// Registration is what a prospective Plant or Industry user submits.
type Registration struct {
	Username            string     `json:"username"`
	Role                model.Role `json:"role"`
	CompanyName         string     `json:"companyName"`
	GovernmentLicenseID string     `json:"governmentLicenseId"`
	DID                 string     `json:"did"`
	AuditorUsername     string     `json:"auditorUsername"`
}

// Result reports the created user and whether its wallet received gas money.
type Result struct {
	User         model.User `json:"user"`
	WalletFunded bool       `json:"walletFunded"`
}

// Service registers users and serves their profiles.
type Service struct {
	store        Store
	funder       Funder
	logger       *zap.Logger
	fundingWei   *big.Int
	fundTimeout  time.Duration
	generateKeys func() (evm.Wallet, error)
}

// NewService builds the registry. A nil or non-positive fundingWei disables wallet funding.
func NewService(store Store, funder Funder, fundingWei *big.Int, fundTimeout time.Duration, logger *zap.Logger) (*Service, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	if funder == nil {
		return nil, errors.New("funder is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if fundTimeout <= 0 {
		fundTimeout = time.Minute
	}
	return &Service{
		store:        store,
		funder:       funder,
		logger:       logger.With(zap.String("component", "registry")),
		fundingWei:   fundingWei,
		fundTimeout:  fundTimeout,
		generateKeys: evm.GenerateWallet,
	}, nil
}

// Register validates the submission, creates the user with a fresh custodial
// wallet and funds it. A funding failure does not undo the registration.
func (s *Service) Register(ctx context.Context, reg Registration) (Result, error) {
	reg.Username = strings.TrimSpace(reg.Username)
	if err := validate(reg); err != nil {
		return Result{}, err
	}

	auditor, err := s.store.UserByUsername(ctx, strings.TrimSpace(reg.AuditorUsername))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Result{}, apperr.NotFound("auditor not found")
		}
		return Result{}, apperr.Internal(err, "failed to load auditor")
	}
	if auditor.Role != model.RoleAuditor {
		return Result{}, apperr.Validation("%s is not an auditor", auditor.Username)
	}

	wallet, err := s.generateKeys()
	if err != nil {
		return Result{}, apperr.Internal(err, "failed to generate wallet")
	}

	user, err := s.store.CreateUser(ctx, model.NewUser{
		User: model.User{
			ID:                  uuid.NewString(),
			Username:            reg.Username,
			Role:                reg.Role,
			CompanyName:         strings.TrimSpace(reg.CompanyName),
			GovernmentLicenseID: strings.TrimSpace(reg.GovernmentLicenseID),
			DID:                 strings.TrimSpace(reg.DID),
			WalletAddress:       wallet.Address,
			AssignedAuditorID:   auditor.ID,
		},
		WalletPrivateKey: wallet.PrivateKey,
	})
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return Result{}, apperr.Conflict("username already taken")
		}
		return Result{}, apperr.Internal(err, "failed to create user")
	}

	return Result{User: user, WalletFunded: s.fund(ctx, user)}, nil
}

func (s *Service) fund(ctx context.Context, user model.User) bool {
	if s.fundingWei == nil || s.fundingWei.Sign() <= 0 {
		return false
	}
	fundCtx, cancel := context.WithTimeout(ctx, s.fundTimeout)
	defer cancel()

	txHash, err := s.funder.FundWallet(fundCtx, user.WalletAddress, s.fundingWei)
	if err != nil {
		s.logger.Warn("failed to fund wallet",
			zap.String("user_id", user.ID),
			zap.String("wallet", user.WalletAddress),
			zap.String("tx_hash", txHash),
			zap.Error(err),
		)
		return false
	}
	s.logger.Info("wallet funded",
		zap.String("user_id", user.ID),
		zap.String("wallet", user.WalletAddress),
		zap.String("tx_hash", txHash),
	)
	return true
}

// Profile returns the user behind an authenticated id.
func (s *Service) Profile(ctx context.Context, userID string) (model.User, error) {
	user, err := s.store.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, apperr.NotFound("user not found")
		}
		return model.User{}, apperr.Internal(err, "failed to load user")
	}
	return user, nil
}

func validate(reg Registration) error {
	if n := utf8.RuneCountInString(reg.Username); n < minUsernameLength || n > maxUsernameLength {
		return apperr.Validation("username must be between %d and %d characters", minUsernameLength, maxUsernameLength)
	}
	switch reg.Role {
	case model.RolePlant, model.RoleIndustry:
	case model.RoleAuditor:
		return apperr.Validation("auditor accounts cannot be self-registered")
	default:
		return apperr.Validation("role must be Plant or Industry")
	}
	if strings.TrimSpace(reg.CompanyName) == "" {
		return apperr.Validation("company name is required")
	}
	if strings.TrimSpace(reg.GovernmentLicenseID) == "" {
		return apperr.Validation("government license id is required")
	}
	if strings.TrimSpace(reg.AuditorUsername) == "" {
		return apperr.Validation("auditor username is required")
	}
	return nil
}
