package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/apperrors"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	portsrepo "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/repositories"
	portssvc "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/services"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/dto"
	"github.com/shopspring/decimal"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo     portsrepo.AccountRepositoryFacade
	accountTypeRepo portsrepo.AccountTypeRepositoryFacade
}

// NewAccountService creates the service managing accounts and account types.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, accountTypeRepo portsrepo.AccountTypeRepositoryFacade, permissions portssvc.PermissionCheckerSvc) portssvc.AccountSvcFacade {
	return &accountService{
		BaseService:     BaseService{Permissions: permissions},
		accountRepo:     accountRepo,
		accountTypeRepo: accountTypeRepo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount creates a zero balance account in the default currency of its type.
func (s *accountService) CreateAccount(ctx context.Context, accountTypeID int64, name string, userID string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}

	accountType, err := s.accountTypeRepo.FindAccountTypeByID(ctx, accountTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, fmt.Errorf("%w: account type %d does not exist", apperrors.ErrValidation, accountTypeID)
		}
		s.LogError(ctx, err, "Failed to find account type", slog.Int64("account_type_id", accountTypeID))
		return 0, err
	}

	account := domain.Account{
		AccountTypeID: accountType.ID,
		Name:          name,
		CurrencyCode:  accountType.DefaultCurrencyCode,
		Balance:       decimal.Zero,
	}
	account.Stamp(userID, time.Now())

	id, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("name", name),
			slog.Int64("account_type_id", accountTypeID))
		return 0, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.Int64("account_id", id),
		slog.Int64("account_type_id", accountTypeID))
	return id, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.Int64("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) CreateAccountType(ctx context.Context, req dto.CreateAccountTypeRequest, userID string) (*domain.AccountType, error) {
	if err := s.RequirePermission(ctx, userID, domain.PermissionManageEntityTypes); err != nil {
		return nil, err
	}

	accountType := domain.AccountType{
		Name:                strings.TrimSpace(req.Name),
		DefaultCurrencyCode: strings.ToUpper(req.DefaultCurrencyCode),
	}
	accountType.Stamp(userID, time.Now())

	id, err := s.accountTypeRepo.SaveAccountType(ctx, accountType)
	if err != nil {
		s.LogError(ctx, err, "Failed to save account type", slog.String("name", accountType.Name))
		return nil, err
	}
	accountType.ID = id
	return &accountType, nil
}
