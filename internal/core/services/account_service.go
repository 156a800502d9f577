package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/manoja-HA/nexus-banking-platform/internal/apperrors"
	"github.com/manoja-HA/nexus-banking-platform/internal/core/domain"
	portsrepo "github.com/manoja-HA/nexus-banking-platform/internal/core/ports/repositories"
	portssvc "github.com/manoja-HA/nexus-banking-platform/internal/core/ports/services"
	"github.com/manoja-HA/nexus-banking-platform/internal/dto"
	"github.com/manoja-HA/nexus-banking-platform/internal/middleware"
	"github.com/manoja-HA/nexus-banking-platform/internal/utils"
	"github.com/shopspring/decimal"
)

// AccountService implements the account lifecycle operations. An optional
// initial deposit is funded through the transfer workflow as an
// INITIAL_DEPOSIT self-transfer, so the deposit shows up in the account's
// transfer history like any other movement.
type AccountService struct {
	accountRepo     portsrepo.AccountRepository
	customerRepo    portsrepo.CustomerRepository
	transferService portssvc.TransferSvcFacade
}

// NewAccountService creates a new AccountService with its dependencies.
func NewAccountService(
	accountRepo portsrepo.AccountRepository,
	customerRepo portsrepo.CustomerRepository,
	transferService portssvc.TransferSvcFacade,
) *AccountService {
	return &AccountService{
		accountRepo:     accountRepo,
		customerRepo:    customerRepo,
		transferService: transferService,
	}
}

var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

// CreateAccount opens a new account for an existing customer. The account
// starts ACTIVE with a zero balance; a positive initial deposit is then
// applied through the transfer workflow.
func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.InitialDeposit.IsNegative() {
		return nil, apperrors.New(apperrors.KindNegativeDeposit, "Initial deposit cannot be negative")
	}

	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		CustomerID:     req.CustomerID,
		AccountNumber:  utils.GenerateAccountNumber(),
		CurrentBalance: decimal.Zero,
		Version:        1,
		Status:         domain.AccountActive,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, err
	}

	logger.Info("account created",
		"account_id", account.AccountID,
		"account_number", account.AccountNumber,
		"customer_id", account.CustomerID)

	if req.InitialDeposit.IsPositive() {
		_, err := s.transferService.CreateTransfer(ctx, dto.CreateTransferRequest{
			SourceAccountID:      account.AccountID,
			DestinationAccountID: account.AccountID,
			Amount:               req.InitialDeposit,
			Description:          "Initial deposit",
			TransferType:         domain.TransferInitialDeposit,
		})
		if err != nil {
			return nil, err
		}
		// Re-read so the response carries the funded balance.
		return s.accountRepo.FindAccountByID(ctx, account.AccountID)
	}

	return &account, nil
}

// GetAccountByID retrieves a specific account with its current balance.
func (s *AccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// ListAccounts retrieves all accounts.
func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx)
}
