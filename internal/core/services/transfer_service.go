package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/manoja-HA/nexus-banking-platform/internal/apperrors"
	"github.com/manoja-HA/nexus-banking-platform/internal/core/domain"
	portsrepo "github.com/manoja-HA/nexus-banking-platform/internal/core/ports/repositories"
	portssvc "github.com/manoja-HA/nexus-banking-platform/internal/core/ports/services"
	"github.com/manoja-HA/nexus-banking-platform/internal/dto"
	"github.com/manoja-HA/nexus-banking-platform/internal/middleware"
)

const (
	defaultHistoryLimit  = 100
	maxHistoryLimit      = 1000
	defaultHistoryOffset = 0
)

// TransferService implements the fund-transfer workflow. Each transfer runs
// in a single database transaction; the involved account rows are locked with
// SELECT ... FOR UPDATE, so concurrent transfers touching the same account
// serialize at the database.
type TransferService struct {
	transferRepo   portsrepo.TransferRepositoryWithTx
	accountRepo    portsrepo.AccountRepository
	balanceManager *BalanceManager
}

// NewTransferService creates a new TransferService with its dependencies.
func NewTransferService(
	transferRepo portsrepo.TransferRepositoryWithTx,
	accountRepo portsrepo.AccountRepository,
	balanceManager *BalanceManager,
) *TransferService {
	return &TransferService{
		transferRepo:   transferRepo,
		accountRepo:    accountRepo,
		balanceManager: balanceManager,
	}
}

var _ portssvc.TransferSvcFacade = (*TransferService)(nil)

// CreateTransfer validates the request, short-circuits on a known idempotency
// key, and otherwise moves the funds inside one database transaction.
func (s *TransferService) CreateTransfer(ctx context.Context, req dto.CreateTransferRequest) (*domain.Transfer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	transferType := req.TransferType
	if transferType == "" {
		transferType = domain.TransferStandard
	}
	isInitialDeposit := transferType == domain.TransferInitialDeposit

	if !req.Amount.IsPositive() {
		return nil, apperrors.New(apperrors.KindInvalidAmount, "Transfer amount must be positive")
	}
	if req.SourceAccountID == req.DestinationAccountID && !isInitialDeposit {
		return nil, apperrors.New(apperrors.KindSameAccount, "Source and destination accounts cannot be the same")
	}

	idempotencyKey := req.IdempotencyKey
	if idempotencyKey == "" {
		// Without a client key every request is a distinct transfer.
		idempotencyKey = uuid.NewString()
	} else {
		existing, err := s.transferRepo.FindTransferByIdempotencyKey(ctx, idempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			// TODO: a PENDING row here means a prior attempt crashed between
			// insert and completion; add a reconciliation job that cancels
			// stale PENDING transfers instead of replaying them verbatim.
			logger.Info("idempotency key seen before, returning recorded transfer",
				"transfer_id", existing.TransferID, "status", string(existing.Status))
			return existing, nil
		}
	}

	tx, err := s.transferRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.transferRepo.Rollback(ctx, tx)

	transfer, err := s.executeTransfer(ctx, tx, req, transferType, idempotencyKey)
	if err != nil {
		return nil, err
	}

	if err := s.transferRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("transfer completed",
		"transfer_id", transfer.TransferID,
		"source_account_id", transfer.SourceAccountID,
		"destination_account_id", transfer.DestinationAccountID,
		"amount", transfer.Amount.String(),
		"transfer_type", string(transfer.TransferType))
	return transfer, nil
}

// executeTransfer does the in-transaction work: lock accounts, record the
// transfer, move the funds, mark it completed. Locks are always taken source
// first, then destination, so concurrent transfers cannot deadlock on each
// other.
func (s *TransferService) executeTransfer(ctx context.Context, tx pgx.Tx, req dto.CreateTransferRequest, transferType domain.TransferType, idempotencyKey string) (*domain.Transfer, error) {
	isInitialDeposit := transferType == domain.TransferInitialDeposit

	// Load and lock both rows before any validation so a missing account
	// always surfaces as not-found, regardless of the other account's status.
	source, err := s.accountRepo.FindAccountByIDForUpdate(ctx, tx, req.SourceAccountID)
	if err != nil {
		return nil, err
	}
	destination := source
	if req.DestinationAccountID != req.SourceAccountID {
		destination, err = s.accountRepo.FindAccountByIDForUpdate(ctx, tx, req.DestinationAccountID)
		if err != nil {
			return nil, err
		}
	}

	if source.Status != domain.AccountActive {
		return nil, apperrors.New(apperrors.KindAccountNotActive,
			fmt.Sprintf("Account with ID:%s is not active", source.AccountID))
	}
	if destination.Status != domain.AccountActive {
		return nil, apperrors.New(apperrors.KindAccountNotActive,
			fmt.Sprintf("Account with ID:%s is not active", destination.AccountID))
	}

	if !isInitialDeposit && source.CurrentBalance.LessThan(req.Amount) {
		return nil, apperrors.New(apperrors.KindInsufficientFunds,
			fmt.Sprintf("Insufficient funds: available %s, requested %s", source.CurrentBalance.String(), req.Amount.String()))
	}

	transfer, err := s.transferRepo.CreateTransferInTx(ctx, tx, domain.Transfer{
		SourceAccountID:      req.SourceAccountID,
		DestinationAccountID: req.DestinationAccountID,
		Amount:               req.Amount,
		IdempotencyKey:       idempotencyKey,
		Description:          req.Description,
		TransferType:         transferType,
		Status:               domain.TransferPending,
		IsInitialDeposit:     isInitialDeposit,
	})
	if err != nil {
		return nil, err
	}

	// An initial deposit credits the account from outside the ledger, so
	// there is no debit leg.
	if !isInitialDeposit {
		if err := s.balanceManager.Debit(ctx, tx, source, req.Amount); err != nil {
			return nil, err
		}
	}
	if err := s.balanceManager.Credit(ctx, tx, destination, req.Amount); err != nil {
		return nil, err
	}

	if err := s.transferRepo.UpdateTransferStatusInTx(ctx, tx, transfer.TransferID, domain.TransferCompleted); err != nil {
		return nil, err
	}
	transfer.Status = domain.TransferCompleted
	return transfer, nil
}

// GetTransferByID retrieves a single transfer.
func (s *TransferService) GetTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error) {
	return s.transferRepo.FindTransferByID(ctx, transferID)
}

// GetAccountTransferHistory retrieves transfers involving the account, newest
// first. A non-positive limit falls back to the default page size.
func (s *TransferService) GetAccountTransferHistory(ctx context.Context, accountID string, limit, offset int) ([]domain.Transfer, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = defaultHistoryOffset
	}

	return s.transferRepo.ListTransfersByAccount(ctx, accountID, limit, offset)
}
