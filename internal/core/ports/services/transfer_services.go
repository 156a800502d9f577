package services

import (
	"context"

	"github.com/manoja-HA/nexus-banking-platform/internal/core/domain"
	"github.com/manoja-HA/nexus-banking-platform/internal/dto"
)

// TransferSvcFacade defines the fund-transfer operations exposed to handlers.
type TransferSvcFacade interface {
	// CreateTransfer runs the transfer workflow: validation, idempotency
	// check, then the locked dual-balance update in one database transaction.
	CreateTransfer(ctx context.Context, req dto.CreateTransferRequest) (*domain.Transfer, error)

	// GetTransferByID retrieves a specific transfer.
	GetTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error)

	// GetAccountTransferHistory retrieves transfers involving the account,
	// newest first.
	GetAccountTransferHistory(ctx context.Context, accountID string, limit, offset int) ([]domain.Transfer, error)
}
