package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/manoja-HA/nexus-banking-platform/internal/core/domain"
)

// TransferReader defines read operations for transfer data.
type TransferReader interface {
	// FindTransferByID retrieves a specific transfer by its unique identifier.
	FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error)

	// FindTransferByIdempotencyKey retrieves the transfer recorded for a key.
	// Returns (nil, nil) when the key has never been seen.
	FindTransferByIdempotencyKey(ctx context.Context, key string) (*domain.Transfer, error)

	// ListTransfersByAccount retrieves transfers where the account is either
	// source or destination, newest first, with limit/offset pagination.
	ListTransfersByAccount(ctx context.Context, accountID string, limit, offset int) ([]domain.Transfer, error)
}

// TransferTransactionSupport defines the write operations that run inside the
// transfer workflow's database transaction.
type TransferTransactionSupport interface {
	// CreateTransferInTx inserts a transfer row within the given transaction
	// and returns the persisted transfer, with its ID generated if absent.
	CreateTransferInTx(ctx context.Context, tx pgx.Tx, transfer domain.Transfer) (*domain.Transfer, error)

	// UpdateTransferStatusInTx writes a new status for the transfer within
	// the given transaction.
	UpdateTransferStatusInTx(ctx context.Context, tx pgx.Tx, transferID string, status domain.TransferStatus) error
}

// TransferRepository combines all transfer-related repository interfaces.
type TransferRepository interface {
	TransferReader
	TransferTransactionSupport
}

// TransferRepositoryWithTx extends TransferRepository with transaction control.
type TransferRepositoryWithTx interface {
	TransferRepository
	TransactionManager
}
