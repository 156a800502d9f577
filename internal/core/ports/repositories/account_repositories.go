package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/manoja-HA/nexus-banking-platform/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountTransactionSupport defines the operations that participate in the
// transfer workflow's database transaction.
type AccountTransactionSupport interface {
	// FindAccountByIDForUpdate selects an account and takes an exclusive row
	// lock on it. Blocks until the lock is available. Must be called within a
	// transaction.
	FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error)

	// UpdateBalanceInTx writes a new balance for the account and increments
	// its version by 1, within the given transaction. The row must already be
	// locked via FindAccountByIDForUpdate.
	UpdateBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, newBalance decimal.Decimal) error
}

// AccountRepository combines all account-related repository interfaces.
type AccountRepository interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
