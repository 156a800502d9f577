package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/manoja-HA/nexus-banking-platform/internal/apperrors"
	"github.com/manoja-HA/nexus-banking-platform/internal/core/domain"
	portsrepo "github.com/manoja-HA/nexus-banking-platform/internal/core/ports/repositories"
	"github.com/manoja-HA/nexus-banking-platform/internal/models"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new repository for account data.
func NewAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{pool: pool}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		CustomerID:     m.CustomerID,
		AccountNumber:  m.AccountNumber,
		CurrentBalance: m.CurrentBalance,
		Version:        m.Version,
		Status:         domain.AccountStatus(m.Status),
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

const accountColumns = `id, customer_id, account_number, current_balance, version, status, created_at, updated_at`

func scanAccount(row pgx.Row) (*models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.CustomerID,
		&m.AccountNumber,
		&m.CurrentBalance,
		&m.Version,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	query := `
		INSERT INTO accounts (id, customer_id, account_number, current_balance, version, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		account.AccountID,
		account.CustomerID,
		account.AccountNumber,
		account.CurrentBalance,
		account.Version,
		account.Status,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.Wrap(apperrors.KindConstraintViolation, "account number "+account.AccountNumber+" already exists", err)
		}
		return apperrors.Wrap(apperrors.KindDatabase, "failed to save account "+account.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1;`

	m, err := scanAccount(r.pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindAccountNotFound, "Account not found")
		}
		return nil, apperrors.Wrap(apperrors.KindDatabase, "failed to find account by ID "+accountID, err)
	}

	d := toDomainAccount(*m)
	return &d, nil
}

// ListAccounts retrieves all accounts. No ordering is applied.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindDatabase, "failed to query accounts", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.KindDatabase, "failed to scan account row", err)
		}
		accounts = append(accounts, toDomainAccount(*m))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.KindDatabase, "error iterating account rows", err)
	}

	return accounts, nil
}

// FindAccountByIDForUpdate retrieves an account and takes an exclusive row
// lock on it. Blocks until the lock is granted. Must be called within a
// transaction.
func (r *PgxAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 FOR UPDATE;`

	m, err := scanAccount(tx.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindAccountNotFound, "Account not found")
		}
		return nil, apperrors.Wrap(apperrors.KindDatabase, "failed to lock account "+accountID, err)
	}

	d := toDomainAccount(*m)
	return &d, nil
}

// UpdateBalanceInTx writes the new balance and bumps the version counter by 1
// within the given transaction. The caller must hold the row lock.
func (r *PgxAccountRepository) UpdateBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, newBalance decimal.Decimal) error {
	query := `
		UPDATE accounts
		SET current_balance = $2, version = version + 1, updated_at = $3
		WHERE id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, accountID, newBalance, time.Now().UTC())
	if err != nil {
		return apperrors.Wrap(apperrors.KindDatabase, "failed to update balance for account "+accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.New(apperrors.KindAccountNotFound, "Account not found")
	}
	return nil
}
