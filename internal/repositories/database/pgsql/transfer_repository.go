package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/manoja-HA/nexus-banking-platform/internal/apperrors"
	"github.com/manoja-HA/nexus-banking-platform/internal/core/domain"
	portsrepo "github.com/manoja-HA/nexus-banking-platform/internal/core/ports/repositories"
	"github.com/manoja-HA/nexus-banking-platform/internal/models"
)

type PgxTransferRepository struct {
	BaseRepository
}

// NewTransferRepository creates a new repository for transfer data with
// transaction support.
func NewTransferRepository(pool *pgxpool.Pool) portsrepo.TransferRepositoryWithTx {
	return &PgxTransferRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransferRepositoryWithTx = (*PgxTransferRepository)(nil)

func toDomainTransfer(m models.Transfer) domain.Transfer {
	return domain.Transfer{
		TransferID:           m.TransferID,
		SourceAccountID:      m.SourceAccountID,
		DestinationAccountID: m.DestinationAccountID,
		Amount:               m.Amount,
		IdempotencyKey:       m.IdempotencyKey,
		Description:          m.Description,
		TransferType:         domain.TransferType(m.TransferType),
		Status:               domain.TransferStatus(m.Status),
		IsInitialDeposit:     m.IsInitialDeposit,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

const transferColumns = `id, source_account_id, destination_account_id, amount, idempotency_key, description, transfer_type, status, is_initial_deposit, created_at, updated_at`

func scanTransfer(row pgx.Row) (*models.Transfer, error) {
	var m models.Transfer
	err := row.Scan(
		&m.TransferID,
		&m.SourceAccountID,
		&m.DestinationAccountID,
		&m.Amount,
		&m.IdempotencyKey,
		&m.Description,
		&m.TransferType,
		&m.Status,
		&m.IsInitialDeposit,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateTransferInTx inserts a new transfer row within the given transaction.
// A missing transfer ID is generated here so callers can pass a partially
// built transfer. Returns the persisted transfer.
func (r *PgxTransferRepository) CreateTransferInTx(ctx context.Context, tx pgx.Tx, transfer domain.Transfer) (*domain.Transfer, error) {
	if transfer.TransferID == "" {
		transfer.TransferID = uuid.NewString()
	}
	now := time.Now().UTC()
	if transfer.CreatedAt.IsZero() {
		transfer.CreatedAt = now
	}
	if transfer.UpdatedAt.IsZero() {
		transfer.UpdatedAt = now
	}

	query := `
		INSERT INTO transfers (id, source_account_id, destination_account_id, amount, idempotency_key, description, transfer_type, status, is_initial_deposit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := tx.Exec(ctx, query,
		transfer.TransferID,
		transfer.SourceAccountID,
		transfer.DestinationAccountID,
		transfer.Amount,
		transfer.IdempotencyKey,
		transfer.Description,
		transfer.TransferType,
		transfer.Status,
		transfer.IsInitialDeposit,
		transfer.CreatedAt,
		transfer.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, apperrors.Wrap(apperrors.KindDuplicateIdempotencyKey, "A transfer with this idempotency key already exists", err)
		}
		return nil, apperrors.Wrap(apperrors.KindDatabase, "failed to create transfer", err)
	}
	return &transfer, nil
}

// UpdateTransferStatusInTx moves a transfer to a new status within the given
// transaction.
func (r *PgxTransferRepository) UpdateTransferStatusInTx(ctx context.Context, tx pgx.Tx, transferID string, status domain.TransferStatus) error {
	query := `UPDATE transfers SET status = $2, updated_at = $3 WHERE id = $1;`

	cmdTag, err := tx.Exec(ctx, query, transferID, status, time.Now().UTC())
	if err != nil {
		return apperrors.Wrap(apperrors.KindDatabase, "failed to update status for transfer "+transferID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.New(apperrors.KindTransferNotFound, "Transfer not found")
	}
	return nil
}

// FindTransferByID retrieves a transfer by its ID.
func (r *PgxTransferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE id = $1;`

	m, err := scanTransfer(r.Pool.QueryRow(ctx, query, transferID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindTransferNotFound, "Transfer not found")
		}
		return nil, apperrors.Wrap(apperrors.KindDatabase, "failed to find transfer by ID "+transferID, err)
	}

	d := toDomainTransfer(*m)
	return &d, nil
}

// FindTransferByIdempotencyKey retrieves a transfer by its idempotency key.
// Returns (nil, nil) when no transfer carries the key.
func (r *PgxTransferRepository) FindTransferByIdempotencyKey(ctx context.Context, idempotencyKey string) (*domain.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE idempotency_key = $1;`

	m, err := scanTransfer(r.Pool.QueryRow(ctx, query, idempotencyKey))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.KindDatabase, "failed to find transfer by idempotency key", err)
	}

	d := toDomainTransfer(*m)
	return &d, nil
}

// ListTransfersByAccount retrieves transfers where the account is either the
// source or the destination, newest first.
func (r *PgxTransferRepository) ListTransfersByAccount(ctx context.Context, accountID string, limit, offset int) ([]domain.Transfer, error) {
	query := `
		SELECT ` + transferColumns + `
		FROM transfers
		WHERE source_account_id = $1 OR destination_account_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindDatabase, "failed to query transfers for account "+accountID, err)
	}
	defer rows.Close()

	transfers := []domain.Transfer{}
	for rows.Next() {
		m, err := scanTransfer(rows)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.KindDatabase, "failed to scan transfer row", err)
		}
		transfers = append(transfers, toDomainTransfer(*m))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.KindDatabase, "error iterating transfer rows", err)
	}

	return transfers, nil
}
