package pgsql

import (
	"errors"

	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/manoja-HA/nexus-banking-platform/internal/apperrors"
	"github.com/manoja-HA/nexus-banking-platform/internal/core/domain"
	portsrepo "github.com/manoja-HA/nexus-banking-platform/internal/core/ports/repositories"
	"github.com/manoja-HA/nexus-banking-platform/internal/models"
)

type PgxCustomerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository creates a new repository for customer data.
func NewCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepository {
	return &PgxCustomerRepository{pool: pool}
}

var _ portsrepo.CustomerRepository = (*PgxCustomerRepository)(nil)

func toDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID: m.CustomerID,
		Name:       m.Name,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// SaveCustomer inserts a new customer.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		INSERT INTO customers (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.pool.Exec(ctx, query,
		customer.CustomerID,
		customer.Name,
		customer.CreatedAt,
		customer.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(apperrors.KindDatabase, "failed to save customer "+customer.CustomerID, err)
	}
	return nil
}

// FindCustomerByID retrieves a customer by its ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM customers
		WHERE id = $1;
	`
	var m models.Customer
	err := r.pool.QueryRow(ctx, query, customerID).Scan(
		&m.CustomerID,
		&m.Name,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindCustomerNotFound, "Customer not found")
		}
		return nil, apperrors.Wrap(apperrors.KindDatabase, "failed to find customer by ID "+customerID, err)
	}

	d := toDomainCustomer(m)
	return &d, nil
}

// FindCustomerByName retrieves a customer by exact name. A miss is not an error.
func (r *PgxCustomerRepository) FindCustomerByName(ctx context.Context, name string) (*domain.Customer, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM customers
		WHERE name = $1;
	`
	var m models.Customer
	err := r.pool.QueryRow(ctx, query, name).Scan(
		&m.CustomerID,
		&m.Name,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.KindDatabase, "failed to find customer by name", err)
	}

	d := toDomainCustomer(m)
	return &d, nil
}

// ListCustomers retrieves all customers.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM customers;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindDatabase, "failed to query customers", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var m models.Customer
		if err := rows.Scan(&m.CustomerID, &m.Name, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, apperrors.Wrap(apperrors.KindDatabase, "failed to scan customer row", err)
		}
		customers = append(customers, toDomainCustomer(m))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.KindDatabase, "error iterating customer rows", err)
	}

	return customers, nil
}
