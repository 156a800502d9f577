package repositories

import (
	"context"

	"github.com/manoja-HA/nexus-banking-platform/internal/core/domain"
)

// CustomerRepository defines persistence operations for customer data.
type CustomerRepository interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// FindCustomerByID retrieves a specific customer by its unique identifier.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// FindCustomerByName retrieves a customer by exact name match.
	// Returns (nil, nil) when no customer has that name.
	FindCustomerByName(ctx context.Context, name string) (*domain.Customer, error)

	// ListCustomers retrieves all customers.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}
