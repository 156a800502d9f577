package services

import (
	"context"

	"github.com/manoja-HA/nexus-banking-platform/internal/core/domain"
)

// CustomerSvcFacade defines the customer operations exposed to handlers.
type CustomerSvcFacade interface {
	// CreateCustomer registers a new customer. Names are unique; a duplicate
	// name is rejected.
	CreateCustomer(ctx context.Context, name string) (*domain.Customer, error)

	// GetCustomerByID retrieves a specific customer.
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves all customers.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}
