package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/manoja-HA/nexus-banking-platform/internal/apperrors"
	"github.com/manoja-HA/nexus-banking-platform/internal/core/domain"
	portsrepo "github.com/manoja-HA/nexus-banking-platform/internal/core/ports/repositories"
	portssvc "github.com/manoja-HA/nexus-banking-platform/internal/core/ports/services"
	"github.com/manoja-HA/nexus-banking-platform/internal/middleware"
)

// CustomerService implements customer registration and lookup.
type CustomerService struct {
	customerRepo portsrepo.CustomerRepository
}

// NewCustomerService creates a new CustomerService with its dependencies.
func NewCustomerService(customerRepo portsrepo.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

var _ portssvc.CustomerSvcFacade = (*CustomerService)(nil)

// CreateCustomer registers a new customer. Names are unique across customers.
func (s *CustomerService) CreateCustomer(ctx context.Context, name string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.customerRepo.FindCustomerByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.New(apperrors.KindConstraintViolation, "Customer already exists")
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       name,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		return nil, err
	}

	logger.Info("customer created", "customer_id", customer.CustomerID)
	return &customer, nil
}

// GetCustomerByID retrieves a specific customer.
func (s *CustomerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, customerID)
}

// ListCustomers retrieves all customers.
func (s *CustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.ListCustomers(ctx)
}
