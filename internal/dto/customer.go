package dto

import (
	"time"

	"github.com/manoja-HA/nexus-banking-platform/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to create a new customer.
type CreateCustomerRequest struct {
	Name string `json:"name" binding:"required"`
}

// CustomerResponse is the customer record returned to clients.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCustomerResponse converts a domain customer to its response form.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.CustomerID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

// ToCustomerResponses converts a slice of domain customers.
func ToCustomerResponses(customers []domain.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(customers))
	for i := range customers {
		out[i] = ToCustomerResponse(&customers[i])
	}
	return out
}
