package services

import (
	"context"

	"github.com/manoja-HA/nexus-banking-platform/internal/core/domain"
	"github.com/manoja-HA/nexus-banking-platform/internal/dto"
)

// AccountSvcFacade defines the account lifecycle operations exposed to handlers.
type AccountSvcFacade interface {
	// CreateAccount opens a new account for an existing customer, applying the
	// optional initial deposit through the transfer workflow.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// GetAccountByID retrieves a specific account with its current balance.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
