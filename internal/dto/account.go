package dto

import (
	"time"

	"github.com/manoja-HA/nexus-banking-platform/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open a new account.
// InitialDeposit may be zero; negative values are rejected by the service.
type CreateAccountRequest struct {
	CustomerID     string          `json:"customer_id" binding:"required,uuid"`
	InitialDeposit decimal.Decimal `json:"initial_deposit"`
}

// AccountDetailsResponse is the account record returned on creation and listing.
type AccountDetailsResponse struct {
	ID            string               `json:"id"`
	CustomerID    string               `json:"customer_id"`
	AccountNumber string               `json:"account_number"`
	CreatedAt     time.Time            `json:"created_at"`
	Status        domain.AccountStatus `json:"status"`
}

// AccountBalanceResponse is the balance read returned by the account lookup.
type AccountBalanceResponse struct {
	ID             string          `json:"id"`
	CustomerID     string          `json:"customer_id"`
	AccountNumber  string          `json:"account_number"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
}

// ToAccountDetailsResponse converts a domain account to its details form.
func ToAccountDetailsResponse(a *domain.Account) AccountDetailsResponse {
	return AccountDetailsResponse{
		ID:            a.AccountID,
		CustomerID:    a.CustomerID,
		AccountNumber: a.AccountNumber,
		CreatedAt:     a.CreatedAt,
		Status:        a.Status,
	}
}

// ToAccountDetailsResponses converts a slice of domain accounts.
func ToAccountDetailsResponses(accounts []domain.Account) []AccountDetailsResponse {
	out := make([]AccountDetailsResponse, len(accounts))
	for i := range accounts {
		out[i] = ToAccountDetailsResponse(&accounts[i])
	}
	return out
}

// ToAccountBalanceResponse converts a domain account to its balance form.
func ToAccountBalanceResponse(a *domain.Account) AccountBalanceResponse {
	return AccountBalanceResponse{
		ID:             a.AccountID,
		CustomerID:     a.CustomerID,
		AccountNumber:  a.AccountNumber,
		CurrentBalance: a.CurrentBalance,
	}
}
