package domain

import (
	"github.com/shopspring/decimal"
)

// AccountStatus is the lifecycle status of an account. Only ACTIVE accounts
// may take part in transfers.
type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountInactive  AccountStatus = "INACTIVE"
	AccountSuspended AccountStatus = "SUSPENDED"
	AccountClosed    AccountStatus = "CLOSED"
)

// Account represents a ledger account within the core domain.
// CurrentBalance never goes below zero. Version is bumped by exactly 1 on
// every balance write; it is an observability counter, the row lock taken by
// the repository is what serializes concurrent mutations.
type Account struct {
	AccountID      string          `json:"account_id"`
	CustomerID     string          `json:"customer_id"`
	AccountNumber  string          `json:"account_number"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	Version        int64           `json:"version"`
	Status         AccountStatus   `json:"status"`
	Timestamps
}
