package models

import (
	"github.com/shopspring/decimal"
)

// AccountStatus mirrors the account status column values.
type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountInactive  AccountStatus = "INACTIVE"
	AccountSuspended AccountStatus = "SUSPENDED"
	AccountClosed    AccountStatus = "CLOSED"
)

// Account mirrors a row in the accounts table.
type Account struct {
	AccountID      string          `db:"id"`
	CustomerID     string          `db:"customer_id"`
	AccountNumber  string          `db:"account_number"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	Version        int64           `db:"version"`
	Status         AccountStatus   `db:"status"`
	Timestamps
}
