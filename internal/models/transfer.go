package models

import (
	"github.com/shopspring/decimal"
)

// Transfer mirrors a row in the transfers table.
type Transfer struct {
	TransferID           string          `db:"id"`
	SourceAccountID      string          `db:"source_account_id"`
	DestinationAccountID string          `db:"destination_account_id"`
	Amount               decimal.Decimal `db:"amount"`
	IdempotencyKey       string          `db:"idempotency_key"`
	Description          string          `db:"description"`
	TransferType         string          `db:"transfer_type"`
	Status               string          `db:"status"`
	IsInitialDeposit     bool            `db:"is_initial_deposit"`
	Timestamps
}
