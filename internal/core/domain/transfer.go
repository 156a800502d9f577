package domain

import (
	"github.com/shopspring/decimal"
)

// TransferStatus is the processing status of a transfer.
// FAILED and CANCELLED are reserved for forward compatibility; no current code
// path assigns them.
type TransferStatus string

const (
	TransferPending   TransferStatus = "PENDING"
	TransferCompleted TransferStatus = "COMPLETED"
	TransferFailed    TransferStatus = "FAILED"
	TransferCancelled TransferStatus = "CANCELLED"
)

// TransferType distinguishes regular transfers from the self-transfer that
// funds a newly created account.
type TransferType string

const (
	TransferStandard       TransferType = "STANDARD"
	TransferInitialDeposit TransferType = "INITIAL_DEPOSIT"
)

// Transfer is a single fund movement between two accounts. Source and
// destination are the same account only for INITIAL_DEPOSIT transfers.
type Transfer struct {
	TransferID           string          `json:"transfer_id"`
	SourceAccountID      string          `json:"source_account_id"`
	DestinationAccountID string          `json:"destination_account_id"`
	Amount               decimal.Decimal `json:"amount"`
	IdempotencyKey       string          `json:"idempotency_key"`
	Description          string          `json:"description"`
	TransferType         TransferType    `json:"transfer_type"`
	Status               TransferStatus  `json:"status"`
	IsInitialDeposit     bool            `json:"is_initial_deposit"`
	Timestamps
}
