package dto

import (
	"time"

	"github.com/manoja-HA/nexus-banking-platform/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransferRequest defines the data needed to move funds between accounts.
// IdempotencyKey is optional; the service generates one when absent, which
// opts the caller out of replay protection.
type CreateTransferRequest struct {
	SourceAccountID      string              `json:"source_account_id" binding:"required,uuid"`
	DestinationAccountID string              `json:"destination_account_id" binding:"required,uuid"`
	Amount               decimal.Decimal     `json:"amount"`
	IdempotencyKey       string              `json:"idempotency_key" binding:"omitempty,max=128"`
	Description          string              `json:"description"`
	TransferType         domain.TransferType `json:"transfer_type" binding:"omitempty,oneof=STANDARD INITIAL_DEPOSIT"`
}

// TransferDetailsResponse is the transfer record returned to clients.
type TransferDetailsResponse struct {
	ID                   string                `json:"id"`
	SourceAccountID      string                `json:"source_account_id"`
	DestinationAccountID string                `json:"destination_account_id"`
	Amount               decimal.Decimal       `json:"amount"`
	Status               domain.TransferStatus `json:"status"`
	Description          string                `json:"description"`
	TransferType         domain.TransferType   `json:"transfer_type"`
	CreatedAt            time.Time             `json:"created_at"`
}

// ToTransferDetailsResponse converts a domain transfer to its response form.
func ToTransferDetailsResponse(t *domain.Transfer) TransferDetailsResponse {
	return TransferDetailsResponse{
		ID:                   t.TransferID,
		SourceAccountID:      t.SourceAccountID,
		DestinationAccountID: t.DestinationAccountID,
		Amount:               t.Amount,
		Status:               t.Status,
		Description:          t.Description,
		TransferType:         t.TransferType,
		CreatedAt:            t.CreatedAt,
	}
}

// ToTransferDetailsResponses converts a slice of domain transfers.
func ToTransferDetailsResponses(transfers []domain.Transfer) []TransferDetailsResponse {
	out := make([]TransferDetailsResponse, len(transfers))
	for i := range transfers {
		out[i] = ToTransferDetailsResponse(&transfers[i])
	}
	return out
}
