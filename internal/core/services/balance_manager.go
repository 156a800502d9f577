package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/manoja-HA/nexus-banking-platform/internal/apperrors"
	"github.com/manoja-HA/nexus-banking-platform/internal/core/domain"
	portsrepo "github.com/manoja-HA/nexus-banking-platform/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// BalanceManager applies debits and credits to locked account rows. It never
// begins or ends transactions itself; the caller owns the transaction and must
// have locked the rows it passes in.
type BalanceManager struct {
	accountRepo portsrepo.AccountTransactionSupport
}

// NewBalanceManager creates a BalanceManager backed by the given account
// repository.
func NewBalanceManager(accountRepo portsrepo.AccountTransactionSupport) *BalanceManager {
	return &BalanceManager{accountRepo: accountRepo}
}

// Debit subtracts amount from the account's balance. Fails when the balance
// would go negative.
func (b *BalanceManager) Debit(ctx context.Context, tx pgx.Tx, account *domain.Account, amount decimal.Decimal) error {
	newBalance := account.CurrentBalance.Sub(amount)
	if newBalance.IsNegative() {
		return apperrors.New(apperrors.KindInsufficientFunds,
			fmt.Sprintf("Insufficient funds: available %s, requested %s", account.CurrentBalance.String(), amount.String()))
	}

	if err := b.accountRepo.UpdateBalanceInTx(ctx, tx, account.AccountID, newBalance); err != nil {
		return err
	}
	account.CurrentBalance = newBalance
	account.Version++
	return nil
}

// Credit adds amount to the account's balance.
func (b *BalanceManager) Credit(ctx context.Context, tx pgx.Tx, account *domain.Account, amount decimal.Decimal) error {
	newBalance := account.CurrentBalance.Add(amount)

	if err := b.accountRepo.UpdateBalanceInTx(ctx, tx, account.AccountID, newBalance); err != nil {
		return err
	}
	account.CurrentBalance = newBalance
	account.Version++
	return nil
}
