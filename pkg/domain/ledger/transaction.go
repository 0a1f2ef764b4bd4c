package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies the balance effect of a transaction.
type TransactionType string

const (
	// TypeDeposit adds the amount to the owning account's balance.
	TypeDeposit TransactionType = "deposit"
	// TypeWithdrawal subtracts the amount and is the only type checked
	// against the current balance.
	TypeWithdrawal TransactionType = "withdrawal"
	// TypeTransfer subtracts the amount from the source account. There is no
	// counterparty leg: the amount is never credited anywhere. Documented
	// behavior, kept as-is.
	TypeTransfer TransactionType = "transfer"
)

// ParseTransactionType validates a wire-level type string.
func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(s); t {
	case TypeDeposit, TypeWithdrawal, TypeTransfer:
		return t, nil
	default:
		return "", ErrInvalidTransactionType
	}
}

// Apply returns the balance after a transaction of this type for amount is
// recorded against balance.
func (t TransactionType) Apply(balance, amount decimal.Decimal) decimal.Decimal {
	if t == TypeDeposit {
		return balance.Add(amount)
	}
	return balance.Sub(amount)
}

// Reverse undoes Apply: it returns the balance after a previously recorded
// transaction of this type for amount is deleted.
func (t TransactionType) Reverse(balance, amount decimal.Decimal) decimal.Decimal {
	if t == TypeDeposit {
		return balance.Sub(amount)
	}
	return balance.Add(amount)
}

// DefaultDescription is the capitalized type name, used when a transaction is
// recorded without a description.
func (t TransactionType) DefaultDescription() string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Transaction is a record of a single balance-affecting event tied to one
// account. Everything except the description is immutable after creation.
//
// Balance holds a snapshot of the owning account's balance immediately after
// this transaction was applied. Deleting another transaction for the same
// account leaves this snapshot stale; that is accepted and documented, the
// snapshot is never recomputed.
type Transaction struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Balance     decimal.Decimal
}

// NewTransaction builds a transaction record for an already-applied balance
// mutation. balanceAfter must be the owning account's balance after Apply.
func NewTransaction(
	accountID uuid.UUID,
	txType TransactionType,
	amount decimal.Decimal,
	description string,
	balanceAfter decimal.Decimal,
) *Transaction {
	if description == "" {
		description = txType.DefaultDescription()
	}
	return &Transaction{
		ID:          uuid.New(),
		AccountID:   accountID,
		Type:        txType,
		Amount:      amount,
		Description: description,
		Date:        time.Now(),
		Balance:     balanceAfter,
	}
}
