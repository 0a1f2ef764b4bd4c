// Package ledger holds the account and transaction model and the
// balance-consistency rules that tie the two together. An account's balance is
// a cached running total of the transaction effects applied to it; it is never
// recomputed from the transaction history on read.
package ledger

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is a named balance-holding entity with a type classification
// (e.g. "Savings", "Checking").
//
// Invariants:
//   - Balance reflects the sum of all transaction effects applied since
//     creation (deposits add, withdrawals and transfers subtract).
//   - Balance is only ever written through the ledger service; partial
//     updates to name or type never touch it.
type Account struct {
	ID            uuid.UUID
	AccountNumber string
	AccountName   string
	AccountType   string
	Balance       decimal.Decimal
	CreatedAt     time.Time
}

// NewAccount builds an account with a fresh id and a generated display
// account number. The initial balance defaults to zero when the caller passes
// the zero decimal.
func NewAccount(name, accountType string, initialBalance decimal.Decimal) (*Account, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(accountType) == "" {
		return nil, ErrAccountFieldsRequired
	}
	return &Account{
		ID:            uuid.New(),
		AccountNumber: NewAccountNumber(),
		AccountName:   name,
		AccountType:   accountType,
		Balance:       initialBalance,
		CreatedAt:     time.Now(),
	}, nil
}

// NewAccountNumber generates a 10-digit display account number. Uniqueness is
// structural (ids are the real identity), so a random draw is enough.
func NewAccountNumber() string {
	return strconv.FormatInt(1_000_000_000+rand.Int63n(9_000_000_000), 10)
}
