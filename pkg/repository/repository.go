// Package repository defines the data-access interfaces for the ledger store.
// Implementations must preserve insertion order for listing and return
// defensive copies so callers can sort or mutate results freely.
package repository

import (
	"context"

	"github.com/bankdash/backend/pkg/domain/ledger"
	"github.com/bankdash/backend/pkg/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRepository defines data access operations for accounts.
type AccountRepository interface {
	// Create inserts a new account, appended to the end of the listing order.
	Create(ctx context.Context, account *ledger.Account) error

	// Get retrieves an account by id, or ledger.ErrAccountNotFound.
	Get(ctx context.Context, id uuid.UUID) (*ledger.Account, error)

	// List returns all accounts in insertion order.
	List(ctx context.Context) ([]*ledger.Account, error)

	// PartialUpdate updates the fields set on update and returns the result.
	// It never touches the balance.
	PartialUpdate(ctx context.Context, id uuid.UUID, update dto.AccountUpdate) (*ledger.Account, error)

	// SetBalance overwrites the cached balance. Reserved for the ledger
	// service's transaction operations.
	SetBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error

	// Delete removes the account and every transaction that references it.
	// It returns the removed account and the number of cascaded deletions.
	Delete(ctx context.Context, id uuid.UUID) (*ledger.Account, int, error)
}

// TransactionRepository defines data access operations for transactions.
type TransactionRepository interface {
	// Create appends a new transaction to the end of the listing order.
	Create(ctx context.Context, tx *ledger.Transaction) error

	// Get retrieves a transaction by id, or ledger.ErrTransactionNotFound.
	Get(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error)

	// List returns all transactions in insertion order.
	List(ctx context.Context) ([]*ledger.Transaction, error)

	// ListByAccount returns the transactions owned by accountID in insertion order.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*ledger.Transaction, error)

	// PartialUpdate updates the mutable fields (description only) and returns
	// the result.
	PartialUpdate(ctx context.Context, id uuid.UUID, update dto.TransactionUpdate) (*ledger.Transaction, error)

	// Delete removes and returns the transaction. Balance reversal is the
	// service's job, not the repository's.
	Delete(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error)
}

// UnitOfWork serializes access to the ledger store. Balance updates and
// transaction-list appends must be observed atomically together, so every
// operation, reads included, runs inside Do under a single mutation gate.
type UnitOfWork interface {
	// Do runs fn with exclusive access to the store's repositories.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// AccountRepository returns the account repository bound to this unit of work.
	AccountRepository() (AccountRepository, error)

	// TransactionRepository returns the transaction repository bound to this unit of work.
	TransactionRepository() (TransactionRepository, error)
}
