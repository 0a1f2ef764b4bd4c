// Package memory provides the in-memory implementation of the ledger store.
// Both collections live behind a single mutex so a balance update and the
// transaction append that caused it are always observed together. Listing
// order is insertion order; results are copies of the stored records.
package memory

import (
	"context"
	"sync"

	"github.com/bankdash/backend/pkg/domain/ledger"
	"github.com/bankdash/backend/pkg/dto"
	"github.com/bankdash/backend/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type store struct {
	accounts     []ledger.Account
	transactions []ledger.Transaction
}

// UnitOfWork is the single mutation gate over the in-memory store. All
// repository access goes through Do, which holds the store lock for the whole
// callback.
type UnitOfWork struct {
	mu sync.Mutex
	st *store

	accounts     *accountRepository
	transactions *transactionRepository
}

// New creates an empty in-memory ledger store.
func New() *UnitOfWork {
	st := &store{}
	return &UnitOfWork{
		st:           st,
		accounts:     &accountRepository{st: st},
		transactions: &transactionRepository{st: st},
	}
}

// Do runs fn with exclusive access to the store.
func (u *UnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(u)
}

// AccountRepository returns the account repository bound to this store.
func (u *UnitOfWork) AccountRepository() (repository.AccountRepository, error) {
	return u.accounts, nil
}

// TransactionRepository returns the transaction repository bound to this store.
func (u *UnitOfWork) TransactionRepository() (repository.TransactionRepository, error) {
	return u.transactions, nil
}

var _ repository.UnitOfWork = (*UnitOfWork)(nil)

type accountRepository struct {
	st *store
}

func (r *accountRepository) find(id uuid.UUID) int {
	for i := range r.st.accounts {
		if r.st.accounts[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *accountRepository) Create(_ context.Context, account *ledger.Account) error {
	r.st.accounts = append(r.st.accounts, *account)
	return nil
}

func (r *accountRepository) Get(_ context.Context, id uuid.UUID) (*ledger.Account, error) {
	i := r.find(id)
	if i < 0 {
		return nil, ledger.ErrAccountNotFound
	}
	a := r.st.accounts[i]
	return &a, nil
}

func (r *accountRepository) List(_ context.Context) ([]*ledger.Account, error) {
	out := make([]*ledger.Account, len(r.st.accounts))
	for i := range r.st.accounts {
		a := r.st.accounts[i]
		out[i] = &a
	}
	return out, nil
}

func (r *accountRepository) PartialUpdate(
	_ context.Context,
	id uuid.UUID,
	update dto.AccountUpdate,
) (*ledger.Account, error) {
	i := r.find(id)
	if i < 0 {
		return nil, ledger.ErrAccountNotFound
	}
	if update.AccountName != nil {
		r.st.accounts[i].AccountName = *update.AccountName
	}
	if update.AccountType != nil {
		r.st.accounts[i].AccountType = *update.AccountType
	}
	a := r.st.accounts[i]
	return &a, nil
}

func (r *accountRepository) SetBalance(_ context.Context, id uuid.UUID, balance decimal.Decimal) error {
	i := r.find(id)
	if i < 0 {
		return ledger.ErrAccountNotFound
	}
	r.st.accounts[i].Balance = balance
	return nil
}

func (r *accountRepository) Delete(_ context.Context, id uuid.UUID) (*ledger.Account, int, error) {
	i := r.find(id)
	if i < 0 {
		return nil, 0, ledger.ErrAccountNotFound
	}
	removed := r.st.accounts[i]
	r.st.accounts = append(r.st.accounts[:i], r.st.accounts[i+1:]...)

	kept := r.st.transactions[:0]
	cascaded := 0
	for _, tx := range r.st.transactions {
		if tx.AccountID == id {
			cascaded++
			continue
		}
		kept = append(kept, tx)
	}
	r.st.transactions = kept
	return &removed, cascaded, nil
}

var _ repository.AccountRepository = (*accountRepository)(nil)

type transactionRepository struct {
	st *store
}

func (r *transactionRepository) find(id uuid.UUID) int {
	for i := range r.st.transactions {
		if r.st.transactions[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *transactionRepository) Create(_ context.Context, tx *ledger.Transaction) error {
	r.st.transactions = append(r.st.transactions, *tx)
	return nil
}

func (r *transactionRepository) Get(_ context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	i := r.find(id)
	if i < 0 {
		return nil, ledger.ErrTransactionNotFound
	}
	tx := r.st.transactions[i]
	return &tx, nil
}

func (r *transactionRepository) List(_ context.Context) ([]*ledger.Transaction, error) {
	out := make([]*ledger.Transaction, len(r.st.transactions))
	for i := range r.st.transactions {
		tx := r.st.transactions[i]
		out[i] = &tx
	}
	return out, nil
}

func (r *transactionRepository) ListByAccount(
	_ context.Context,
	accountID uuid.UUID,
) ([]*ledger.Transaction, error) {
	out := make([]*ledger.Transaction, 0)
	for i := range r.st.transactions {
		if r.st.transactions[i].AccountID != accountID {
			continue
		}
		tx := r.st.transactions[i]
		out = append(out, &tx)
	}
	return out, nil
}

func (r *transactionRepository) PartialUpdate(
	_ context.Context,
	id uuid.UUID,
	update dto.TransactionUpdate,
) (*ledger.Transaction, error) {
	i := r.find(id)
	if i < 0 {
		return nil, ledger.ErrTransactionNotFound
	}
	if update.Description != nil {
		r.st.transactions[i].Description = *update.Description
	}
	tx := r.st.transactions[i]
	return &tx, nil
}

func (r *transactionRepository) Delete(_ context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	i := r.find(id)
	if i < 0 {
		return nil, ledger.ErrTransactionNotFound
	}
	removed := r.st.transactions[i]
	r.st.transactions = append(r.st.transactions[:i], r.st.transactions[i+1:]...)
	return &removed, nil
}

var _ repository.TransactionRepository = (*transactionRepository)(nil)
