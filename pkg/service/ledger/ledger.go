// Package ledger provides the business logic for accounts and transactions:
// input validation plus the balance-consistency rule that every recorded
// transaction mutates its owning account's balance and every deleted
// transaction reverses that mutation.
package ledger

import (
	"context"
	"log/slog"

	"github.com/bankdash/backend/pkg/domain/ledger"
	"github.com/bankdash/backend/pkg/dto"
	"github.com/bankdash/backend/pkg/eventbus"
	"github.com/bankdash/backend/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceCheck is the result of validating an account's balance.
type BalanceCheck struct {
	AccountID uuid.UUID
	Balance   decimal.Decimal
	IsValid   bool
}

// Service enforces the ledger's validation and balance-mutation rules on top
// of the store. Store mutation only happens after validation passes, so a
// failing request never leaves a partial write behind.
type Service struct {
	uow    repository.UnitOfWork
	bus    eventbus.Bus
	logger *slog.Logger
}

// New creates a ledger service.
func New(uow repository.UnitOfWork, bus eventbus.Bus, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		uow:    uow,
		bus:    bus,
		logger: logger.With("service", "ledger"),
	}
}

// CreateAccount opens a new account. Name and type are required; the initial
// balance defaults to zero when the caller passes the zero decimal.
func (s *Service) CreateAccount(ctx context.Context, create dto.AccountCreate) (a *ledger.Account, err error) {
	logger := s.logger.With("accountName", create.AccountName, "accountType", create.AccountType)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		a, err = ledger.NewAccount(create.AccountName, create.AccountType, create.InitialBalance)
		if err != nil {
			return err
		}
		return repo.Create(ctx, a)
	})
	if err != nil {
		logger.Error("create account failed", "error", err)
		return nil, err
	}
	logger.Info("account created", "accountID", a.ID, "accountNumber", a.AccountNumber)
	s.emit(ctx, ledger.AccountCreated{Account: *a})
	return a, nil
}

// GetAccount retrieves one account by id.
func (s *Service) GetAccount(ctx context.Context, id uuid.UUID) (a *ledger.Account, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		a, err = repo.Get(ctx, id)
		return err
	})
	return a, err
}

// ListAccounts returns every account in insertion order.
func (s *Service) ListAccounts(ctx context.Context) (accounts []*ledger.Account, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		accounts, err = repo.List(ctx)
		return err
	})
	return accounts, err
}

// UpdateAccount applies a partial update to an account's name and type.
// Unset fields are ignored; the balance is never touched here.
func (s *Service) UpdateAccount(
	ctx context.Context,
	id uuid.UUID,
	update dto.AccountUpdate,
) (a *ledger.Account, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		a, err = repo.PartialUpdate(ctx, id, update)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("account updated", "accountID", id)
	return a, nil
}

// DeleteAccount removes an account together with all transactions that
// reference it. The cascade has no balance effect: the account is gone.
func (s *Service) DeleteAccount(ctx context.Context, id uuid.UUID) (a *ledger.Account, err error) {
	var cascaded int
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		a, cascaded, err = repo.Delete(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("account deleted", "accountID", id, "cascadedTransactions", cascaded)
	s.emit(ctx, ledger.AccountDeleted{Account: *a, RemovedTransactions: cascaded})
	return a, nil
}

// RecordTransaction validates the request, applies the balance delta to the
// owning account and appends a transaction holding the post-mutation balance
// snapshot. Only withdrawals are checked against the current balance;
// transfers are debited unchecked and have no credit leg.
func (s *Service) RecordTransaction(
	ctx context.Context,
	create dto.TransactionCreate,
) (tx *ledger.Transaction, err error) {
	logger := s.logger.With("accountID", create.AccountID, "type", create.Type)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		transactions, err := uow.TransactionRepository()
		if err != nil {
			return err
		}

		account, err := accounts.Get(ctx, create.AccountID)
		if err != nil {
			return err
		}
		txType, err := ledger.ParseTransactionType(create.Type)
		if err != nil {
			return err
		}
		if !create.Amount.IsPositive() {
			return ledger.ErrAmountMustBePositive
		}
		if txType == ledger.TypeWithdrawal && create.Amount.GreaterThan(account.Balance) {
			return ledger.ErrInsufficientFunds
		}

		balance := txType.Apply(account.Balance, create.Amount)
		if err = accounts.SetBalance(ctx, account.ID, balance); err != nil {
			return err
		}
		tx = ledger.NewTransaction(account.ID, txType, create.Amount, create.Description, balance)
		return transactions.Create(ctx, tx)
	})
	if err != nil {
		logger.Error("record transaction failed", "error", err)
		return nil, err
	}
	logger.Info("transaction recorded", "transactionID", tx.ID, "balance", tx.Balance)
	s.emit(ctx, ledger.TransactionRecorded{Transaction: *tx})
	return tx, nil
}

// RemoveTransaction deletes a transaction and reverses its balance delta on
// the owning account. If the account no longer exists the reversal is
// silently skipped. The returned transaction keeps its stored snapshot, which
// is stale relative to the account's new balance by design.
func (s *Service) RemoveTransaction(ctx context.Context, id uuid.UUID) (tx *ledger.Transaction, err error) {
	reversed := false
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		transactions, err := uow.TransactionRepository()
		if err != nil {
			return err
		}

		tx, err = transactions.Delete(ctx, id)
		if err != nil {
			return err
		}
		account, err := accounts.Get(ctx, tx.AccountID)
		if err != nil {
			// Owning account already gone; nothing to reverse.
			return nil
		}
		reversed = true
		return accounts.SetBalance(ctx, account.ID, tx.Type.Reverse(account.Balance, tx.Amount))
	})
	if err != nil {
		s.logger.Error("remove transaction failed", "transactionID", id, "error", err)
		return nil, err
	}
	s.logger.Info("transaction removed", "transactionID", id, "reversed", reversed)
	s.emit(ctx, ledger.TransactionReversed{Transaction: *tx, Reversed: reversed})
	return tx, nil
}

// GetTransaction retrieves one transaction by id.
func (s *Service) GetTransaction(ctx context.Context, id uuid.UUID) (tx *ledger.Transaction, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		tx, err = repo.Get(ctx, id)
		return err
	})
	return tx, err
}

// ListTransactions returns transactions in insertion order, optionally
// filtered to a single account.
func (s *Service) ListTransactions(
	ctx context.Context,
	accountID *uuid.UUID,
) (txs []*ledger.Transaction, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		if accountID != nil {
			txs, err = repo.ListByAccount(ctx, *accountID)
		} else {
			txs, err = repo.List(ctx)
		}
		return err
	})
	return txs, err
}

// UpdateTransactionDescription updates the only mutable transaction field.
func (s *Service) UpdateTransactionDescription(
	ctx context.Context,
	id uuid.UUID,
	update dto.TransactionUpdate,
) (tx *ledger.Transaction, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		tx, err = repo.PartialUpdate(ctx, id, update)
		return err
	})
	return tx, err
}

// ValidateBalance reports whether an account's cached balance is non-negative.
func (s *Service) ValidateBalance(ctx context.Context, accountID uuid.UUID) (check *BalanceCheck, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		a, err := repo.Get(ctx, accountID)
		if err != nil {
			return err
		}
		check = &BalanceCheck{
			AccountID: a.ID,
			Balance:   a.Balance,
			IsValid:   a.Balance.GreaterThanOrEqual(decimal.Zero),
		}
		return nil
	})
	return check, err
}

func (s *Service) emit(ctx context.Context, event eventbus.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Emit(ctx, event); err != nil {
		s.logger.Warn("event emit failed", "type", event.Type(), "error", err)
	}
}
