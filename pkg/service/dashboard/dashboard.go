// Package dashboard aggregates the ledger into the summary consumed by the
// dashboard view.
package dashboard

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/bankdash/backend/pkg/domain/ledger"
	"github.com/bankdash/backend/pkg/repository"
	"github.com/shopspring/decimal"
)

// RecentTransactionCount is how many transactions the summary reports.
const RecentTransactionCount = 5

// Summary is a point-in-time aggregation over all accounts and transactions.
type Summary struct {
	TotalBalance       decimal.Decimal
	TotalAccounts      int
	RecentTransactions []*ledger.Transaction
	LastUpdated        time.Time
}

// Service computes dashboard summaries.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a dashboard service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{uow: uow, logger: logger.With("service", "dashboard")}
}

// Summary returns the total balance over all accounts, the account count and
// the most recent transactions, newest first. Sorting happens on a copy so
// the store's insertion order is left alone.
func (s *Service) Summary(ctx context.Context) (summary *Summary, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}

		accounts, err := accountRepo.List(ctx)
		if err != nil {
			return err
		}
		txs, err := txRepo.List(ctx)
		if err != nil {
			return err
		}

		total := decimal.Zero
		for _, a := range accounts {
			total = total.Add(a.Balance)
		}

		recent := make([]*ledger.Transaction, len(txs))
		copy(recent, txs)
		sort.SliceStable(recent, func(i, j int) bool {
			return recent[i].Date.After(recent[j].Date)
		})
		if len(recent) > RecentTransactionCount {
			recent = recent[:RecentTransactionCount]
		}

		summary = &Summary{
			TotalBalance:       total,
			TotalAccounts:      len(accounts),
			RecentTransactions: recent,
			LastUpdated:        time.Now(),
		}
		return nil
	})
	if err != nil {
		s.logger.Error("summary failed", "error", err)
		return nil, err
	}
	return summary, nil
}
