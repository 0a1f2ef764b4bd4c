package initializer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bankdash/backend/pkg/dto"
	ledgersvc "github.com/bankdash/backend/pkg/service/ledger"
	"github.com/shopspring/decimal"
)

// SeedDemoData loads a small demo data set through the ledger service so all
// balances and snapshots come out consistent: two accounts and a few
// transactions, enough for the dashboard to render on a fresh process.
func SeedDemoData(ctx context.Context, svc *ledgersvc.Service, logger *slog.Logger) error {
	savings, err := svc.CreateAccount(ctx, dto.AccountCreate{
		AccountName:    "John Doe Savings",
		AccountType:    "Savings",
		InitialBalance: decimal.NewFromInt(4500),
	})
	if err != nil {
		return fmt.Errorf("seed: create savings account: %w", err)
	}
	checking, err := svc.CreateAccount(ctx, dto.AccountCreate{
		AccountName:    "John Doe Checking",
		AccountType:    "Checking",
		InitialBalance: decimal.NewFromInt(2700),
	})
	if err != nil {
		return fmt.Errorf("seed: create checking account: %w", err)
	}

	seedTxs := []dto.TransactionCreate{
		{AccountID: savings.ID, Type: "deposit", Amount: decimal.NewFromInt(1000), Description: "Salary Deposit"},
		{AccountID: savings.ID, Type: "withdrawal", Amount: decimal.NewFromInt(500), Description: "ATM Withdrawal"},
		{AccountID: checking.ID, Type: "transfer", Amount: decimal.NewFromInt(200), Description: "Transfer to Savings"},
	}
	for _, tx := range seedTxs {
		if _, err := svc.RecordTransaction(ctx, tx); err != nil {
			return fmt.Errorf("seed: record %s: %w", tx.Type, err)
		}
	}

	logger.Info("demo data seeded", "accounts", 2, "transactions", len(seedTxs))
	return nil
}
