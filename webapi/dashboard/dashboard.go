// Package dashboard exposes the aggregate endpoints backing the dashboard
// view: balance validation and the summary card.
package dashboard

import (
	"time"

	"github.com/bankdash/backend/pkg/service/dashboard"
	ledgersvc "github.com/bankdash/backend/pkg/service/ledger"
	"github.com/bankdash/backend/webapi/common"
	"github.com/bankdash/backend/webapi/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// BalanceCheckDTO is the API representation of a balance validation.
type BalanceCheckDTO struct {
	AccountID string  `json:"accountId"`
	Balance   float64 `json:"balance"`
	IsValid   bool    `json:"isValid"`
}

// SummaryDTO is the API representation of the dashboard summary.
type SummaryDTO struct {
	TotalBalance       float64                       `json:"totalBalance"`
	TotalAccounts      int                           `json:"totalAccounts"`
	RecentTransactions []*transaction.TransactionDTO `json:"recentTransactions"`
	LastUpdated        string                        `json:"lastUpdated"`
}

// Routes registers the utility endpoints:
//
//	GET /api/validate-balance/:accountId : check an account's balance sign
//	GET /api/dashboard-summary           : totals plus recent transactions
func Routes(app *fiber.App, ledgerSvc *ledgersvc.Service, dashboardSvc *dashboard.Service) {
	app.Get("/api/validate-balance/:accountId", ValidateBalance(ledgerSvc))
	app.Get("/api/dashboard-summary", Summary(dashboardSvc))
}

// ValidateBalance returns a handler reporting whether an account's cached
// balance is non-negative.
func ValidateBalance(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("accountId"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusNotFound, "Account not found")
		}
		check, err := svc.ValidateBalance(c.Context(), id)
		if err != nil {
			return common.FailWith(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, BalanceCheckDTO{
			AccountID: check.AccountID.String(),
			Balance:   check.Balance.InexactFloat64(),
			IsValid:   check.IsValid,
		})
	}
}

// Summary returns a handler serving the dashboard aggregation.
func Summary(svc *dashboard.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summary, err := svc.Summary(c.Context())
		if err != nil {
			return common.FailWith(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, SummaryDTO{
			TotalBalance:       summary.TotalBalance.InexactFloat64(),
			TotalAccounts:      summary.TotalAccounts,
			RecentTransactions: transaction.ToTransactionDTOs(summary.RecentTransactions),
			LastUpdated:        summary.LastUpdated.Format(time.RFC3339),
		})
	}
}
