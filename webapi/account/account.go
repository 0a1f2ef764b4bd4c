// Package account exposes the HTTP endpoints for account CRUD.
package account

import (
	"github.com/bankdash/backend/pkg/dto"
	ledgersvc "github.com/bankdash/backend/pkg/service/ledger"
	"github.com/bankdash/backend/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Routes registers the account endpoints:
//
//	GET    /api/accounts        : list all accounts
//	GET    /api/accounts/:id    : fetch one account
//	POST   /api/accounts        : create an account
//	PATCH  /api/accounts/:id    : partial update (name, type)
//	DELETE /api/accounts/:id    : delete the account and its transactions
func Routes(app *fiber.App, svc *ledgersvc.Service) {
	app.Get("/api/accounts", ListAccounts(svc))
	app.Get("/api/accounts/:id", GetAccount(svc))
	app.Post("/api/accounts", CreateAccount(svc))
	app.Patch("/api/accounts/:id", UpdateAccount(svc))
	app.Delete("/api/accounts/:id", DeleteAccount(svc))
}

// ListAccounts returns a handler that lists every account in creation order.
func ListAccounts(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts, err := svc.ListAccounts(c.Context())
		if err != nil {
			return common.FailWith(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, ToAccountDTOs(accounts))
	}
}

// GetAccount returns a handler that fetches a single account. Ids that do not
// parse are treated the same as unknown ids.
func GetAccount(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusNotFound, "Account not found")
		}
		a, err := svc.GetAccount(c.Context(), id)
		if err != nil {
			return common.FailWith(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, ToAccountDTO(a))
	}
}

// CreateAccount returns a handler that opens a new account. The initial
// balance defaults to zero when omitted.
func CreateAccount(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err
		}
		a, err := svc.CreateAccount(c.Context(), dto.AccountCreate{
			AccountName:    input.AccountName,
			AccountType:    input.AccountType,
			InitialBalance: decimal.NewFromFloat(input.InitialBalance),
		})
		if err != nil {
			return common.FailWith(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusCreated, ToAccountDTO(a))
	}
}

// UpdateAccount returns a handler for partial updates. Only name and type are
// mutable; empty fields are ignored.
func UpdateAccount(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusNotFound, "Account not found")
		}
		input, err := common.BindAndValidate[UpdateAccountRequest](c)
		if input == nil {
			return err
		}
		update := dto.AccountUpdate{}
		if input.AccountName != "" {
			update.AccountName = &input.AccountName
		}
		if input.AccountType != "" {
			update.AccountType = &input.AccountType
		}
		a, err := svc.UpdateAccount(c.Context(), id, update)
		if err != nil {
			return common.FailWith(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, ToAccountDTO(a))
	}
}

// DeleteAccount returns a handler that removes an account and cascades to its
// transactions.
func DeleteAccount(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusNotFound, "Account not found")
		}
		a, err := svc.DeleteAccount(c.Context(), id)
		if err != nil {
			return common.FailWith(c, err)
		}
		return common.SuccessMessageJSON(c, fiber.StatusOK, "Account deleted", ToAccountDTO(a))
	}
}
