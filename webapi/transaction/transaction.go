// Package transaction exposes the HTTP endpoints for recording, inspecting
// and deleting transactions.
package transaction

import (
	"github.com/bankdash/backend/pkg/domain/ledger"
	"github.com/bankdash/backend/pkg/dto"
	ledgersvc "github.com/bankdash/backend/pkg/service/ledger"
	"github.com/bankdash/backend/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Routes registers the transaction endpoints:
//
//	GET    /api/transactions        : list transactions, ?accountId= filters
//	GET    /api/transactions/:id    : fetch one transaction
//	POST   /api/transactions        : record a transaction (mutates the balance)
//	PATCH  /api/transactions/:id    : update the description
//	DELETE /api/transactions/:id    : delete and reverse the balance mutation
func Routes(app *fiber.App, svc *ledgersvc.Service) {
	app.Get("/api/transactions", ListTransactions(svc))
	app.Get("/api/transactions/:id", GetTransaction(svc))
	app.Post("/api/transactions", CreateTransaction(svc))
	app.Patch("/api/transactions/:id", UpdateTransaction(svc))
	app.Delete("/api/transactions/:id", DeleteTransaction(svc))
}

// ListTransactions returns a handler that lists transactions in insertion
// order. An accountId query filters to one account; a value that matches no
// account (or does not parse) yields an empty list, not an error.
func ListTransactions(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var filter *uuid.UUID
		if raw := c.Query("accountId"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return common.SuccessJSON(c, fiber.StatusOK, ToTransactionDTOs(nil))
			}
			filter = &id
		}
		txs, err := svc.ListTransactions(c.Context(), filter)
		if err != nil {
			return common.FailWith(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, ToTransactionDTOs(txs))
	}
}

// GetTransaction returns a handler that fetches a single transaction.
func GetTransaction(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusNotFound, "Transaction not found")
		}
		tx, err := svc.GetTransaction(c.Context(), id)
		if err != nil {
			return common.FailWith(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, ToTransactionDTO(tx))
	}
}

// CreateTransaction returns a handler that records a transaction and applies
// its balance delta to the owning account.
func CreateTransaction(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateTransactionRequest](c)
		if input == nil {
			return err
		}
		if input.AccountID == "" || input.Type == "" || input.Amount == 0 {
			return common.FailWith(c, ledger.ErrTransactionFieldsRequired)
		}
		accountID, err := uuid.Parse(input.AccountID)
		if err != nil {
			return common.FailWith(c, ledger.ErrAccountNotFound)
		}
		tx, err := svc.RecordTransaction(c.Context(), dto.TransactionCreate{
			AccountID:   accountID,
			Type:        input.Type,
			Amount:      decimal.NewFromFloat(input.Amount),
			Description: input.Description,
		})
		if err != nil {
			return common.FailWith(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusCreated, ToTransactionDTO(tx))
	}
}

// UpdateTransaction returns a handler for updating a transaction's
// description, the only mutable field.
func UpdateTransaction(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusNotFound, "Transaction not found")
		}
		input, err := common.BindAndValidate[UpdateTransactionRequest](c)
		if input == nil {
			return err
		}
		update := dto.TransactionUpdate{}
		if input.Description != "" {
			update.Description = &input.Description
		}
		tx, err := svc.UpdateTransactionDescription(c.Context(), id, update)
		if err != nil {
			return common.FailWith(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, ToTransactionDTO(tx))
	}
}

// DeleteTransaction returns a handler that removes a transaction and reverses
// its effect on the owning account's balance.
func DeleteTransaction(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusNotFound, "Transaction not found")
		}
		tx, err := svc.RemoveTransaction(c.Context(), id)
		if err != nil {
			return common.FailWith(c, err)
		}
		return common.SuccessMessageJSON(c, fiber.StatusOK, "Transaction deleted", ToTransactionDTO(tx))
	}
}
