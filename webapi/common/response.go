// Package common holds the response envelope and request-binding helpers
// shared by all webapi route packages.
package common

import (
	"errors"

	"github.com/bankdash/backend/pkg/domain/ledger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// SuccessJSON writes a success envelope with the given status and payload.
func SuccessJSON(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(Response{Success: true, Data: data})
}

// SuccessMessageJSON writes a success envelope carrying both a message and a
// payload (used by the delete endpoints).
func SuccessMessageJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{Success: true, Message: message, Data: data})
}

// ErrorJSON writes a failure envelope.
func ErrorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Response{Success: false, Message: message})
}

// FailWith maps a service error to its status code and writes the failure
// envelope.
func FailWith(c *fiber.Ctx, err error) error {
	return ErrorJSON(c, ErrorToStatusCode(err), ErrorMessage(err))
}

// ErrorToStatusCode maps domain errors to HTTP status codes. Not-found errors
// map to 404; validation problems and insufficient funds map to 400;
// everything else is a 500.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound),
		errors.Is(err, ledger.ErrTransactionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ledger.ErrAccountFieldsRequired),
		errors.Is(err, ledger.ErrTransactionFieldsRequired),
		errors.Is(err, ledger.ErrInvalidTransactionType),
		errors.Is(err, ledger.ErrAmountMustBePositive),
		errors.Is(err, ledger.ErrInsufficientFunds):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorMessage is the envelope message for an error. Internal faults are not
// echoed to clients.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		return "Account not found"
	case errors.Is(err, ledger.ErrTransactionNotFound):
		return "Transaction not found"
	case errors.Is(err, ledger.ErrAccountFieldsRequired):
		return "Account name and type are required"
	case errors.Is(err, ledger.ErrTransactionFieldsRequired):
		return "Account ID, type, and amount are required"
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return "Insufficient funds"
	case errors.Is(err, ledger.ErrInvalidTransactionType),
		errors.Is(err, ledger.ErrAmountMustBePositive):
		return err.Error()
	default:
		return "Internal server error"
	}
}

// BindAndValidate parses the request body into T and validates it with
// go-playground/validator. On failure it writes the 400 envelope and returns
// nil with the original error.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return nil, ErrorJSON(c, fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}
	return &input, nil
}
