package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionCreate carries the fields needed to record a transaction against
// an account. Description is optional; the service defaults it to the
// capitalized type name.
type TransactionCreate struct {
	AccountID   uuid.UUID
	Type        string
	Amount      decimal.Decimal
	Description string
}

// TransactionUpdate is a partial update of a transaction. Only the
// description is mutable after creation.
type TransactionUpdate struct {
	Description *string
}
