// Package dto defines the data-transfer objects passed between the service
// layer and the repositories.
package dto

import "github.com/shopspring/decimal"

// AccountCreate carries the fields needed to open a new account.
type AccountCreate struct {
	AccountName    string
	AccountType    string
	InitialBalance decimal.Decimal
}

// AccountUpdate is a partial update of an account's mutable fields. Nil
// pointers mean "leave unchanged". Balance is deliberately absent: it is only
// written through the ledger service's transaction operations.
type AccountUpdate struct {
	AccountName *string
	AccountType *string
}
