package ledger

import "errors"

var (
	// ErrAccountNotFound is returned when an account id does not resolve to a stored account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionNotFound is returned when a transaction id does not resolve to a stored transaction.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInsufficientFunds is returned when a withdrawal amount exceeds the account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountFieldsRequired is returned when an account is created without a name or type.
	ErrAccountFieldsRequired = errors.New("account name and type are required")

	// ErrTransactionFieldsRequired is returned when a transaction is created without its mandatory fields.
	ErrTransactionFieldsRequired = errors.New("account ID, type, and amount are required")

	// ErrInvalidTransactionType is returned when a transaction type is not deposit, withdrawal or transfer.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrAmountMustBePositive is returned when a transaction amount is zero or negative.
	ErrAmountMustBePositive = errors.New("transaction amount must be positive")
)
