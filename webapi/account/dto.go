package account

import (
	"time"

	"github.com/bankdash/backend/pkg/domain/ledger"
)

// CreateAccountRequest is the request body for opening an account.
// Name and type requiredness is enforced by the service so the error message
// matches the API contract.
type CreateAccountRequest struct {
	AccountName    string  `json:"accountName" validate:"omitempty,max=128"`
	AccountType    string  `json:"accountType" validate:"omitempty,max=64"`
	InitialBalance float64 `json:"initialBalance"`
}

// UpdateAccountRequest is the request body for a partial account update.
// Empty fields are left unchanged.
type UpdateAccountRequest struct {
	AccountName string `json:"accountName" validate:"omitempty,max=128"`
	AccountType string `json:"accountType" validate:"omitempty,max=64"`
}

// AccountDTO is the API response representation of an account.
type AccountDTO struct {
	ID            string  `json:"id"`
	AccountNumber string  `json:"accountNumber"`
	AccountName   string  `json:"accountName"`
	AccountType   string  `json:"accountType"`
	Balance       float64 `json:"balance"`
	CreatedAt     string  `json:"createdAt"`
}

// ToAccountDTO maps a domain account to its API representation.
func ToAccountDTO(a *ledger.Account) *AccountDTO {
	if a == nil {
		return nil
	}
	return &AccountDTO{
		ID:            a.ID.String(),
		AccountNumber: a.AccountNumber,
		AccountName:   a.AccountName,
		AccountType:   a.AccountType,
		Balance:       a.Balance.InexactFloat64(),
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
}

// ToAccountDTOs maps a list of accounts, never returning a nil slice so the
// JSON stays an array.
func ToAccountDTOs(accounts []*ledger.Account) []*AccountDTO {
	out := make([]*AccountDTO, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, ToAccountDTO(a))
	}
	return out
}
