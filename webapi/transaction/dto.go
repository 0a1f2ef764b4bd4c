package transaction

import (
	"time"

	"github.com/bankdash/backend/pkg/domain/ledger"
)

// CreateTransactionRequest is the request body for recording a transaction.
// Presence of accountId, type and amount is enforced by the handler so the
// error message matches the API contract; the validator covers format rules.
type CreateTransactionRequest struct {
	AccountID   string  `json:"accountId"`
	Type        string  `json:"type" validate:"omitempty,oneof=deposit withdrawal transfer"`
	Amount      float64 `json:"amount" validate:"omitempty,gt=0"`
	Description string  `json:"description" validate:"omitempty,max=256"`
}

// UpdateTransactionRequest is the request body for a partial transaction
// update. Only the description is mutable.
type UpdateTransactionRequest struct {
	Description string `json:"description" validate:"omitempty,max=256"`
}

// TransactionDTO is the API response representation of a transaction. Balance
// is the snapshot of the owning account's balance right after this
// transaction was applied.
type TransactionDTO struct {
	ID          string  `json:"id"`
	AccountID   string  `json:"accountId"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Balance     float64 `json:"balance"`
}

// ToTransactionDTO maps a domain transaction to its API representation.
func ToTransactionDTO(tx *ledger.Transaction) *TransactionDTO {
	if tx == nil {
		return nil
	}
	return &TransactionDTO{
		ID:          tx.ID.String(),
		AccountID:   tx.AccountID.String(),
		Type:        string(tx.Type),
		Amount:      tx.Amount.InexactFloat64(),
		Description: tx.Description,
		Date:        tx.Date.Format(time.RFC3339),
		Balance:     tx.Balance.InexactFloat64(),
	}
}

// ToTransactionDTOs maps a list of transactions, never returning a nil slice
// so the JSON stays an array.
func ToTransactionDTOs(txs []*ledger.Transaction) []*TransactionDTO {
	out := make([]*TransactionDTO, 0, len(txs))
	for _, tx := range txs {
		out = append(out, ToTransactionDTO(tx))
	}
	return out
}
