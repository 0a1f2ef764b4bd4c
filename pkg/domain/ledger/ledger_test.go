package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Run("valid account", func(t *testing.T) {
		a, err := NewAccount("Rainy Day Fund", "Savings", decimal.NewFromInt(100))
		require.NoError(t, err)
		assert.Equal(t, "Rainy Day Fund", a.AccountName)
		assert.Equal(t, "Savings", a.AccountType)
		assert.True(t, a.Balance.Equal(decimal.NewFromInt(100)))
		assert.NotEqual(t, "", a.ID.String())
		assert.Len(t, a.AccountNumber, 10)
		assert.False(t, a.CreatedAt.IsZero())
	})

	t.Run("zero initial balance", func(t *testing.T) {
		a, err := NewAccount("X", "Savings", decimal.Decimal{})
		require.NoError(t, err)
		assert.True(t, a.Balance.IsZero())
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := NewAccount("", "Savings", decimal.Zero)
		assert.ErrorIs(t, err, ErrAccountFieldsRequired)
	})

	t.Run("missing type", func(t *testing.T) {
		_, err := NewAccount("Fund", "   ", decimal.Zero)
		assert.ErrorIs(t, err, ErrAccountFieldsRequired)
	})
}

func TestParseTransactionType(t *testing.T) {
	for _, valid := range []string{"deposit", "withdrawal", "transfer"} {
		txType, err := ParseTransactionType(valid)
		require.NoError(t, err)
		assert.Equal(t, TransactionType(valid), txType)
	}

	for _, invalid := range []string{"", "Deposit", "payment", "DEPOSIT"} {
		_, err := ParseTransactionType(invalid)
		assert.ErrorIs(t, err, ErrInvalidTransactionType, "type %q", invalid)
	}
}

func TestApplyAndReverse(t *testing.T) {
	balance := decimal.NewFromInt(5000)
	amount := decimal.NewFromInt(750)

	tests := []struct {
		txType       TransactionType
		wantApplied  int64
		wantReversed int64
	}{
		{TypeDeposit, 5750, 5000},
		{TypeWithdrawal, 4250, 5000},
		{TypeTransfer, 4250, 5000},
	}
	for _, tt := range tests {
		t.Run(string(tt.txType), func(t *testing.T) {
			applied := tt.txType.Apply(balance, amount)
			assert.True(t, applied.Equal(decimal.NewFromInt(tt.wantApplied)),
				"applied %s", applied)
			reversed := tt.txType.Reverse(applied, amount)
			assert.True(t, reversed.Equal(decimal.NewFromInt(tt.wantReversed)),
				"reversed %s", reversed)
		})
	}
}

func TestDefaultDescription(t *testing.T) {
	assert.Equal(t, "Deposit", TypeDeposit.DefaultDescription())
	assert.Equal(t, "Withdrawal", TypeWithdrawal.DefaultDescription())
	assert.Equal(t, "Transfer", TypeTransfer.DefaultDescription())
}

func TestNewTransaction(t *testing.T) {
	a, err := NewAccount("Main", "Checking", decimal.NewFromInt(1000))
	require.NoError(t, err)

	t.Run("explicit description", func(t *testing.T) {
		tx := NewTransaction(a.ID, TypeDeposit, decimal.NewFromInt(10), "Coffee refund", decimal.NewFromInt(1010))
		assert.Equal(t, "Coffee refund", tx.Description)
		assert.Equal(t, a.ID, tx.AccountID)
		assert.True(t, tx.Balance.Equal(decimal.NewFromInt(1010)))
	})

	t.Run("defaulted description", func(t *testing.T) {
		tx := NewTransaction(a.ID, TypeWithdrawal, decimal.NewFromInt(10), "", decimal.NewFromInt(990))
		assert.Equal(t, "Withdrawal", tx.Description)
	})
}
