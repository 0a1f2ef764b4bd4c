package eventbus_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	infraeventbus "github.com/bankdash/backend/infra/eventbus"
	"github.com/bankdash/backend/pkg/domain/ledger"
	"github.com/bankdash/backend/pkg/eventbus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus() *infraeventbus.MemoryEventBus {
	return infraeventbus.NewWithMemory(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestMemoryEventBusDispatch(t *testing.T) {
	bus := newTestBus()

	var got []string
	bus.Register(ledger.EventAccountCreated, func(ctx context.Context, e eventbus.Event) error {
		got = append(got, e.Type())
		return nil
	})

	ctx := context.Background()
	require.NoError(t, bus.Emit(ctx, ledger.AccountCreated{}))
	require.NoError(t, bus.Emit(ctx, ledger.TransactionRecorded{}))

	// Only the registered type reached the handler; both were retained.
	assert.Equal(t, []string{ledger.EventAccountCreated}, got)
	require.Len(t, bus.Published(), 2)
	assert.Equal(t, ledger.EventTransactionRecorded, bus.Published()[1].Type())
}

func TestMemoryEventBusMultipleHandlers(t *testing.T) {
	bus := newTestBus()

	calls := 0
	handler := func(ctx context.Context, e eventbus.Event) error {
		calls++
		return nil
	}
	bus.Register(ledger.EventAccountDeleted, handler)
	bus.Register(ledger.EventAccountDeleted, handler)

	require.NoError(t, bus.Emit(context.Background(), ledger.AccountDeleted{}))
	assert.Equal(t, 2, calls)
}

func TestMemoryEventBusHandlerErrorDoesNotFailEmit(t *testing.T) {
	bus := newTestBus()

	ran := false
	bus.Register(ledger.EventTransactionReversed, func(ctx context.Context, e eventbus.Event) error {
		return errors.New("boom")
	})
	bus.Register(ledger.EventTransactionReversed, func(ctx context.Context, e eventbus.Event) error {
		ran = true
		return nil
	})

	require.NoError(t, bus.Emit(context.Background(), ledger.TransactionReversed{}))
	assert.True(t, ran, "later handlers still run after an error")
}
