package ledger

// Domain events emitted by the ledger service after a mutation commits.
// Event types are namespaced strings so bus subscribers can register per type.

// EventAccountCreated is emitted after an account is created.
const EventAccountCreated = "ledger.account.created"

// EventAccountDeleted is emitted after an account and its transactions are removed.
const EventAccountDeleted = "ledger.account.deleted"

// EventTransactionRecorded is emitted after a transaction is recorded and its
// balance delta applied.
const EventTransactionRecorded = "ledger.transaction.recorded"

// EventTransactionReversed is emitted after a transaction is deleted and its
// balance delta reversed.
const EventTransactionReversed = "ledger.transaction.reversed"

// AccountCreated carries the newly created account.
type AccountCreated struct {
	Account Account
}

// Type implements eventbus.Event.
func (AccountCreated) Type() string { return EventAccountCreated }

// AccountDeleted carries the removed account and the number of cascaded
// transaction deletions.
type AccountDeleted struct {
	Account             Account
	RemovedTransactions int
}

// Type implements eventbus.Event.
func (AccountDeleted) Type() string { return EventAccountDeleted }

// TransactionRecorded carries the newly recorded transaction.
type TransactionRecorded struct {
	Transaction Transaction
}

// Type implements eventbus.Event.
func (TransactionRecorded) Type() string { return EventTransactionRecorded }

// TransactionReversed carries the deleted transaction. Reversed reports
// whether the owning account still existed, i.e. whether the balance delta
// was actually undone.
type TransactionReversed struct {
	Transaction Transaction
	Reversed    bool
}

// Type implements eventbus.Event.
func (TransactionReversed) Type() string { return EventTransactionReversed }
