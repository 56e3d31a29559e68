package aware

import "github.com/awaremux/awaremux-go/pkg/hal"

// maxTransactions is the number of usable ids in the 16-bit transaction id
// space. Id 0 is never minted; traces use it for "no transaction".
const maxTransactions = 1<<16 - 1

// Transaction is the context needed to finish processing a HAL response.
type Transaction struct {
	// Op is the command the transaction was minted for.
	Op hal.Op

	// ClientID and SessionID identify the originator (0 when none).
	ClientID  ClientID
	SessionID SessionID

	// MessageID is the application's message id (SendMessage).
	MessageID int

	// Config is the merged configuration sent (EnableAndConfigure).
	Config hal.ConfigRequest

	// OnCapabilities receives the capability record (GetCapabilities).
	OnCapabilities func(hal.Capabilities)
}

// TransactionTable maps in-flight transaction ids to their context.
// It is not safe for concurrent use; the Manager owns it.
type TransactionTable struct {
	last    uint16
	pending map[uint16]Transaction
}

// NewTransactionTable creates an empty table. The first id allocated is 1.
func NewTransactionTable() *TransactionTable {
	return &TransactionTable{
		pending: make(map[uint16]Transaction),
	}
}

// Allocate stores tx under a freshly minted id and returns the id. Ids
// increase by one per allocation and wrap modulo 65536, skipping 0; after
// wraparound an id that is still pending is skipped.
func (t *TransactionTable) Allocate(tx Transaction) (uint16, error) {
	if len(t.pending) >= maxTransactions {
		return 0, ErrTransactionsExhausted
	}
	for {
		t.last++
		if t.last == 0 {
			continue
		}
		if _, busy := t.pending[t.last]; !busy {
			break
		}
	}
	t.pending[t.last] = tx
	return t.last, nil
}

// Resolve removes and returns the context stored under id. The boolean is
// false for an unknown id.
func (t *TransactionTable) Resolve(id uint16) (Transaction, bool) {
	tx, ok := t.pending[id]
	if ok {
		delete(t.pending, id)
	}
	return tx, ok
}

// Pending returns true if id is in flight.
func (t *TransactionTable) Pending(id uint16) bool {
	_, ok := t.pending[id]
	return ok
}

// Len returns the number of transactions in flight.
func (t *TransactionTable) Len() int {
	return len(t.pending)
}
