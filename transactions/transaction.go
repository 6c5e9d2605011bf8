package transactions

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// --- Models ---

type Type string

const (
	Deposit  Type = "DEPOSIT"
	Withdraw Type = "WITHDRAW"
)

type Transaction struct {
	ID        uuid.UUID `json:"id"`
	AccountNo int       `json:"account_no"`
	Type      Type      `json:"transaction_type"`
	Amount    int64     `json:"amount"`
	Sequence  int       `json:"sequence"`
	Timestamp time.Time `json:"timestamp"`
}

func (t Transaction) String() string {
	return fmt.Sprintf("#%d %s %-8s %d", t.Sequence, t.Timestamp.Format(time.DateTime), t.Type, t.Amount)
}

// --- Log ---

// Log is an append-only, per-account transaction history kept in memory.
type Log struct {
	mu      sync.RWMutex
	entries map[int][]Transaction
}

func NewLog() *Log {
	return &Log{entries: make(map[int][]Transaction)}
}

// Append stores tx at the end of its account's history. Zero ID and
// Timestamp are filled in; Sequence is always the next position.
func (l *Log) Append(tx Transaction) Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	if tx.Timestamp.IsZero() {
		tx.Timestamp = time.Now()
	}
	tx.Sequence = len(l.entries[tx.AccountNo]) + 1
	l.entries[tx.AccountNo] = append(l.entries[tx.AccountNo], tx)
	return tx
}

// List returns a copy of the account's history in creation order. It is
// never nil.
func (l *Log) List(accountNo int) []Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Transaction, len(l.entries[accountNo]))
	copy(out, l.entries[accountNo])
	return out
}
