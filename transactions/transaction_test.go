package transactions

import (
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetTransactionsEmpty(t *testing.T) {
	s := NewService(NewLog(), nil)
	got := s.GetTransactions(404)
	if got == nil {
		t.Fatal("want empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("len=%d want=0", len(got))
	}
}

func TestCreateTransactionOrdering(t *testing.T) {
	s := NewService(NewLog(), nil)
	s.CreateTransaction(Transaction{AccountNo: 1, Type: Deposit, Amount: 500})
	s.CreateTransaction(Transaction{AccountNo: 2, Type: Deposit, Amount: 9})
	s.CreateTransaction(Transaction{AccountNo: 1, Type: Withdraw, Amount: 200})

	first := s.GetTransactions(1)
	if len(first) != 2 {
		t.Fatalf("len=%d want=2", len(first))
	}
	if first[0].Type != Deposit || first[0].Amount != 500 || first[0].Sequence != 1 {
		t.Fatalf("first[0]=%+v", first[0])
	}
	if first[1].Type != Withdraw || first[1].Amount != 200 || first[1].Sequence != 2 {
		t.Fatalf("first[1]=%+v", first[1])
	}

	second := s.GetTransactions(1)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated reads differ:\n%+v\n%+v", first, second)
	}
	if other := s.GetTransactions(2); len(other) != 1 || other[0].Sequence != 1 {
		t.Fatalf("account 2 history=%+v", other)
	}
}

func TestCreateTransactionKeepsCallerFields(t *testing.T) {
	s := NewService(NewLog(), nil)
	id := uuid.New()
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	stored := s.CreateTransaction(Transaction{ID: id, AccountNo: 3, Type: Deposit, Amount: 1, Timestamp: at})
	if stored.ID != id || !stored.Timestamp.Equal(at) {
		t.Fatalf("caller fields overwritten: %+v", stored)
	}

	generated := s.CreateTransaction(Transaction{AccountNo: 3, Type: Deposit, Amount: 1})
	if generated.ID == uuid.Nil || generated.Timestamp.IsZero() {
		t.Fatalf("zero fields not filled in: %+v", generated)
	}
	if generated.ID == id {
		t.Fatal("generated ID collides with caller ID")
	}
}

func TestListReturnsCopy(t *testing.T) {
	l := NewLog()
	l.Append(Transaction{AccountNo: 1, Type: Deposit, Amount: 10})

	got := l.List(1)
	got[0].Amount = 999

	if l.List(1)[0].Amount != 10 {
		t.Fatal("caller mutation leaked into log")
	}
}

func TestConcurrentAppend(t *testing.T) {
	l := NewLog()
	const n = 200
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			l.Append(Transaction{AccountNo: 1, Type: Deposit, Amount: 1})
		}()
	}
	wg.Wait()

	got := l.List(1)
	if len(got) != n {
		t.Fatalf("len=%d want=%d", len(got), n)
	}
	for i, tx := range got {
		if tx.Sequence != i+1 {
			t.Fatalf("got[%d].Sequence=%d", i, tx.Sequence)
		}
	}
}

func TestCreateTransactionLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s := NewService(NewLog(), zap.New(core))
	s.CreateTransaction(Transaction{AccountNo: 8, Type: Withdraw, Amount: 4})

	entries := logs.FilterMessage("transaction recorded").All()
	if len(entries) != 1 {
		t.Fatalf("entries=%d want=1", len(entries))
	}
	if got := entries[0].ContextMap()["type"]; got != "WITHDRAW" {
		t.Fatalf("type field=%v", got)
	}
}
