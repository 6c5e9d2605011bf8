package account

import (
	"errors"
	"testing"
)

func TestStoreCreateAndGet(t *testing.T) {
	s := NewStore()
	created, err := s.CreateAccount(Account{AccountNo: 1, Balance: 10})
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("CreatedAt should be set")
	}

	if _, err := s.CreateAccount(Account{AccountNo: 1}); !errors.Is(err, ErrAccountAlreadyRegistered) {
		t.Fatalf("want ErrAccountAlreadyRegistered, got %v", err)
	}

	got, err := s.GetAccountByAccountNo(1)
	if err != nil {
		t.Fatalf("GetAccountByAccountNo: %v", err)
	}
	if got.Balance != 10 {
		t.Fatalf("balance=%d want=10", got.Balance)
	}
	if _, err := s.GetAccountByAccountNo(2); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
}

func TestStoreUpdateAccount(t *testing.T) {
	s := NewStore()
	if _, err := s.CreateAccount(Account{AccountNo: 3, Balance: 5}); err != nil {
		t.Fatal(err)
	}

	updated, err := s.UpdateAccount(3, func(acc *Account) error {
		acc.Balance += 7
		return nil
	})
	if err != nil {
		t.Fatalf("UpdateAccount: %v", err)
	}
	if updated.Balance != 12 {
		t.Fatalf("balance=%d want=12", updated.Balance)
	}

	boom := errors.New("boom")
	if _, err := s.UpdateAccount(3, func(*Account) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("want fn error, got %v", err)
	}
	if _, err := s.UpdateAccount(4, func(*Account) error { return nil }); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
}

func TestAccountString(t *testing.T) {
	a := Account{AccountNo: 1001, Balance: 300}
	if got, want := a.String(), "Account No.: 1001, Balance: 300"; got != want {
		t.Fatalf("String()=%q want %q", got, want)
	}
}
