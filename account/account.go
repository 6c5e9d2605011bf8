package account

import (
	"fmt"
	"sync"
	"time"
)

// --- Models ---

type Account struct {
	AccountNo    int       `json:"account_no"`
	PasswordHash []byte    `json:"-"`
	Balance      int64     `json:"balance"`
	CreatedAt    time.Time `json:"created_at"`
}

func (a Account) String() string {
	return fmt.Sprintf("Account No.: %d, Balance: %d", a.AccountNo, a.Balance)
}

type record struct {
	mu  sync.Mutex
	acc Account
}

// --- Store ---

// Store holds account records for the lifetime of the process. The map is
// guarded by mu; each record's balance is guarded by its own lock.
type Store struct {
	mu       sync.RWMutex
	accounts map[int]*record
}

func NewStore() *Store {
	return &Store{accounts: make(map[int]*record)}
}

func (s *Store) CreateAccount(acc Account) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[acc.AccountNo]; exists {
		return nil, fmt.Errorf("could not create account %d: %w", acc.AccountNo, ErrAccountAlreadyRegistered)
	}
	if acc.CreatedAt.IsZero() {
		acc.CreatedAt = time.Now()
	}
	s.accounts[acc.AccountNo] = &record{acc: acc}
	return &acc, nil
}

func (s *Store) GetAccountByAccountNo(accountNo int) (*Account, error) {
	r, err := s.lookup(accountNo)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := r.acc
	return &cp, nil
}

// UpdateAccount runs fn against the stored account while holding that
// account's lock. fn must leave the account untouched when it returns an
// error.
func (s *Store) UpdateAccount(accountNo int, fn func(acc *Account) error) (*Account, error) {
	r, err := s.lookup(accountNo)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := fn(&r.acc); err != nil {
		return nil, err
	}
	cp := r.acc
	return &cp, nil
}

func (s *Store) lookup(accountNo int) (*record, error) {
	s.mu.RLock()
	r, ok := s.accounts[accountNo]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("could not get account %d: %w", accountNo, ErrAccountNotFound)
	}
	return r, nil
}
