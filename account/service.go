package account

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"ubank/auth"
	"ubank/transactions"
)

// TransactionRecorder appends money movements to an account's history.
type TransactionRecorder interface {
	CreateTransaction(tx transactions.Transaction) transactions.Transaction
}

type Service struct {
	store          *Store
	recorder       TransactionRecorder
	hasher         *auth.Hasher
	openingBalance int64
	logger         *zap.Logger
}

type Option func(*Service)

// WithOpeningBalance sets the balance new accounts start with. Negative
// values are ignored.
func WithOpeningBalance(balance int64) Option {
	return func(s *Service) {
		if balance >= 0 {
			s.openingBalance = balance
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewService(store *Store, recorder TransactionRecorder, hasher *auth.Hasher, opts ...Option) *Service {
	s := &Service{
		store:    store,
		recorder: recorder,
		hasher:   hasher,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("account")
	return s
}

func (s *Service) Register(accountNo int, password string) (*Account, error) {
	if err := validateCredentials(accountNo, password); err != nil {
		return nil, err
	}
	if _, err := s.store.GetAccountByAccountNo(accountNo); err == nil {
		return nil, fmt.Errorf("could not register account %d: %w", accountNo, ErrAccountAlreadyRegistered)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	acc, err := s.store.CreateAccount(Account{
		AccountNo:    accountNo,
		PasswordHash: hash,
		Balance:      s.openingBalance,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("account registered", zap.Int("account_no", acc.AccountNo), zap.Int64("balance", acc.Balance))
	return acc, nil
}

func (s *Service) Login(accountNo int, password string) (*Account, error) {
	if err := validateCredentials(accountNo, password); err != nil {
		return nil, err
	}
	acc, err := s.store.GetAccountByAccountNo(accountNo)
	if err != nil {
		s.logger.Info("login failed", zap.Int("account_no", accountNo), zap.String("reason", "not found"))
		return nil, err
	}
	if err := s.hasher.Compare(acc.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrMismatch) {
			s.logger.Info("login failed", zap.Int("account_no", accountNo), zap.String("reason", "incorrect password"))
			return nil, fmt.Errorf("could not log in to account %d: %w", accountNo, ErrIncorrectPassword)
		}
		return nil, err
	}
	s.logger.Info("login succeeded", zap.Int("account_no", accountNo))
	return acc, nil
}

func (s *Service) GetAccount(accountNo int) (*Account, error) {
	return s.store.GetAccountByAccountNo(accountNo)
}

func (s *Service) Deposit(accountNo int, amount int64) (*Account, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("deposit amount must be positive, got %d: %w", amount, ErrInvalidInput)
	}
	acc, err := s.store.UpdateAccount(accountNo, func(acc *Account) error {
		if acc.Balance > math.MaxInt64-amount {
			return fmt.Errorf("deposit of %d would overflow balance: %w", amount, ErrInvalidInput)
		}
		acc.Balance += amount
		s.recorder.CreateTransaction(transactions.Transaction{
			AccountNo: accountNo,
			Type:      transactions.Deposit,
			Amount:    amount,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("deposit", zap.Int("account_no", accountNo), zap.Int64("amount", amount), zap.Int64("balance", acc.Balance))
	return acc, nil
}

func (s *Service) Withdraw(accountNo int, amount int64) (*Account, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("withdraw amount must be positive, got %d: %w", amount, ErrInvalidInput)
	}
	acc, err := s.store.UpdateAccount(accountNo, func(acc *Account) error {
		if amount > acc.Balance {
			return fmt.Errorf("could not withdraw %d from balance %d: %w", amount, acc.Balance, ErrInsufficientBalance)
		}
		acc.Balance -= amount
		s.recorder.CreateTransaction(transactions.Transaction{
			AccountNo: accountNo,
			Type:      transactions.Withdraw,
			Amount:    amount,
		})
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientBalance) {
			s.logger.Info("withdraw rejected", zap.Int("account_no", accountNo), zap.Int64("amount", amount))
		}
		return nil, err
	}
	s.logger.Info("withdraw", zap.Int("account_no", accountNo), zap.Int64("amount", amount), zap.Int64("balance", acc.Balance))
	return acc, nil
}

func validateCredentials(accountNo int, password string) error {
	if accountNo <= 0 {
		return fmt.Errorf("account number must be positive, got %d: %w", accountNo, ErrInvalidInput)
	}
	if password == "" {
		return fmt.Errorf("password must not be empty: %w", ErrInvalidInput)
	}
	return nil
}
