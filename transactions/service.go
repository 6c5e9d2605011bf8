package transactions

import "go.uber.org/zap"

type Service struct {
	log    *Log
	logger *zap.Logger
}

func NewService(log *Log, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{log: log, logger: logger.Named("transactions")}
}

// CreateTransaction records tx without further validation; callers have
// already checked the amount and the account.
func (s *Service) CreateTransaction(tx Transaction) Transaction {
	stored := s.log.Append(tx)
	s.logger.Debug("transaction recorded",
		zap.Int("account_no", stored.AccountNo),
		zap.String("type", string(stored.Type)),
		zap.Int64("amount", stored.Amount),
		zap.Int("sequence", stored.Sequence),
		zap.Stringer("id", stored.ID),
	)
	return stored
}

func (s *Service) GetTransactions(accountNo int) []Transaction {
	return s.log.List(accountNo)
}
