package service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/suvidhapay/wallet/internal/domain"
)

type TransactionRepository interface {
	CreateTransaction(transaction *domain.Transaction) error
	TransactionsByUser(userID int64) ([]domain.Transaction, error)
}

type transactionUserRepository interface {
	UserByID(id int64) (*domain.User, error)
}

type TransactionService struct {
	repo     TransactionRepository
	userRepo transactionUserRepository
}

func NewTransactionService(repo TransactionRepository, userRepo transactionUserRepository) *TransactionService {
	return &TransactionService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// Save appends a COMPLETED payment to the owning user's ledger. The user must
// exist. The balance is not touched here: recording and settlement are
// separate concerns and this ledger only records.
func (s *TransactionService) Save(userID int64, recipientNumber string, amount decimal.Decimal, transactionType string) (*domain.Transaction, error) {
	if amount.Sign() <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	if _, err := s.userRepo.UserByID(userID); err != nil {
		return nil, err
	}

	if transactionType == "" {
		transactionType = domain.TransactionTypeQRPayment
	}

	transaction := &domain.Transaction{
		UserID:          userID,
		Reference:       uuid.NewString(),
		RecipientNumber: recipientNumber,
		Amount:          amount,
		Type:            transactionType,
		Status:          domain.TransactionStatusCompleted,
	}

	if err := s.repo.CreateTransaction(transaction); err != nil {
		return nil, err
	}

	return transaction, nil
}

// Transactions returns the user's ledger newest first.
func (s *TransactionService) Transactions(userID int64) ([]domain.Transaction, error) {
	return s.repo.TransactionsByUser(userID)
}
