package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/suvidhapay/wallet/internal/domain"
)

type fakeTransactionRepository struct {
	transactions []domain.Transaction
	nextID       int64
}

func (r *fakeTransactionRepository) CreateTransaction(transaction *domain.Transaction) error {
	r.nextID++
	transaction.ID = r.nextID
	transaction.TransactionDate = time.Now()
	// prepend: the store returns newest first
	r.transactions = append([]domain.Transaction{*transaction}, r.transactions...)
	return nil
}

func (r *fakeTransactionRepository) TransactionsByUser(userID int64) ([]domain.Transaction, error) {
	var out []domain.Transaction
	for _, transaction := range r.transactions {
		if transaction.UserID == userID {
			out = append(out, transaction)
		}
	}
	return out, nil
}

func TestSaveTransaction(t *testing.T) {
	userRepo := newFakeUserRepository()
	user := seedUser(t, userRepo, "a@x.com", "s1")

	repo := &fakeTransactionRepository{}
	svc := NewTransactionService(repo, userRepo)

	amount := decimal.RequireFromString("50.00")
	transaction, err := svc.Save(user.ID, "9999999999", amount, "")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if transaction.ID == 0 {
		t.Fatal("expected an assigned id")
	}
	if transaction.Type != domain.TransactionTypeQRPayment {
		t.Fatalf("type=%q want=%q", transaction.Type, domain.TransactionTypeQRPayment)
	}
	if transaction.Status != domain.TransactionStatusCompleted {
		t.Fatalf("status=%q want=%q", transaction.Status, domain.TransactionStatusCompleted)
	}
	if !transaction.Amount.Equal(amount) {
		t.Fatalf("amount=%s want=%s", transaction.Amount, amount)
	}
	if _, err := uuid.Parse(transaction.Reference); err != nil {
		t.Fatalf("reference %q is not a UUID: %v", transaction.Reference, err)
	}
}

func TestSaveTransactionUnknownUser(t *testing.T) {
	repo := &fakeTransactionRepository{}
	svc := NewTransactionService(repo, newFakeUserRepository())

	_, err := svc.Save(42, "9999999999", decimal.RequireFromString("50.00"), "")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound, got %v", err)
	}
	if len(repo.transactions) != 0 {
		t.Fatalf("transactions=%d want=0", len(repo.transactions))
	}
}

func TestSaveTransactionBadAmount(t *testing.T) {
	userRepo := newFakeUserRepository()
	user := seedUser(t, userRepo, "a@x.com", "s1")
	svc := NewTransactionService(&fakeTransactionRepository{}, userRepo)

	for _, amount := range []string{"0", "-5.00"} {
		_, err := svc.Save(user.ID, "9999999999", decimal.RequireFromString(amount), "")
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Fatalf("amount=%s want ErrInvalidAmount, got %v", amount, err)
		}
	}
}

func TestTransactionsNewestFirst(t *testing.T) {
	userRepo := newFakeUserRepository()
	user := seedUser(t, userRepo, "a@x.com", "s1")

	repo := &fakeTransactionRepository{}
	svc := NewTransactionService(repo, userRepo)

	first, err := svc.Save(user.ID, "1111111111", decimal.RequireFromString("10.00"), "")
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Save(user.ID, "2222222222", decimal.RequireFromString("20.00"), "")
	if err != nil {
		t.Fatal(err)
	}

	transactions, err := svc.Transactions(user.ID)
	if err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	if len(transactions) != 2 {
		t.Fatalf("len=%d want=2", len(transactions))
	}
	if transactions[0].ID != second.ID || transactions[1].ID != first.ID {
		t.Fatalf("order=[%d %d] want newest first [%d %d]",
			transactions[0].ID, transactions[1].ID, second.ID, first.ID)
	}
}
