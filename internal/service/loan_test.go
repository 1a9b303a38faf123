package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/suvidhapay/wallet/internal/domain"
)

type fakeLoanRepository struct {
	loans  map[int64]*domain.LoanRequest
	nextID int64
}

func newFakeLoanRepository() *fakeLoanRepository {
	return &fakeLoanRepository{loans: map[int64]*domain.LoanRequest{}}
}

// CreateLoanRequest mirrors the store contract: one lookup by user id with no
// status filter, then insert.
func (r *fakeLoanRepository) CreateLoanRequest(loan *domain.LoanRequest) error {
	for _, existing := range r.loans {
		if existing.UserID == loan.UserID {
			return domain.ErrLoanExists
		}
	}

	r.nextID++
	loan.ID = r.nextID
	loan.RequestDate = time.Now()
	stored := *loan
	r.loans[stored.ID] = &stored
	return nil
}

func (r *fakeLoanRepository) LoanRequestByUser(userID int64) (*domain.LoanRequest, error) {
	for _, loan := range r.loans {
		if loan.UserID == userID {
			copied := *loan
			return &copied, nil
		}
	}
	return nil, domain.ErrLoanNotFound
}

func (r *fakeLoanRepository) LoanRequestByID(id int64) (*domain.LoanRequest, error) {
	loan, ok := r.loans[id]
	if !ok {
		return nil, domain.ErrLoanNotFound
	}
	copied := *loan
	return &copied, nil
}

func (r *fakeLoanRepository) DeleteLoanRequest(id int64) error {
	if _, ok := r.loans[id]; !ok {
		return domain.ErrLoanNotFound
	}
	delete(r.loans, id)
	return nil
}

func submitLoan(t *testing.T, svc *LoanService, userID int64) *domain.LoanRequest {
	t.Helper()
	loan, err := svc.Submit(userID, decimal.RequireFromString("25000.00"), "Working capital", "a@x.com")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	return loan
}

func TestSubmitLoan(t *testing.T) {
	svc := NewLoanService(newFakeLoanRepository())

	loan := submitLoan(t, svc, 42)
	if loan.ID == 0 {
		t.Fatal("expected an assigned id")
	}
	if loan.Status != domain.LoanStatusPending {
		t.Fatalf("status=%q want=%q", loan.Status, domain.LoanStatusPending)
	}

	got, err := svc.ByUser(42)
	if err != nil {
		t.Fatalf("ByUser: %v", err)
	}
	if got.ID != loan.ID {
		t.Fatalf("ByUser id=%d want=%d", got.ID, loan.ID)
	}
}

func TestSubmitLoanDuplicate(t *testing.T) {
	repo := newFakeLoanRepository()
	svc := NewLoanService(repo)

	loan := submitLoan(t, svc, 42)

	// a second request is blocked whatever the first one's status is
	for _, status := range []string{domain.LoanStatusPending, domain.LoanStatusApproved, domain.LoanStatusRejected} {
		repo.loans[loan.ID].Status = status
		_, err := svc.Submit(42, decimal.RequireFromString("1000.00"), "Another", "a@x.com")
		if !errors.Is(err, domain.ErrLoanExists) {
			t.Fatalf("status=%s: want ErrLoanExists, got %v", status, err)
		}
	}
}

func TestCancelLoan(t *testing.T) {
	repo := newFakeLoanRepository()
	svc := NewLoanService(repo)

	loan := submitLoan(t, svc, 42)

	if err := svc.Cancel(loan.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	// the record is removed, not just flagged
	if _, err := svc.ByID(loan.ID); !errors.Is(err, domain.ErrLoanNotFound) {
		t.Fatalf("want ErrLoanNotFound after cancel, got %v", err)
	}

	// and the user can submit again
	submitLoan(t, svc, 42)
}

func TestCancelLoanNotPending(t *testing.T) {
	repo := newFakeLoanRepository()
	svc := NewLoanService(repo)

	loan := submitLoan(t, svc, 42)
	repo.loans[loan.ID].Status = domain.LoanStatusApproved

	if err := svc.Cancel(loan.ID); !errors.Is(err, domain.ErrLoanNotPending) {
		t.Fatalf("want ErrLoanNotPending, got %v", err)
	}
	if _, ok := repo.loans[loan.ID]; !ok {
		t.Fatal("loan request was removed despite failed cancel")
	}
}

func TestCancelLoanNotFound(t *testing.T) {
	svc := NewLoanService(newFakeLoanRepository())

	if err := svc.Cancel(99); !errors.Is(err, domain.ErrLoanNotFound) {
		t.Fatalf("want ErrLoanNotFound, got %v", err)
	}
}

func TestStatement(t *testing.T) {
	repo := newFakeLoanRepository()
	svc := NewLoanService(repo)

	loan := submitLoan(t, svc, 42)

	statement, err := svc.Statement(loan.ID)
	if err != nil {
		t.Fatalf("Statement: %v", err)
	}

	for _, want := range []string{
		"SUVIDHAPAY LOAN REQUEST STATEMENT",
		"Request ID: 1",
		"₹25000.00",
		"Status: PENDING",
		"Purpose: Working capital",
		"Email: a@x.com",
	} {
		if !strings.Contains(statement, want) {
			t.Fatalf("statement missing %q:\n%s", want, statement)
		}
	}
}

func TestStatementNotFound(t *testing.T) {
	svc := NewLoanService(newFakeLoanRepository())

	if _, err := svc.Statement(99); !errors.Is(err, domain.ErrLoanNotFound) {
		t.Fatalf("want ErrLoanNotFound, got %v", err)
	}
}
