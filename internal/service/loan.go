package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/suvidhapay/wallet/internal/domain"
)

type LoanRepository interface {
	CreateLoanRequest(loan *domain.LoanRequest) error
	LoanRequestByUser(userID int64) (*domain.LoanRequest, error)
	LoanRequestByID(id int64) (*domain.LoanRequest, error)
	DeleteLoanRequest(id int64) error
}

type LoanService struct {
	repo LoanRepository
}

func NewLoanService(repo LoanRepository) *LoanService {
	return &LoanService{
		repo: repo,
	}
}

// Submit creates the user's loan request in PENDING state. Any existing
// request for the user, whatever its status, blocks a new one.
func (s *LoanService) Submit(userID int64, amount decimal.Decimal, purpose, email string) (*domain.LoanRequest, error) {
	loan := &domain.LoanRequest{
		UserID:  userID,
		Amount:  amount,
		Purpose: purpose,
		Email:   email,
		Status:  domain.LoanStatusPending,
	}

	if err := s.repo.CreateLoanRequest(loan); err != nil {
		return nil, err
	}

	return loan, nil
}

func (s *LoanService) ByUser(userID int64) (*domain.LoanRequest, error) {
	return s.repo.LoanRequestByUser(userID)
}

func (s *LoanService) ByID(id int64) (*domain.LoanRequest, error) {
	return s.repo.LoanRequestByID(id)
}

// Cancel removes a PENDING loan request. Cancellation is terminal by removal:
// the row is deleted, not moved to a CANCELLED status.
func (s *LoanService) Cancel(id int64) error {
	loan, err := s.repo.LoanRequestByID(id)
	if err != nil {
		return err
	}

	if loan.Status != domain.LoanStatusPending {
		return domain.ErrLoanNotPending
	}

	return s.repo.DeleteLoanRequest(id)
}

// Statement renders the plain-text loan statement from the current record.
func (s *LoanService) Statement(id int64) (string, error) {
	loan, err := s.repo.LoanRequestByID(id)
	if err != nil {
		return "", err
	}

	statement := fmt.Sprintf(`SUVIDHAPAY LOAN REQUEST STATEMENT
----------------------------------
Request ID: %d
Date: %s

DETAILS
----------------------------------
Amount Requested: ₹%s
Status: %s
Purpose: %s
Email: %s

This is an automatically generated statement.
For any queries, please contact SuvidhaPay support.
`,
		loan.ID,
		loan.RequestDate.Format(time.RFC3339),
		loan.Amount.StringFixed(2),
		loan.Status,
		loan.Purpose,
		loan.Email,
	)

	return statement, nil
}
