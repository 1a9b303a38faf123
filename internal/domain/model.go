package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeQRPayment   = "QR_PAYMENT"
	TransactionTypeCardPayment = "CARD_PAYMENT"

	TransactionStatusCompleted = "COMPLETED"
	TransactionStatusFailed    = "FAILED"
	TransactionStatusPending   = "PENDING"

	LoanStatusPending   = "PENDING"
	LoanStatusApproved  = "APPROVED"
	LoanStatusRejected  = "REJECTED"
	LoanStatusCancelled = "CANCELLED"
)

type User struct {
	ID           int64
	Username     string
	Password     string
	FullName     string
	PhoneNumber  string
	Address      string
	AadharNumber string
	PanNumber    string
	Email        string
	BankName     string
	Dob          *time.Time
	Balance      decimal.Decimal
	CreatedAt    time.Time
}

// ProfileUpdate carries a partial profile change: nil means the field was
// absent from the request and must stay untouched.
type ProfileUpdate struct {
	PhoneNumber  *string
	Address      *string
	Dob          *time.Time
	AadharNumber *string
	PanNumber    *string
}

type Transaction struct {
	ID              int64
	UserID          int64
	Reference       string
	RecipientNumber string
	Amount          decimal.Decimal
	Type            string
	Status          string
	TransactionDate time.Time
}

type LoanRequest struct {
	ID          int64
	UserID      int64
	Amount      decimal.Decimal
	Purpose     string
	Email       string
	Status      string
	RequestDate time.Time
}
