package dto

import (
	"errors"
	"fmt"
	"strings"
)

/**
  {
      "userId": "42",
      "amount": "25000.00",
      "purpose": "Working capital",
      "email": "alice@example.com"
  }
*/

type LoanRequest struct {
	UserID  string `json:"userId"`
	Amount  string `json:"amount"`
	Purpose string `json:"purpose"`
	Email   string `json:"email"`
}

func (l LoanRequest) IsValid() error {
	var errs []error

	if strings.TrimSpace(l.UserID) == "" {
		errs = append(errs, fmt.Errorf("userId is required"))
	}

	if strings.TrimSpace(l.Amount) == "" {
		errs = append(errs, fmt.Errorf("amount is required"))
	}

	if strings.TrimSpace(l.Purpose) == "" {
		errs = append(errs, fmt.Errorf("purpose is required"))
	}

	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, fmt.Errorf("email is required"))
	}

	return errors.Join(errs...)
}

type LoanResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	Amount      string `json:"amount"`
	Purpose     string `json:"purpose"`
	Email       string `json:"email"`
	Status      string `json:"status"`
	RequestDate string `json:"requestDate"`
}
