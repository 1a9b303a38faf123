package dto

import (
	"errors"
	"fmt"
	"strings"
)

/**
  {
      "userId": "42",
      "recipientNumber": "9999999999",
      "amount": "50.00",
      "type": "QR_PAYMENT"
  }
*/

type Transaction struct {
	UserID          string `json:"userId"`
	RecipientNumber string `json:"recipientNumber"`
	Amount          string `json:"amount"`
	Type            string `json:"type,omitempty"`
}

func (t Transaction) IsValid() error {
	var errs []error

	if strings.TrimSpace(t.UserID) == "" {
		errs = append(errs, fmt.Errorf("userId is required"))
	}

	if strings.TrimSpace(t.RecipientNumber) == "" {
		errs = append(errs, fmt.Errorf("recipientNumber is required"))
	}

	if strings.TrimSpace(t.Amount) == "" {
		errs = append(errs, fmt.Errorf("amount is required"))
	}

	return errors.Join(errs...)
}

/**
  {
      "id": 1,
      "userId": 42,
      "reference": "7f9c24e5-2b31-4bce-a7b8-6a51a1bb90d3",
      "recipientNumber": "9999999999",
      "amount": "50.00",
      "type": "QR_PAYMENT",
      "status": "COMPLETED",
      "transactionDate": "2026-01-10T15:15:45+05:30"
  }
*/

type TransactionResponse struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
	Reference       string `json:"reference"`
	RecipientNumber string `json:"recipientNumber"`
	Amount          string `json:"amount"`
	Type            string `json:"type"`
	Status          string `json:"status"`
	TransactionDate string `json:"transactionDate"`
}
