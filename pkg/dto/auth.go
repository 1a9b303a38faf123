package dto

import (
	"errors"
	"fmt"
	"strings"
)

/**
  {
      "username": "alice",
      "password": "s3cret",
      "fullName": "Alice Kumar",
      "emailid": "alice@example.com",
      "phoneNumber": "9876543210",
      "address": "12 MG Road, Pune",
      "aadharnumber": "998877665544",
      "pannumber": "ABCDE1234F",
      "dob": "1994-05-17",
      "bank_name": "State Bank"
  }
*/

type Register struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	FullName     string `json:"fullName"`
	Email        string `json:"emailid"`
	PhoneNumber  string `json:"phoneNumber"`
	Address      string `json:"address"`
	AadharNumber string `json:"aadharnumber"`
	PanNumber    string `json:"pannumber"`
	Dob          string `json:"dob"`
	BankName     string `json:"bank_name"`
}

func (r Register) IsValid() error {
	required := []struct {
		name  string
		value string
	}{
		{"username", r.Username},
		{"password", r.Password},
		{"fullName", r.FullName},
		{"emailid", r.Email},
		{"phoneNumber", r.PhoneNumber},
		{"aadharnumber", r.AadharNumber},
		{"pannumber", r.PanNumber},
	}

	var errs []error
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, fmt.Errorf("%s is required", f.name))
		}
	}

	return errors.Join(errs...)
}

type Login struct {
	Email    string `json:"emailid"`
	Password string `json:"password"`
}

func (l Login) IsValid() error {
	var emailErr, passwordErr error

	if strings.TrimSpace(l.Email) == "" {
		emailErr = fmt.Errorf("emailid is required")
	}

	if strings.TrimSpace(l.Password) == "" {
		passwordErr = fmt.Errorf("password is required")
	}

	return errors.Join(emailErr, passwordErr)
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

type LoginResponse struct {
	UserID   int64  `json:"userId"`
	Email    string `json:"emailid"`
	FullName string `json:"fullName"`
}
