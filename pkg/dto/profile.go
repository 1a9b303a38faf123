package dto

import (
	"errors"
	"fmt"
	"strings"
)

type Profile struct {
	UserID       int64  `json:"userId"`
	Username     string `json:"username"`
	FullName     string `json:"fullName"`
	Email        string `json:"emailid"`
	PhoneNumber  string `json:"phoneNumber"`
	Address      string `json:"address"`
	AadharNumber string `json:"aadharnumber"`
	PanNumber    string `json:"pannumber"`
	BankName     string `json:"bank_name"`
	Dob          string `json:"dob,omitempty"`
	Balance      string `json:"balance"`
	CreatedAt    string `json:"created_at"`
}

/**
  Partial update: absent fields stay untouched, so every field is a pointer
  to tell "not sent" apart from "sent empty".

  {
      "phoneNumber": "9876500000",
      "dob": "1994-05-17"
  }
*/

type ProfileUpdate struct {
	PhoneNumber  *string `json:"phoneNumber,omitempty"`
	Address      *string `json:"address,omitempty"`
	Dob          *string `json:"dob,omitempty"`
	AadharNumber *string `json:"aadharnumber,omitempty"`
	PanNumber    *string `json:"pannumber,omitempty"`
}

func (p ProfileUpdate) IsValid() error {
	blankChecked := []struct {
		name  string
		value *string
	}{
		{"Phone number", p.PhoneNumber},
		{"Aadhar number", p.AadharNumber},
		{"PAN number", p.PanNumber},
		{"Date of Birth", p.Dob},
	}

	var errs []error
	for _, f := range blankChecked {
		if f.value != nil && strings.TrimSpace(*f.value) == "" {
			errs = append(errs, fmt.Errorf("%s cannot be empty", f.name))
		}
	}

	return errors.Join(errs...)
}
