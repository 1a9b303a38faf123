package dto

import (
	"strings"
	"testing"
)

func TestRegisterIsValid(t *testing.T) {
	valid := Register{
		Username:     "alice",
		Password:     "s1",
		FullName:     "Alice Kumar",
		Email:        "a@x.com",
		PhoneNumber:  "9876543210",
		AadharNumber: "998877665544",
		PanNumber:    "ABCDE1234F",
	}
	if err := valid.IsValid(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	// address, dob and bank_name are optional
	missing := valid
	missing.Username = " "
	missing.PanNumber = ""
	err := missing.IsValid()
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"username is required", "pannumber is required"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q missing %q", err, want)
		}
	}
}

func TestLoginIsValid(t *testing.T) {
	if err := (Login{Email: "a@x.com", Password: "s1"}).IsValid(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	if err := (Login{}).IsValid(); err == nil {
		t.Fatal("expected an error")
	}
}

func TestProfileUpdateIsValid(t *testing.T) {
	// no fields at all is a valid (empty) partial update
	if err := (ProfileUpdate{}).IsValid(); err != nil {
		t.Fatalf("empty update rejected: %v", err)
	}

	phone := "9876500000"
	if err := (ProfileUpdate{PhoneNumber: &phone}).IsValid(); err != nil {
		t.Fatalf("valid update rejected: %v", err)
	}

	// a field that is present but blank is rejected
	blank := "  "
	for _, update := range []ProfileUpdate{
		{PhoneNumber: &blank},
		{AadharNumber: &blank},
		{PanNumber: &blank},
		{Dob: &blank},
	} {
		if err := update.IsValid(); err == nil {
			t.Fatalf("blank field accepted: %+v", update)
		}
	}

	// address may legitimately be cleared
	if err := (ProfileUpdate{Address: &blank}).IsValid(); err != nil {
		t.Fatalf("blank address rejected: %v", err)
	}
}

func TestTransactionIsValid(t *testing.T) {
	valid := Transaction{UserID: "42", RecipientNumber: "9999999999", Amount: "50.00"}
	if err := valid.IsValid(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	if err := (Transaction{}).IsValid(); err == nil {
		t.Fatal("expected an error")
	}
}

func TestLoanRequestIsValid(t *testing.T) {
	valid := LoanRequest{UserID: "42", Amount: "25000.00", Purpose: "Working capital", Email: "a@x.com"}
	if err := valid.IsValid(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	if err := (LoanRequest{Purpose: "x"}).IsValid(); err == nil {
		t.Fatal("expected an error")
	}
}
