package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailExists          = errors.New("email already registered")
	ErrUsernameExists       = errors.New("username already taken")
	ErrIncorrectCredentials = errors.New("incorrect credentials")
	ErrInvalidDate          = errors.New("invalid date format")
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrLoanNotFound         = errors.New("loan request not found")
	ErrLoanExists           = errors.New("loan request already exists")
	ErrLoanNotPending       = errors.New("loan request is not pending")
)
