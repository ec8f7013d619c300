package bank

import "errors"

var (
	// Account operation errors.
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrOverdraftExceeded = errors.New("overdraft limit exceeded")

	// Transfer errors.
	ErrSameAccountTransfer = errors.New("source and destination are the same account")

	// Ledger errors.
	ErrDuplicateAccountNumber = errors.New("account number already exists")
	ErrAccountNotFound        = errors.New("account not found")

	// Constructor validation errors.
	ErrInvalidAccount = errors.New("invalid account parameters")
)
