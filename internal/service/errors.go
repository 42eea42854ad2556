package service

import "errors"

// Hard failures. Business-rule rejections (insufficient funds, unknown
// account on a money movement) are reported as a false result instead.
var (
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrDuplicateAccount     = errors.New("account number already exists")
	ErrInvalidAccountNumber = errors.New("account number must be non-blank UTF-8")
	ErrInvalidHolderName    = errors.New("holder name must be valid UTF-8")
	ErrAccountNotFound      = errors.New("account not found")
	ErrNotSavingsAccount    = errors.New("account does not accrue interest")
)
