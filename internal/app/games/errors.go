package games

import "errors"

var (
	ErrInvalidRequest    = errors.New("invalid_request")
	ErrInsufficientFunds = errors.New("insufficient_funds")
)
