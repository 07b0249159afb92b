package pago

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("pago not found")
	ErrInvalidData     = errors.New("invalid pago data")
	ErrAmountImmutable = errors.New("amount already set and cannot change")
	ErrStatusImmutable = errors.New("paid status is terminal")
)
