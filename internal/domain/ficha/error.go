package ficha

import (
	"errors"
)

var (
	ErrNotFound    = errors.New("ficha not found")
	ErrInvalidData = errors.New("invalid ficha data")
)
