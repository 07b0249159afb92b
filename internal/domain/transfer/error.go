package transfer

import (
	"errors"
)

// ErrFormat marks import content that is not valid JSON or not an array.
var ErrFormat = errors.New("invalid import format")
