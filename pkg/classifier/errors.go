package classifier

import (
	"errors"
)

var (
	// ErrEmptyDocument is returned by ratio metrics that would otherwise
	// divide by a zero word count.
	ErrEmptyDocument = errors.New("empty document")
)
