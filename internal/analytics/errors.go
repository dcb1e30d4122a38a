package analytics

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

func requireID(name string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidArgument, name, id)
	}
	return nil
}

// notFound keeps the cause in the chain, so both ErrNotFound and the repo error match.
func notFound(err error) error {
	return fmt.Errorf("%w: %w", ErrNotFound, err)
}
