package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/afterschool-api/internal/domains/store/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid order input")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNilFields) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
