package domain

import (
	"errors"
	"maps"

	"github.com/google/uuid"
)

var ErrNilFields = errors.New("order fields must be a JSON object")

// Order is a caller submitted booking request. The store enforces no schema on
// Fields; in practice they carry lesson identifiers, a quantity and contact details.
type Order struct {
	ID     string
	Fields map[string]any
}

// NewOrder wraps the caller's fields with a fresh identifier. The fields are copied
// shallowly and otherwise stored as received.
func NewOrder(fields map[string]any) (*Order, error) {
	if fields == nil {
		return nil, ErrNilFields
	}
	return &Order{ID: uuid.NewString(), Fields: maps.Clone(fields)}, nil
}

// Validate enforces the only invariant the store has: fields form an object.
func (o *Order) Validate() error {
	if o.Fields == nil {
		return ErrNilFields
	}
	return nil
}
