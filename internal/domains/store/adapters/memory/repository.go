package memory

import (
	"context"
	"errors"
	"maps"
	"sync"

	"github.com/Apurer/afterschool-api/internal/domains/store/domain"
	"github.com/Apurer/afterschool-api/internal/domains/store/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	orders []*domain.Order
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) Insert(_ context.Context, order *domain.Order) error {
	if order == nil {
		return errors.New("order is nil")
	}
	if err := order.Validate(); err != nil {
		return err
	}
	clone := &domain.Order{ID: order.ID, Fields: maps.Clone(order.Fields)}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, clone)
	return nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		list = append(list, &domain.Order{ID: order.ID, Fields: maps.Clone(order.Fields)})
	}
	return list, nil
}
