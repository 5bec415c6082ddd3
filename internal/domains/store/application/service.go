package application

import (
	"context"

	"github.com/Apurer/afterschool-api/internal/domains/store/domain"
	"github.com/Apurer/afterschool-api/internal/domains/store/ports"
)

// Service orchestrates order use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// PlaceOrder stores the fields unmodified. Lesson identifiers, capacity and
// prices are not checked.
func (s *Service) PlaceOrder(ctx context.Context, fields map[string]any) (*domain.Order, error) {
	order, err := domain.NewOrder(fields)
	if err != nil {
		return nil, mapError(err)
	}
	if err := s.repo.Insert(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

var _ ports.Service = (*Service)(nil)
