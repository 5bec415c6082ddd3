package ports

import (
	"context"

	"github.com/Apurer/afterschool-api/internal/domains/store/domain"
)

// Service exposes order use cases to adapters.
type Service interface {
	PlaceOrder(ctx context.Context, fields map[string]any) (*domain.Order, error)
}
