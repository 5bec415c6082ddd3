package ports

import (
	"context"

	"github.com/Apurer/afterschool-api/internal/domains/store/domain"
)

// OrderOrchestrator runs order placement either inline or as a durable workflow.
type OrderOrchestrator interface {
	PlaceOrder(ctx context.Context, fields map[string]any) (*domain.Order, error)
}
