package ports

import (
	"context"

	"github.com/Apurer/afterschool-api/internal/domains/store/domain"
)

// Repository persists orders. Orders are write-only from the API's perspective;
// List exists for fixtures and contract tests.
type Repository interface {
	Insert(ctx context.Context, order *domain.Order) error
	List(ctx context.Context) ([]*domain.Order, error)
}
