package ports

import (
	"context"

	"github.com/Apurer/afterschool-api/internal/domains/lessons/domain"
)

// Service exposes lesson use cases to adapters.
type Service interface {
	SeedIfEmpty(ctx context.Context) (int, error)
	ListLessons(ctx context.Context) ([]*domain.Lesson, error)
	SearchLessons(ctx context.Context, query string) ([]*domain.Lesson, error)
	UpdateLessonSpaces(ctx context.Context, id string, spaces int) error
}
