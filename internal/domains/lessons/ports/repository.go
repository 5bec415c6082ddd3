package ports

import (
	"context"
	"errors"

	"github.com/Apurer/afterschool-api/internal/domains/lessons/domain"
)

var ErrNotFound = errors.New("lesson not found")

// Repository persists lessons. Implementations never cache; every call reads the store.
type Repository interface {
	// SeedIfEmpty inserts the lessons only when the collection holds no records,
	// as a single atomic step. It returns the number of inserted lessons.
	SeedIfEmpty(ctx context.Context, lessons []*domain.Lesson) (int, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]*domain.Lesson, error)
	// Search returns lessons whose subject, location, price or spaces match the
	// case-insensitive regular expression pattern.
	Search(ctx context.Context, pattern string) ([]*domain.Lesson, error)
	// GetByID exists for fixtures and contract tests.
	GetByID(ctx context.Context, id string) (*domain.Lesson, error)
	// UpdateSpaces overwrites the spaces field. A missing lesson is not an error.
	UpdateSpaces(ctx context.Context, id string, spaces int) error
}
