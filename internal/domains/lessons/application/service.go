package application

import (
	"context"
	"strings"

	"github.com/Apurer/afterschool-api/internal/domains/lessons/domain"
	"github.com/Apurer/afterschool-api/internal/domains/lessons/ports"
)

// Service orchestrates lesson use cases.
type Service struct {
	repo    ports.Repository
	catalog []domain.CatalogEntry
}

type Option func(*Service)

// WithCatalog replaces the lessons seeded into an empty store.
func WithCatalog(entries []domain.CatalogEntry) Option {
	return func(s *Service) {
		s.catalog = entries
	}
}

func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, catalog: domain.DefaultCatalog()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// SeedIfEmpty populates the lessons collection with the catalog when it holds no records.
func (s *Service) SeedIfEmpty(ctx context.Context) (int, error) {
	lessons, err := domain.BuildLessons(s.catalog)
	if err != nil {
		return 0, mapError(err)
	}
	return s.repo.SeedIfEmpty(ctx, lessons)
}

func (s *Service) ListLessons(ctx context.Context) ([]*domain.Lesson, error) {
	return s.repo.List(ctx)
}

// SearchLessons lowercases the query and matches it against every searchable field.
// An empty query matches all lessons.
func (s *Service) SearchLessons(ctx context.Context, query string) ([]*domain.Lesson, error) {
	return s.repo.Search(ctx, strings.ToLower(query))
}

// UpdateLessonSpaces resolves the identifier and overwrites the lesson's spaces.
func (s *Service) UpdateLessonSpaces(ctx context.Context, id string, spaces int) error {
	key, err := domain.ParseID(id)
	if err != nil {
		return mapError(err)
	}
	return s.repo.UpdateSpaces(ctx, key, spaces)
}

var _ ports.Service = (*Service)(nil)
