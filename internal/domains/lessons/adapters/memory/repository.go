package memory

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/Apurer/afterschool-api/internal/domains/lessons/domain"
	"github.com/Apurer/afterschool-api/internal/domains/lessons/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory lesson persistence adapter.
// Lessons are returned in insertion order, mirroring a heap scan.
type Repository struct {
	mu      sync.RWMutex
	lessons map[string]*domain.Lesson
	order   []string
}

func NewRepository() *Repository {
	return &Repository{lessons: map[string]*domain.Lesson{}}
}

// SeedIfEmpty checks emptiness and inserts under one lock.
func (r *Repository) SeedIfEmpty(_ context.Context, lessons []*domain.Lesson) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.lessons) > 0 {
		return 0, nil
	}
	for _, lesson := range lessons {
		if err := r.insertLocked(lesson); err != nil {
			return 0, err
		}
	}
	return len(lessons), nil
}

// Insert adds lessons unconditionally. Used by tests and fixtures.
func (r *Repository) Insert(_ context.Context, lessons ...*domain.Lesson) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, lesson := range lessons {
		if err := r.insertLocked(lesson); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) insertLocked(lesson *domain.Lesson) error {
	if lesson == nil {
		return errors.New("lesson is nil")
	}
	clone := *lesson
	if clone.ID == "" {
		clone.ID = domain.NewID()
	}
	if _, exists := r.lessons[clone.ID]; exists {
		return fmt.Errorf("lesson %s already exists", clone.ID)
	}
	r.lessons[clone.ID] = &clone
	r.order = append(r.order, clone.ID)
	return nil
}

func (r *Repository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.lessons)), nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Lesson, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Lesson, 0, len(r.order))
	for _, id := range r.order {
		clone := *r.lessons[id]
		list = append(list, &clone)
	}
	return list, nil
}

func (r *Repository) Search(_ context.Context, pattern string) ([]*domain.Lesson, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid search pattern: %w", err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Lesson, 0)
	for _, id := range r.order {
		lesson := r.lessons[id]
		if matchesAny(re, lesson.SearchableText()) {
			clone := *lesson
			list = append(list, &clone)
		}
	}
	return list, nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Lesson, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lesson, ok := r.lessons[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *lesson
	return &clone, nil
}

func (r *Repository) UpdateSpaces(_ context.Context, id string, spaces int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if lesson, ok := r.lessons[id]; ok {
		lesson.SetSpaces(spaces)
	}
	return nil
}

func matchesAny(re *regexp.Regexp, values []string) bool {
	for _, value := range values {
		if re.MatchString(value) {
			return true
		}
	}
	return false
}
