package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lessonmemory "github.com/Apurer/afterschool-api/internal/domains/lessons/adapters/memory"
	"github.com/Apurer/afterschool-api/internal/domains/lessons/domain"
	"github.com/Apurer/afterschool-api/internal/domains/lessons/ports"
)

type recordingRepo struct {
	ports.Repository
	pattern string
	err     error
}

func (r *recordingRepo) Search(_ context.Context, pattern string) ([]*domain.Lesson, error) {
	r.pattern = pattern
	return nil, r.err
}

func TestSeedIfEmpty_SeedsDefaultCatalogOnce(t *testing.T) {
	repo := lessonmemory.NewRepository()
	svc := NewService(repo)
	ctx := context.Background()

	inserted, err := svc.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, inserted)

	inserted, err = svc.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	lessons, err := svc.ListLessons(ctx)
	require.NoError(t, err)
	require.Len(t, lessons, 10)
	assert.Equal(t, "Math", lessons[0].Subject)
	assert.Equal(t, "London", lessons[0].Location)
	assert.Equal(t, 100.0, lessons[0].Price)
	assert.Equal(t, 5, lessons[0].Spaces)
	assert.Equal(t, "math.png", lessons[0].Icon)
}

func TestSeedIfEmpty_SkipsNonEmptyStore(t *testing.T) {
	repo := lessonmemory.NewRepository()
	existing, err := domain.NewLesson("Yoga", "Bath", 50, 3, "yoga.png")
	require.NoError(t, err)
	require.NoError(t, repo.Insert(context.Background(), existing))

	svc := NewService(repo)
	inserted, err := svc.SeedIfEmpty(context.Background())
	require.NoError(t, err)
	assert.Zero(t, inserted)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSeedIfEmpty_InvalidCatalog(t *testing.T) {
	svc := NewService(lessonmemory.NewRepository(), WithCatalog([]domain.CatalogEntry{{Subject: "Bad", Price: -5}}))
	_, err := svc.SeedIfEmpty(context.Background())
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrNegativePrice)
}

func TestSearchLessons_LowercasesQuery(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(repo)

	_, err := svc.SearchLessons(context.Background(), "MaTh")
	require.NoError(t, err)
	assert.Equal(t, "math", repo.pattern)
}

func TestSearchLessons_PropagatesStoreError(t *testing.T) {
	storeErr := errors.New("store down")
	svc := NewService(&recordingRepo{err: storeErr})
	_, err := svc.SearchLessons(context.Background(), "x")
	require.ErrorIs(t, err, storeErr)
}

func TestUpdateLessonSpaces(t *testing.T) {
	repo := lessonmemory.NewRepository()
	svc := NewService(repo)
	ctx := context.Background()
	_, err := svc.SeedIfEmpty(ctx)
	require.NoError(t, err)

	lessons, err := svc.ListLessons(ctx)
	require.NoError(t, err)
	id := lessons[1].ID

	require.NoError(t, svc.UpdateLessonSpaces(ctx, id, 3))
	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Spaces)
}

func TestUpdateLessonSpaces_MalformedID(t *testing.T) {
	repo := lessonmemory.NewRepository()
	svc := NewService(repo)
	ctx := context.Background()
	_, err := svc.SeedIfEmpty(ctx)
	require.NoError(t, err)
	before, err := svc.ListLessons(ctx)
	require.NoError(t, err)

	err = svc.UpdateLessonSpaces(ctx, "not-an-id", 3)
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrInvalidIdentifier)

	after, err := svc.ListLessons(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdateLessonSpaces_UnknownIDIsNoop(t *testing.T) {
	svc := NewService(lessonmemory.NewRepository())
	require.NoError(t, svc.UpdateLessonSpaces(context.Background(), domain.NewID(), 3))
}
