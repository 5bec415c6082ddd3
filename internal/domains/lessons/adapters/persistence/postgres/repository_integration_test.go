//go:build integration

package postgres

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Apurer/afterschool-api/internal/domains/lessons/domain"
	"github.com/Apurer/afterschool-api/internal/domains/lessons/ports"
	"github.com/Apurer/afterschool-api/internal/platform/migrations"
)

func setupLessonsPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("afterschool_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func catalogLessons(t *testing.T) []*domain.Lesson {
	t.Helper()
	lessons, err := domain.BuildLessons(domain.DefaultCatalog())
	require.NoError(t, err)
	return lessons
}

func sortedSubjects(lessons []*domain.Lesson) []string {
	out := make([]string, 0, len(lessons))
	for _, lesson := range lessons {
		out = append(out, lesson.Subject)
	}
	sort.Strings(out)
	return out
}

func TestRepository_SeedIfEmpty(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupLessonsPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	inserted, err := repo.SeedIfEmpty(ctx, catalogLessons(t))
	require.NoError(t, err)
	assert.Equal(t, 10, inserted)

	inserted, err = repo.SeedIfEmpty(ctx, catalogLessons(t))
	require.NoError(t, err)
	assert.Zero(t, inserted)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), count)
}

func TestRepository_SeedIfEmpty_Concurrent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupLessonsPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	var g errgroup.Group
	for i := 0; i < 4; i++ {
		lessons := catalogLessons(t)
		g.Go(func() error {
			_, err := repo.SeedIfEmpty(ctx, lessons)
			return err
		})
	}
	require.NoError(t, g.Wait())

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), count)
}

func TestRepository_Search(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupLessonsPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()
	_, err := repo.SeedIfEmpty(ctx, catalogLessons(t))
	require.NoError(t, err)

	list, err := repo.Search(ctx, "math")
	require.NoError(t, err)
	assert.Equal(t, []string{"Math"}, sortedSubjects(list))

	list, err = repo.Search(ctx, "oxford")
	require.NoError(t, err)
	assert.Equal(t, []string{"Chess", "Coding", "Science"}, sortedSubjects(list))

	list, err = repo.Search(ctx, "110")
	require.NoError(t, err)
	assert.Equal(t, []string{"Coding"}, sortedSubjects(list))

	list, err = repo.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, list, 10)

	_, err = repo.Search(ctx, "(")
	assert.Error(t, err)
}

func TestRepository_UpdateSpaces(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupLessonsPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()
	lessons := catalogLessons(t)
	_, err := repo.SeedIfEmpty(ctx, lessons)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateSpaces(ctx, lessons[0].ID, 3))
	got, err := repo.GetByID(ctx, lessons[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Spaces)

	require.NoError(t, repo.UpdateSpaces(ctx, domain.NewID(), 3))

	_, err = repo.GetByID(ctx, domain.NewID())
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
