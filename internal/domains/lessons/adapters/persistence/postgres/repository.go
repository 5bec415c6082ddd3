package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Apurer/afterschool-api/internal/domains/lessons/domain"
	"github.com/Apurer/afterschool-api/internal/domains/lessons/ports"
)

var _ ports.Repository = (*Repository)(nil)

// seedLockKey identifies the advisory lock that serializes catalog seeding across processes.
const seedLockKey int64 = 0x6c6573736f6e73

// Repository persists lessons in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle and schema.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// lessonRecord maps the lesson aggregate to the lessons table.
type lessonRecord struct {
	ID        string    `gorm:"primaryKey;column:id;type:uuid"`
	Subject   string    `gorm:"column:subject"`
	Location  string    `gorm:"column:location"`
	Price     float64   `gorm:"column:price;type:double precision"`
	Spaces    int       `gorm:"column:spaces"`
	Icon      string    `gorm:"column:icon"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (lessonRecord) TableName() string { return "lessons" }

// SeedIfEmpty takes a transaction-scoped advisory lock so concurrent starters
// observe each other's inserts before the emptiness check.
func (r *Repository) SeedIfEmpty(ctx context.Context, lessons []*domain.Lesson) (int, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	inserted := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", seedLockKey).Error; err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&lessonRecord{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 || len(lessons) == 0 {
			return nil
		}
		records := make([]lessonRecord, 0, len(lessons))
		for _, lesson := range lessons {
			records = append(records, toRecord(lesson))
		}
		if err := tx.Create(&records).Error; err != nil {
			return err
		}
		inserted = len(records)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// Count returns the number of stored lessons.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&lessonRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// List returns all lessons in the table's natural order.
func (r *Repository) List(ctx context.Context) ([]*domain.Lesson, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []lessonRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

// Search matches the pattern with the case-insensitive regex operator. Numeric
// columns are cast to text so "100" finds a lesson priced at 100.
func (r *Repository) Search(ctx context.Context, pattern string) ([]*domain.Lesson, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []lessonRecord
	err := r.db.WithContext(ctx).
		Where("subject ~* ?", pattern).
		Or("location ~* ?", pattern).
		Or("CAST(price AS TEXT) ~* ?", pattern).
		Or("CAST(spaces AS TEXT) ~* ?", pattern).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

// GetByID fetches a lesson by identifier.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Lesson, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record lessonRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// UpdateSpaces overwrites spaces with a single UPDATE; zero affected rows is not an error.
func (r *Repository) UpdateSpaces(ctx context.Context, id string, spaces int) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&lessonRecord{}).
		Where("id = ?", id).
		Update("spaces", spaces).Error
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres lesson repository not configured")
	}
	return nil
}

func toRecord(lesson *domain.Lesson) lessonRecord {
	id := lesson.ID
	if id == "" {
		id = domain.NewID()
	}
	return lessonRecord{
		ID:       id,
		Subject:  lesson.Subject,
		Location: lesson.Location,
		Price:    lesson.Price,
		Spaces:   lesson.Spaces,
		Icon:     lesson.Icon,
	}
}

func (r lessonRecord) toDomain() *domain.Lesson {
	return &domain.Lesson{
		ID:       r.ID,
		Subject:  r.Subject,
		Location: r.Location,
		Price:    r.Price,
		Spaces:   r.Spaces,
		Icon:     r.Icon,
	}
}

func toDomainList(records []lessonRecord) []*domain.Lesson {
	lessons := make([]*domain.Lesson, 0, len(records))
	for i := range records {
		lessons = append(lessons, records[i].toDomain())
	}
	return lessons
}
