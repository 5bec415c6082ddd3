package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Apurer/afterschool-api/internal/domains/store/domain"
	"github.com/Apurer/afterschool-api/internal/domains/store/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle and schema.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// orderRecord keeps the caller's fields verbatim in a JSONB document.
type orderRecord struct {
	ID        string         `gorm:"primaryKey;column:id;type:uuid"`
	Fields    map[string]any `gorm:"column:fields;type:jsonb;serializer:json"`
	CreatedAt time.Time      `gorm:"column:created_at;index"`
}

func (orderRecord) TableName() string { return "orders" }

// Insert stores a new order.
func (r *Repository) Insert(ctx context.Context, order *domain.Order) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	if order == nil {
		return errors.New("order is nil")
	}
	if err := order.Validate(); err != nil {
		return err
	}
	record := orderRecord{ID: order.ID, Fields: order.Fields}
	return r.db.WithContext(ctx).Create(&record).Error
}

// List returns all orders, oldest first.
func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).Order("created_at").Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, &domain.Order{ID: records[i].ID, Fields: records[i].Fields})
	}
	return orders, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}
