package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run creates or extends the lessons and orders tables.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&lessonRecord{},
		&orderRecord{},
	)
}

// Lesson schema mirrors the lessons Postgres adapter.
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

// Order schema mirrors the store Postgres adapter.
type orderRecord struct {
	ID        string         `gorm:"primaryKey;column:id;type:uuid"`
	Fields    map[string]any `gorm:"column:fields;type:jsonb;serializer:json"`
	CreatedAt time.Time      `gorm:"column:created_at;index"`
}

func (orderRecord) TableName() string { return "orders" }
