package domain

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Lesson is a bookable after-school class offering.
type Lesson struct {
	ID       string
	Subject  string
	Location string
	Price    float64
	Spaces   int
	Icon     string
}

var (
	ErrInvalidIdentifier = errors.New("lesson identifier is malformed")
	ErrNegativePrice     = errors.New("lesson price must be greater or equal to zero")
)

// NewLesson builds a lesson with a freshly generated identifier.
// Spaces is not validated; any integer may be stored.
func NewLesson(subject, location string, price float64, spaces int, icon string) (*Lesson, error) {
	if price < 0 {
		return nil, ErrNegativePrice
	}
	return &Lesson{
		ID:       NewID(),
		Subject:  subject,
		Location: location,
		Price:    price,
		Spaces:   spaces,
		Icon:     icon,
	}, nil
}

// NewID returns a new random lesson identifier.
func NewID() string {
	return uuid.NewString()
}

// ParseID normalizes a caller supplied identifier into the canonical record key.
func ParseID(raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", ErrInvalidIdentifier
	}
	return id.String(), nil
}

// SetSpaces overwrites the remaining capacity.
func (l *Lesson) SetSpaces(spaces int) {
	l.Spaces = spaces
}

// SearchableText lists the values a search pattern is matched against.
// Numeric fields are rendered the same way the SQL adapter casts them to text.
func (l *Lesson) SearchableText() []string {
	return []string{
		l.Subject,
		l.Location,
		FormatPrice(l.Price),
		strconv.Itoa(l.Spaces),
	}
}

// FormatPrice renders a price without trailing zeros, e.g. 100 -> "100", 12.5 -> "12.5".
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
