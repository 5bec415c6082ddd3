package mapper

import (
	lessondomain "github.com/Apurer/afterschool-api/internal/domains/lessons/domain"
)

// Lesson is the JSON shape returned by the lesson endpoints.
type Lesson struct {
	ID       string  `json:"_id"`
	Subject  string  `json:"subject"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
	Spaces   int     `json:"spaces"`
	Icon     string  `json:"icon"`
}

// UpdateSpaces is the body accepted by the update endpoint.
type UpdateSpaces struct {
	Spaces *int `json:"spaces"`
}

// FromDomainLesson converts a domain lesson to the transport representation.
func FromDomainLesson(lesson *lessondomain.Lesson) Lesson {
	if lesson == nil {
		return Lesson{}
	}
	return Lesson{
		ID:       lesson.ID,
		Subject:  lesson.Subject,
		Location: lesson.Location,
		Price:    lesson.Price,
		Spaces:   lesson.Spaces,
		Icon:     lesson.Icon,
	}
}

// FromDomainLessons always returns a non-nil slice so empty results encode as [].
func FromDomainLessons(lessons []*lessondomain.Lesson) []Lesson {
	result := make([]Lesson, 0, len(lessons))
	for _, lesson := range lessons {
		result = append(result, FromDomainLesson(lesson))
	}
	return result
}
