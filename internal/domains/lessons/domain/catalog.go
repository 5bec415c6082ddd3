package domain

// CatalogEntry is a lesson definition without an identifier.
type CatalogEntry struct {
	Subject  string
	Location string
	Price    float64
	Spaces   int
	Icon     string
}

// DefaultCatalog returns the lessons inserted into an empty store on first start.
func DefaultCatalog() []CatalogEntry {
	return []CatalogEntry{
		{Subject: "Math", Location: "London", Price: 100, Spaces: 5, Icon: "math.png"},
		{Subject: "English", Location: "Cambridge", Price: 80, Spaces: 10, Icon: "english.png"},
		{Subject: "Science", Location: "Oxford", Price: 90, Spaces: 6, Icon: "science.png"},
		{Subject: "Art", Location: "York", Price: 95, Spaces: 10, Icon: "art.png"},
		{Subject: "Music", Location: "London", Price: 85, Spaces: 8, Icon: "music.png"},
		{Subject: "Drama", Location: "York", Price: 75, Spaces: 7, Icon: "drama.png"},
		{Subject: "Coding", Location: "Oxford", Price: 110, Spaces: 6, Icon: "coding.png"},
		{Subject: "Dance", Location: "Cambridge", Price: 70, Spaces: 7, Icon: "dance.png"},
		{Subject: "Chess", Location: "Oxford", Price: 65, Spaces: 6, Icon: "chess.png"},
		{Subject: "Robotics", Location: "London", Price: 120, Spaces: 5, Icon: "robotics.png"},
	}
}

// Lesson materializes the entry with a new identifier.
func (e CatalogEntry) Lesson() (*Lesson, error) {
	return NewLesson(e.Subject, e.Location, e.Price, e.Spaces, e.Icon)
}

// BuildLessons converts catalog entries into lesson aggregates.
func BuildLessons(entries []CatalogEntry) ([]*Lesson, error) {
	lessons := make([]*Lesson, 0, len(entries))
	for _, entry := range entries {
		lesson, err := entry.Lesson()
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, lesson)
	}
	return lessons, nil
}
