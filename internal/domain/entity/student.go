package entity

import (
	"time"

	"github.com/google/uuid"
)

// Student is a registered member of the association whose fee payments are tracked.
type Student struct {
	ID           uuid.UUID // The unique identifier for the student record.
	IndexNumber  string    // The university index number, unique across all students.
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Programme    string    // Degree programme, e.g. "BSc Computer Science".
	Level        int       // Academic level: 100, 200, 300 or 400.
	FeeDue       int64     // Total registration fee owed, in pesewas.
	RegisteredBy uuid.UUID // The account that registered this student.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// ValidLevels lists the academic levels a student may be registered at.
var ValidLevels = []int{100, 200, 300, 400}

// IsValidLevel checks whether level is one of the recognised academic levels.
func IsValidLevel(level int) bool {
	for _, l := range ValidLevels {
		if level == l {
			return true
		}
	}

	return false
}
