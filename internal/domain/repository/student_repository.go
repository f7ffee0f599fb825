package repository

import (
	"context"
	"errors"

	"compssa/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStudentNotFound is a domain-specific error returned when a student is not found.
var ErrStudentNotFound = errors.New("student not found")

// StudentFilter narrows List queries. Zero values mean "no constraint".
type StudentFilter struct {
	Programme string
	Level     int
	Search    string // Matches index number or name, case-insensitively.
	Offset    int
	Limit     int
}

// ProgrammeCount is one row of the per-programme student breakdown.
type ProgrammeCount struct {
	Programme string
	Count     int64
}

// LevelCount is one row of the per-level student breakdown.
type LevelCount struct {
	Level int
	Count int64
}

// StudentRepository defines the standard operations for student persistence.
type StudentRepository interface {
	// FindByID retrieves a single student by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Student, error)

	// FindByIDForUpdate retrieves a student and takes a row-level write lock,
	// serializing concurrent payment recording against the same student.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Student, error)

	// FindByIndexNumber retrieves a single student by their index number.
	FindByIndexNumber(ctx context.Context, indexNumber string) (*entity.Student, error)

	// Create persists a new student entity to the storage.
	Create(ctx context.Context, student *entity.Student) error

	// Update modifies an existing student entity in the storage.
	Update(ctx context.Context, student *entity.Student) error

	// Delete soft-deletes a student record.
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves students matching the filter, with the total match count
	// before pagination.
	List(ctx context.Context, filter StudentFilter) ([]*entity.Student, int64, error)

	// Count returns the number of registered students.
	Count(ctx context.Context) (int64, error)

	// CountByProgramme returns the per-programme student breakdown.
	CountByProgramme(ctx context.Context) ([]ProgrammeCount, error)

	// CountByLevel returns the per-level student breakdown.
	CountByLevel(ctx context.Context) ([]LevelCount, error)

	// TotalFeesDue returns the sum of all students' fee obligations, in pesewas.
	TotalFeesDue(ctx context.Context) (int64, error)
}
