package usecase

import (
	"context"

	"compssa/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterStudentInput defines the data required to register a new student.
type RegisterStudentInput struct {
	IndexNumber  string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Programme    string
	Level        int
	FeeDue       int64 // In pesewas.
	RegisteredBy uuid.UUID
}

// UpdateStudentInput defines the mutable fields of a student record. The index
// number is immutable once registered.
type UpdateStudentInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Programme string
	Level     int
	FeeDue    int64
}

// ListStudentsInput defines the filter and pagination for student listings.
type ListStudentsInput struct {
	Programme string
	Level     int
	Search    string
	Page      int
	PerPage   int
}

// StudentDetail pairs a student with their payment position.
type StudentDetail struct {
	Student    *entity.Student
	AmountPaid int64 // Total paid so far, in pesewas.
	Balance    int64 // FeeDue minus AmountPaid; never negative.
}

// StudentListOutput returns one page of students with the total match count.
type StudentListOutput struct {
	Students []*entity.Student
	Total    int64
	Page     int
	PerPage  int
}

// StudentUsecase defines the interface for student-related business operations.
type StudentUsecase interface {
	// RegisterStudent creates a new student record. The index number must be
	// unique across all students.
	RegisterStudent(ctx context.Context, input RegisterStudentInput) (*entity.Student, error)

	// GetStudent retrieves one student together with their payment position.
	GetStudent(ctx context.Context, id uuid.UUID) (*StudentDetail, error)

	// UpdateStudent modifies a student's mutable fields.
	UpdateStudent(ctx context.Context, id uuid.UUID, input UpdateStudentInput) (*entity.Student, error)

	// DeleteStudent removes a student record. Payment history is retained.
	DeleteStudent(ctx context.Context, id uuid.UUID) error

	// ListStudents returns a filtered, paginated student listing.
	ListStudents(ctx context.Context, input ListStudentsInput) (*StudentListOutput, error)
}
