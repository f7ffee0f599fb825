package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "compssa/internal/delivery/context"
	"compssa/internal/domain/entity"
	domainerrors "compssa/internal/domain/errors"
	"compssa/internal/domain/repository"
	"compssa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultStudentsPerPage = 20
	maxStudentsPerPage     = 100
)

// studentService implements the StudentUsecase interface.
type studentService struct {
	studentRepo repository.StudentRepository
	paymentRepo repository.PaymentRepository
	logger      *slog.Logger
}

// StudentServiceParams holds dependencies for studentService, injected by Fx.
type StudentServiceParams struct {
	fx.In

	StudentRepo repository.StudentRepository
	PaymentRepo repository.PaymentRepository
	Logger      *slog.Logger
}

// NewStudentService is the constructor for studentService.
func NewStudentService(params StudentServiceParams) usecase.StudentUsecase {
	return &studentService{
		studentRepo: params.StudentRepo,
		paymentRepo: params.PaymentRepo,
		logger:      params.Logger,
	}
}

func (srv *studentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterStudent creates a new student record.
func (srv *studentService) RegisterStudent(ctx context.Context, input usecase.RegisterStudentInput) (*entity.Student, error) {
	indexNumber := strings.TrimSpace(strings.ToUpper(input.IndexNumber))
	if indexNumber == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("index number must not be empty")
	}
	if !entity.IsValidLevel(input.Level) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("level must be 100, 200, 300 or 400")
	}
	if input.FeeDue < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fee due must not be negative")
	}

	student := &entity.Student{
		IndexNumber:  indexNumber,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        strings.TrimSpace(input.Email),
		Phone:        strings.TrimSpace(input.Phone),
		Programme:    strings.TrimSpace(input.Programme),
		Level:        input.Level,
		FeeDue:       input.FeeDue,
		RegisteredBy: input.RegisteredBy,
	}

	if err := srv.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Student registered",
		slog.String("indexNumber", student.IndexNumber),
		slog.String("programme", student.Programme),
	)

	return student, nil
}

// GetStudent retrieves one student together with their payment position.
func (srv *studentService) GetStudent(ctx context.Context, id uuid.UUID) (*usecase.StudentDetail, error) {
	student, err := srv.studentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return nil, domainerrors.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to load student")
	}

	paid, err := srv.paymentRepo.SumByStudentID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum student payments")
	}

	balance := student.FeeDue - paid
	if balance < 0 {
		balance = 0
	}

	return &usecase.StudentDetail{
		Student:    student,
		AmountPaid: paid,
		Balance:    balance,
	}, nil
}

// UpdateStudent modifies a student's mutable fields.
func (srv *studentService) UpdateStudent(ctx context.Context, id uuid.UUID, input usecase.UpdateStudentInput) (*entity.Student, error) {
	if !entity.IsValidLevel(input.Level) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("level must be 100, 200, 300 or 400")
	}
	if input.FeeDue < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fee due must not be negative")
	}

	student, err := srv.studentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return nil, domainerrors.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to load student")
	}

	student.FirstName = strings.TrimSpace(input.FirstName)
	student.LastName = strings.TrimSpace(input.LastName)
	student.Email = strings.TrimSpace(input.Email)
	student.Phone = strings.TrimSpace(input.Phone)
	student.Programme = strings.TrimSpace(input.Programme)
	student.Level = input.Level
	student.FeeDue = input.FeeDue

	if err := srv.studentRepo.Update(ctx, student); err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return nil, domainerrors.ErrStudentNotFound
		}

		return nil, err
	}

	return student, nil
}

// DeleteStudent removes a student record. Payment history is retained.
func (srv *studentService) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	if err := srv.studentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return domainerrors.ErrStudentNotFound
		}

		return errors.Wrap(err, "failed to delete student")
	}

	srv.log(ctx).Info("Student deleted", slog.String("studentID", id.String()))

	return nil
}

// ListStudents returns a filtered, paginated student listing.
func (srv *studentService) ListStudents(ctx context.Context, input usecase.ListStudentsInput) (*usecase.StudentListOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage < 1 {
		perPage = defaultStudentsPerPage
	}
	if perPage > maxStudentsPerPage {
		perPage = maxStudentsPerPage
	}

	students, total, err := srv.studentRepo.List(ctx, repository.StudentFilter{
		Programme: strings.TrimSpace(input.Programme),
		Level:     input.Level,
		Search:    strings.TrimSpace(input.Search),
		Offset:    (page - 1) * perPage,
		Limit:     perPage,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list students")
	}

	return &usecase.StudentListOutput{
		Students: students,
		Total:    total,
		Page:     page,
		PerPage:  perPage,
	}, nil
}
