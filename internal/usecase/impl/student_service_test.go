package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"compssa/internal/domain/entity"
	domainerrors "compssa/internal/domain/errors"
	"compssa/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStudentService(students *fakeStudentRepo, payments *fakePaymentRepo) *studentService {
	return &studentService{
		studentRepo: students,
		paymentRepo: payments,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func validRegisterInput() usecase.RegisterStudentInput {
	return usecase.RegisterStudentInput{
		IndexNumber:  "ug10234567",
		FirstName:    "Kofi",
		LastName:     "Asante",
		Email:        "kofi@example.com",
		Phone:        "0244000000",
		Programme:    "BSc Computer Science",
		Level:        200,
		FeeDue:       5000, // 50 cedis in pesewas.
		RegisteredBy: uuid.New(),
	}
}

func TestRegisterStudent_Success(t *testing.T) {
	srv := newTestStudentService(newFakeStudentRepo(), newFakePaymentRepo())

	student, err := srv.RegisterStudent(context.Background(), validRegisterInput())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, student.ID)
	// Index numbers are normalized to upper case.
	assert.Equal(t, "UG10234567", student.IndexNumber)
	assert.Equal(t, 200, student.Level)
}

func TestRegisterStudent_DuplicateIndexNumber(t *testing.T) {
	srv := newTestStudentService(newFakeStudentRepo(), newFakePaymentRepo())

	_, err := srv.RegisterStudent(context.Background(), validRegisterInput())
	require.NoError(t, err)

	_, err = srv.RegisterStudent(context.Background(), validRegisterInput())
	assert.ErrorIs(t, err, domainerrors.ErrStudentAlreadyExists)
}

func TestRegisterStudent_InvalidLevel(t *testing.T) {
	srv := newTestStudentService(newFakeStudentRepo(), newFakePaymentRepo())

	input := validRegisterInput()
	input.Level = 250

	_, err := srv.RegisterStudent(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRegisterStudent_NegativeFee(t *testing.T) {
	srv := newTestStudentService(newFakeStudentRepo(), newFakePaymentRepo())

	input := validRegisterInput()
	input.FeeDue = -1

	_, err := srv.RegisterStudent(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestGetStudent_IncludesPaymentPosition(t *testing.T) {
	students := newFakeStudentRepo()
	payments := newFakePaymentRepo()
	srv := newTestStudentService(students, payments)

	student, err := srv.RegisterStudent(context.Background(), validRegisterInput())
	require.NoError(t, err)

	require.NoError(t, payments.Create(context.Background(), &entity.Payment{
		StudentID: student.ID,
		Amount:    2000,
		Method:    entity.PaymentMethodCash,
		Reference: "RCP-001",
	}))

	detail, err := srv.GetStudent(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), detail.AmountPaid)
	assert.Equal(t, int64(3000), detail.Balance)
}

func TestGetStudent_NotFound(t *testing.T) {
	srv := newTestStudentService(newFakeStudentRepo(), newFakePaymentRepo())

	_, err := srv.GetStudent(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrStudentNotFound)
}

func TestUpdateStudent_Success(t *testing.T) {
	srv := newTestStudentService(newFakeStudentRepo(), newFakePaymentRepo())

	student, err := srv.RegisterStudent(context.Background(), validRegisterInput())
	require.NoError(t, err)

	updated, err := srv.UpdateStudent(context.Background(), student.ID, usecase.UpdateStudentInput{
		FirstName: "Kofi",
		LastName:  "Asante-Darko",
		Programme: "BSc Information Technology",
		Level:     300,
		FeeDue:    6000,
	})
	require.NoError(t, err)
	assert.Equal(t, "Asante-Darko", updated.LastName)
	assert.Equal(t, 300, updated.Level)
	// The index number survives every update.
	assert.Equal(t, "UG10234567", updated.IndexNumber)
}

func TestDeleteStudent_NotFound(t *testing.T) {
	srv := newTestStudentService(newFakeStudentRepo(), newFakePaymentRepo())

	err := srv.DeleteStudent(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrStudentNotFound)
}

func TestListStudents_Pagination(t *testing.T) {
	srv := newTestStudentService(newFakeStudentRepo(), newFakePaymentRepo())

	for i := 0; i < 5; i++ {
		input := validRegisterInput()
		input.IndexNumber = input.IndexNumber + string(rune('A'+i))
		_, err := srv.RegisterStudent(context.Background(), input)
		require.NoError(t, err)
	}

	out, err := srv.ListStudents(context.Background(), usecase.ListStudentsInput{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, out.Students, 2)
	assert.Equal(t, int64(5), out.Total)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 2, out.PerPage)
}
