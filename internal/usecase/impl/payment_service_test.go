package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"compssa/internal/domain/entity"
	domainerrors "compssa/internal/domain/errors"
	"compssa/internal/infra/qrcode"
	"compssa/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPaymentService(students *fakeStudentRepo, payments *fakePaymentRepo) *paymentService {
	return &paymentService{
		txManager:   &fakeTxManager{factory: &fakeRepositoryFactory{studentRepo: students, paymentRepo: payments}},
		paymentRepo: payments,
		receiptQR:   qrcode.NewReceiptQRService(128, "M"),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func seedStudent(t *testing.T, students *fakeStudentRepo, feeDue int64) *entity.Student {
	t.Helper()

	student := &entity.Student{
		ID:          uuid.New(),
		IndexNumber: "UG10234567",
		FirstName:   "Kofi",
		LastName:    "Asante",
		Programme:   "BSc Computer Science",
		Level:       200,
		FeeDue:      feeDue,
	}
	students.put(student)

	return student
}

func validPaymentInput(studentID uuid.UUID) usecase.RecordPaymentInput {
	return usecase.RecordPaymentInput{
		StudentID:  studentID,
		Amount:     2000,
		Method:     entity.PaymentMethodMomo,
		Reference:  "RCP-001",
		RecordedBy: uuid.New(),
	}
}

func TestRecordPayment_Success(t *testing.T) {
	students := newFakeStudentRepo()
	payments := newFakePaymentRepo()
	student := seedStudent(t, students, 5000)
	srv := newTestPaymentService(students, payments)

	payment, err := srv.RecordPayment(context.Background(), validPaymentInput(student.ID))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, payment.ID)
	assert.Equal(t, int64(2000), payment.Amount)
	assert.False(t, payment.PaidAt.IsZero())
}

func TestRecordPayment_RejectsOverpayment(t *testing.T) {
	students := newFakeStudentRepo()
	payments := newFakePaymentRepo()
	student := seedStudent(t, students, 5000)
	srv := newTestPaymentService(students, payments)

	input := validPaymentInput(student.ID)
	input.Amount = 4000
	_, err := srv.RecordPayment(context.Background(), input)
	require.NoError(t, err)

	// 4000 paid of 5000 due: another 2000 would overshoot.
	input.Reference = "RCP-002"
	input.Amount = 2000
	_, err = srv.RecordPayment(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentExceedsBalance)

	// Settling the exact remainder is fine.
	input.Reference = "RCP-003"
	input.Amount = 1000
	_, err = srv.RecordPayment(context.Background(), input)
	assert.NoError(t, err)
}

func TestRecordPayment_DuplicateReference(t *testing.T) {
	students := newFakeStudentRepo()
	payments := newFakePaymentRepo()
	student := seedStudent(t, students, 10000)
	srv := newTestPaymentService(students, payments)

	_, err := srv.RecordPayment(context.Background(), validPaymentInput(student.ID))
	require.NoError(t, err)

	_, err = srv.RecordPayment(context.Background(), validPaymentInput(student.ID))
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateReference)
}

func TestRecordPayment_ValidationFailures(t *testing.T) {
	students := newFakeStudentRepo()
	student := seedStudent(t, students, 5000)
	srv := newTestPaymentService(students, newFakePaymentRepo())

	testCases := []struct {
		name   string
		mutate func(*usecase.RecordPaymentInput)
	}{
		{name: "zero amount", mutate: func(in *usecase.RecordPaymentInput) { in.Amount = 0 }},
		{name: "negative amount", mutate: func(in *usecase.RecordPaymentInput) { in.Amount = -100 }},
		{name: "unknown method", mutate: func(in *usecase.RecordPaymentInput) { in.Method = "cheque" }},
		{name: "blank reference", mutate: func(in *usecase.RecordPaymentInput) { in.Reference = "  " }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := validPaymentInput(student.ID)
			tc.mutate(&input)

			_, err := srv.RecordPayment(context.Background(), input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestRecordPayment_UnknownStudent(t *testing.T) {
	srv := newTestPaymentService(newFakeStudentRepo(), newFakePaymentRepo())

	_, err := srv.RecordPayment(context.Background(), validPaymentInput(uuid.New()))
	assert.ErrorIs(t, err, domainerrors.ErrStudentNotFound)
}

func TestListStudentPayments(t *testing.T) {
	students := newFakeStudentRepo()
	payments := newFakePaymentRepo()
	student := seedStudent(t, students, 10000)
	srv := newTestPaymentService(students, payments)

	input := validPaymentInput(student.ID)
	_, err := srv.RecordPayment(context.Background(), input)
	require.NoError(t, err)
	input.Reference = "RCP-002"
	_, err = srv.RecordPayment(context.Background(), input)
	require.NoError(t, err)

	listed, err := srv.ListStudentPayments(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestListRecentPayments_ClampsLimit(t *testing.T) {
	students := newFakeStudentRepo()
	payments := newFakePaymentRepo()
	seedStudent(t, students, 10000)
	srv := newTestPaymentService(students, payments)

	listed, err := srv.ListRecentPayments(context.Background(), -5)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestGetReceiptQR(t *testing.T) {
	students := newFakeStudentRepo()
	payments := newFakePaymentRepo()
	student := seedStudent(t, students, 5000)
	srv := newTestPaymentService(students, payments)

	payment, err := srv.RecordPayment(context.Background(), validPaymentInput(student.ID))
	require.NoError(t, err)

	png, err := srv.GetReceiptQR(context.Background(), payment.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	_, err = srv.GetReceiptQR(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotFound)
}
