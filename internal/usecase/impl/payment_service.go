package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "compssa/internal/delivery/context"
	"compssa/internal/domain/entity"
	domainerrors "compssa/internal/domain/errors"
	"compssa/internal/domain/repository"
	"compssa/internal/domain/service"
	"compssa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultRecentPayments = 10
	maxRecentPayments     = 100
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager   repository.TransactionManager
	paymentRepo repository.PaymentRepository
	receiptQR   service.ReceiptQRService
	logger      *slog.Logger
}

// PaymentServiceParams holds dependencies for paymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PaymentRepo repository.PaymentRepository
	ReceiptQR   service.ReceiptQRService
	Logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager:   params.TxManager,
		paymentRepo: params.PaymentRepo,
		receiptQR:   params.ReceiptQR,
		logger:      params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordPayment records a fee payment for a student. The student row is locked
// inside the transaction so that two clerks recording payments for the same
// student at the same time cannot jointly overshoot the outstanding balance.
func (srv *paymentService) RecordPayment(ctx context.Context, input usecase.RecordPaymentInput) (*entity.Payment, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must be positive")
	}
	if !input.Method.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("method must be cash, momo or bank")
	}
	reference := strings.TrimSpace(input.Reference)
	if reference == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("reference must not be empty")
	}

	paidAt := time.Now()
	if input.PaidAt != nil {
		paidAt = *input.PaidAt
	}

	var recorded *entity.Payment
	txErr := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		studentRepo := repoFactory.StudentRepo()
		paymentRepo := repoFactory.PaymentRepo()

		student, err := studentRepo.FindByIDForUpdate(ctx, input.StudentID)
		if err != nil {
			if errors.Is(err, repository.ErrStudentNotFound) {
				return domainerrors.ErrStudentNotFound
			}

			return errors.Wrap(err, "failed to lock student row")
		}

		paid, err := paymentRepo.SumByStudentID(ctx, student.ID)
		if err != nil {
			return errors.Wrap(err, "failed to sum student payments")
		}

		if paid+input.Amount > student.FeeDue {
			return domainerrors.ErrPaymentExceedsBalance
		}

		payment := &entity.Payment{
			StudentID:  student.ID,
			Amount:     input.Amount,
			Method:     input.Method,
			Reference:  reference,
			RecordedBy: input.RecordedBy,
			PaidAt:     paidAt,
		}
		if err := paymentRepo.Create(ctx, payment); err != nil {
			return err
		}

		recorded = payment

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	srv.log(ctx).Info("Payment recorded",
		slog.String("studentID", recorded.StudentID.String()),
		slog.Int64("amount", recorded.Amount),
		slog.String("method", recorded.Method.String()),
	)

	return recorded, nil
}

// ListStudentPayments returns all payments for one student, newest first.
func (srv *paymentService) ListStudentPayments(ctx context.Context, studentID uuid.UUID) ([]*entity.Payment, error) {
	payments, err := srv.paymentRepo.ListByStudentID(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list student payments")
	}

	return payments, nil
}

// ListRecentPayments returns the most recently recorded payments.
func (srv *paymentService) ListRecentPayments(ctx context.Context, limit int) ([]*entity.Payment, error) {
	if limit < 1 {
		limit = defaultRecentPayments
	}
	if limit > maxRecentPayments {
		limit = maxRecentPayments
	}

	payments, err := srv.paymentRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent payments")
	}

	return payments, nil
}

// GetReceiptQR renders the PNG verification code for a payment receipt.
func (srv *paymentService) GetReceiptQR(ctx context.Context, paymentID uuid.UUID) ([]byte, error) {
	payment, err := srv.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to load payment")
	}

	png, err := srv.receiptQR.GenerateReceiptQR(payment.ID, payment.Reference)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("failed to generate receipt QR")
	}

	return png, nil
}
