package postgres

import (
	"context"

	"compssa/internal/domain/entity"
	domainerrors "compssa/internal/domain/errors"
	"compssa/internal/domain/repository"
	"compssa/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements the domain.PaymentRepository interface using GORM.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// FindByID retrieves a single payment by its unique ID.
func (repo *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel
	if err := repo.db.WithContext(ctx).First(&paymentM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by id")
	}

	return toPaymentDomain(&paymentM), nil
}

// Create persists a new payment entity to the database.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateReference.WrapMessage("receipt reference already used")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStudentNotFound.WrapMessage("student does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required payment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt

	return nil
}

// ListByStudentID retrieves all payments for a student, newest first.
func (repo *paymentRepository) ListByStudentID(ctx context.Context, studentID uuid.UUID) ([]*entity.Payment, error) {
	var paymentMs []model.PaymentModel
	err := repo.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("paid_at DESC").
		Find(&paymentMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments by student")
	}

	return toPaymentDomainSlice(paymentMs), nil
}

// ListRecent retrieves the most recently recorded payments across all students.
func (repo *paymentRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Payment, error) {
	var paymentMs []model.PaymentModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&paymentMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent payments")
	}

	return toPaymentDomainSlice(paymentMs), nil
}

// SumByStudentID returns the total amount a student has paid, in pesewas.
func (repo *paymentRepository) SumByStudentID(ctx context.Context, studentID uuid.UUID) (int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("student_id = ?", studentID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum payments by student")
	}

	return total, nil
}

// TotalCollected returns the sum of all recorded payments, in pesewas.
func (repo *paymentRepository) TotalCollected(ctx context.Context) (int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum collected payments")
	}

	return total, nil
}

// Count returns the number of recorded payments.
func (repo *paymentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.PaymentModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count payments")
	}

	return count, nil
}

// --- Mapper Functions ---

// toPaymentDomain converts a GORM PaymentModel to a domain Payment entity.
func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:         data.ID,
		StudentID:  data.StudentID,
		Amount:     data.Amount,
		Method:     entity.PaymentMethod(data.Method),
		Reference:  data.Reference,
		RecordedBy: data.RecordedBy,
		PaidAt:     data.PaidAt,
		CreatedAt:  data.CreatedAt,
	}
}

func toPaymentDomainSlice(data []model.PaymentModel) []*entity.Payment {
	payments := make([]*entity.Payment, 0, len(data))
	for i := range data {
		payments = append(payments, toPaymentDomain(&data[i]))
	}

	return payments
}

// fromPaymentDomain converts a domain Payment entity to a GORM PaymentModel for persistence.
func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:         data.ID,
		StudentID:  data.StudentID,
		Amount:     data.Amount,
		Method:     data.Method.String(),
		Reference:  data.Reference,
		RecordedBy: data.RecordedBy,
		PaidAt:     data.PaidAt,
	}
}
