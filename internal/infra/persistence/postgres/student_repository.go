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
	"gorm.io/gorm/clause"
)

// studentRepository implements the domain.StudentRepository interface using GORM.
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository is the constructor for studentRepository.
func NewStudentRepository(db *gorm.DB) repository.StudentRepository {
	return &studentRepository{db: db}
}

// FindByID retrieves a single student by their unique ID.
func (repo *studentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	var studentM model.StudentModel
	if err := repo.db.WithContext(ctx).First(&studentM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student by id")
	}

	return toStudentDomain(&studentM), nil
}

// FindByIDForUpdate retrieves a student under SELECT ... FOR UPDATE. Concurrent
// payment recording against the same student serializes on this lock.
func (repo *studentRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	var studentM model.StudentModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&studentM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student for update")
	}

	return toStudentDomain(&studentM), nil
}

// FindByIndexNumber retrieves a single student by their index number.
func (repo *studentRepository) FindByIndexNumber(ctx context.Context, indexNumber string) (*entity.Student, error) {
	var studentM model.StudentModel
	if err := repo.db.WithContext(ctx).First(&studentM, "index_number = ?", indexNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student by index number")
	}

	return toStudentDomain(&studentM), nil
}

// Create persists a new student entity to the database.
func (repo *studentRepository) Create(ctx context.Context, student *entity.Student) error {
	studentM := fromStudentDomain(student)

	if err := repo.db.WithContext(ctx).Create(studentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrStudentAlreadyExists.WrapMessage("index number already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required student information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("registering account does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create student")
	}

	student.ID = studentM.ID
	student.CreatedAt = studentM.CreatedAt
	student.UpdatedAt = studentM.UpdatedAt

	return nil
}

// Update modifies an existing student entity in the database.
func (repo *studentRepository) Update(ctx context.Context, student *entity.Student) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StudentModel{}).
		Where("id = ?", student.ID).
		Updates(map[string]any{
			"first_name": student.FirstName,
			"last_name":  student.LastName,
			"email":      student.Email,
			"phone":      student.Phone,
			"programme":  student.Programme,
			"level":      student.Level,
			"fee_due":    student.FeeDue,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrStudentAlreadyExists.WrapMessage("index number already registered")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update student")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStudentNotFound
	}

	return nil
}

// Delete soft-deletes a student record. Payment history survives the delete.
func (repo *studentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.StudentModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete student")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStudentNotFound
	}

	return nil
}

// List retrieves students matching the filter, newest first, with the total
// match count before pagination.
func (repo *studentRepository) List(ctx context.Context, filter repository.StudentFilter) ([]*entity.Student, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.StudentModel{})

	if filter.Programme != "" {
		query = query.Where("programme = ?", filter.Programme)
	}
	if filter.Level != 0 {
		query = query.Where("level = ?", filter.Level)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"index_number ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count students")
	}

	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var studentMs []model.StudentModel
	if err := query.Order("created_at DESC").Find(&studentMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list students")
	}

	students := make([]*entity.Student, 0, len(studentMs))
	for i := range studentMs {
		students = append(students, toStudentDomain(&studentMs[i]))
	}

	return students, total, nil
}

// Count returns the number of registered students.
func (repo *studentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.StudentModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count students")
	}

	return count, nil
}

// CountByProgramme returns the per-programme student breakdown.
func (repo *studentRepository) CountByProgramme(ctx context.Context) ([]repository.ProgrammeCount, error) {
	var counts []repository.ProgrammeCount
	err := repo.db.WithContext(ctx).
		Model(&model.StudentModel{}).
		Select("programme, COUNT(*) AS count").
		Group("programme").
		Order("programme ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count students by programme")
	}

	return counts, nil
}

// CountByLevel returns the per-level student breakdown.
func (repo *studentRepository) CountByLevel(ctx context.Context) ([]repository.LevelCount, error) {
	var counts []repository.LevelCount
	err := repo.db.WithContext(ctx).
		Model(&model.StudentModel{}).
		Select("level, COUNT(*) AS count").
		Group("level").
		Order("level ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count students by level")
	}

	return counts, nil
}

// TotalFeesDue returns the sum of all students' fee obligations, in pesewas.
func (repo *studentRepository) TotalFeesDue(ctx context.Context) (int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.StudentModel{}).
		Select("COALESCE(SUM(fee_due), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum fees due")
	}

	return total, nil
}

// --- Mapper Functions ---

// toStudentDomain converts a GORM StudentModel to a domain Student entity.
func toStudentDomain(data *model.StudentModel) *entity.Student {
	if data == nil {
		return nil
	}

	return &entity.Student{
		ID:           data.ID,
		IndexNumber:  data.IndexNumber,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		Phone:        data.Phone,
		Programme:    data.Programme,
		Level:        data.Level,
		FeeDue:       data.FeeDue,
		RegisteredBy: data.RegisteredBy,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromStudentDomain converts a domain Student entity to a GORM StudentModel for persistence.
func fromStudentDomain(data *entity.Student) *model.StudentModel {
	if data == nil {
		return nil
	}

	return &model.StudentModel{
		ID:           data.ID,
		IndexNumber:  data.IndexNumber,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		Phone:        data.Phone,
		Programme:    data.Programme,
		Level:        data.Level,
		FeeDue:       data.FeeDue,
		RegisteredBy: data.RegisteredBy,
	}
}
