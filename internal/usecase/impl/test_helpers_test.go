package impl

import (
	"context"
	"sync"
	"time"

	"compssa/internal/domain/entity"
	domainerrors "compssa/internal/domain/errors"
	"compssa/internal/domain/repository"
	"compssa/internal/domain/service"

	"github.com/google/uuid"
)

// --- in-memory repositories ---

type fakeAccountRepo struct {
	mu                sync.Mutex
	accounts          map[uuid.UUID]*entity.Account
	failUpdateLockout error
	lockoutUpdates    int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*entity.Account)}
}

func (r *fakeAccountRepo) put(account *entity.Account) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cloned := *account
	r.accounts[account.ID] = &cloned
}

func (r *fakeAccountRepo) get(id uuid.UUID) *entity.Account {
	r.mu.Lock()
	defer r.mu.Unlock()
	if acc, ok := r.accounts[id]; ok {
		cloned := *acc
		return &cloned
	}

	return nil
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	if acc := r.get(id); acc != nil {
		return acc, nil
	}

	return nil, repository.ErrAccountNotFound
}

func (r *fakeAccountRepo) FindByUsername(_ context.Context, username string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, acc := range r.accounts {
		if acc.Username == username {
			cloned := *acc
			return &cloned, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *fakeAccountRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	r.put(account)

	return nil
}

func (r *fakeAccountRepo) UpdateLockout(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	r.lockoutUpdates++
	fail := r.failUpdateLockout
	r.mu.Unlock()
	if fail != nil {
		return fail
	}

	stored := r.get(account.ID)
	if stored == nil {
		return repository.ErrAccountNotFound
	}
	stored.FailedLoginCount = account.FailedLoginCount
	stored.LockedUntil = account.LockedUntil
	stored.LastLoginAt = account.LastLoginAt
	r.put(stored)

	return nil
}

func (r *fakeAccountRepo) UpdatePasswordHash(_ context.Context, id uuid.UUID, passwordHash string) error {
	stored := r.get(id)
	if stored == nil {
		return repository.ErrAccountNotFound
	}
	stored.PasswordHash = passwordHash
	r.put(stored)

	return nil
}

func (r *fakeAccountRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	stored := r.get(id)
	if stored == nil {
		return repository.ErrAccountNotFound
	}
	stored.IsActive = active
	r.put(stored)

	return nil
}

func (r *fakeAccountRepo) List(_ context.Context) ([]*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	accounts := make([]*entity.Account, 0, len(r.accounts))
	for _, acc := range r.accounts {
		cloned := *acc
		accounts = append(accounts, &cloned)
	}

	return accounts, nil
}

type fakeStudentRepo struct {
	mu       sync.Mutex
	students map[uuid.UUID]*entity.Student
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[uuid.UUID]*entity.Student)}
}

func (r *fakeStudentRepo) put(student *entity.Student) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cloned := *student
	r.students[student.ID] = &cloned
}

func (r *fakeStudentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.students[id]; ok {
		cloned := *s
		return &cloned, nil
	}

	return nil, repository.ErrStudentNotFound
}

func (r *fakeStudentRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeStudentRepo) FindByIndexNumber(_ context.Context, indexNumber string) (*entity.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.students {
		if s.IndexNumber == indexNumber {
			cloned := *s
			return &cloned, nil
		}
	}

	return nil, repository.ErrStudentNotFound
}

func (r *fakeStudentRepo) Create(_ context.Context, student *entity.Student) error {
	r.mu.Lock()
	for _, s := range r.students {
		if s.IndexNumber == student.IndexNumber {
			r.mu.Unlock()
			return domainerrors.ErrStudentAlreadyExists
		}
	}
	r.mu.Unlock()
	if student.ID == uuid.Nil {
		student.ID = uuid.New()
	}
	r.put(student)

	return nil
}

func (r *fakeStudentRepo) Update(_ context.Context, student *entity.Student) error {
	if _, err := r.FindByID(context.Background(), student.ID); err != nil {
		return err
	}
	r.put(student)

	return nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.students[id]; !ok {
		return repository.ErrStudentNotFound
	}
	delete(r.students, id)

	return nil
}

func (r *fakeStudentRepo) List(_ context.Context, filter repository.StudentFilter) ([]*entity.Student, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Student
	for _, s := range r.students {
		if filter.Programme != "" && s.Programme != filter.Programme {
			continue
		}
		if filter.Level != 0 && s.Level != filter.Level {
			continue
		}
		cloned := *s
		matched = append(matched, &cloned)
	}
	total := int64(len(matched))
	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[filter.Offset:]
		}
	}
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}

	return matched, total, nil
}

func (r *fakeStudentRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.students)), nil
}

func (r *fakeStudentRepo) CountByProgramme(_ context.Context) ([]repository.ProgrammeCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byProgramme := make(map[string]int64)
	for _, s := range r.students {
		byProgramme[s.Programme]++
	}
	counts := make([]repository.ProgrammeCount, 0, len(byProgramme))
	for programme, count := range byProgramme {
		counts = append(counts, repository.ProgrammeCount{Programme: programme, Count: count})
	}

	return counts, nil
}

func (r *fakeStudentRepo) CountByLevel(_ context.Context) ([]repository.LevelCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byLevel := make(map[int]int64)
	for _, s := range r.students {
		byLevel[s.Level]++
	}
	counts := make([]repository.LevelCount, 0, len(byLevel))
	for level, count := range byLevel {
		counts = append(counts, repository.LevelCount{Level: level, Count: count})
	}

	return counts, nil
}

func (r *fakeStudentRepo) TotalFeesDue(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total int64
	for _, s := range r.students {
		total += s.FeeDue
	}

	return total, nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments []*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{}
}

func (r *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.payments {
		if p.ID == id {
			cloned := *p
			return &cloned, nil
		}
	}

	return nil, repository.ErrPaymentNotFound
}

func (r *fakePaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.payments {
		if p.Reference == payment.Reference {
			return domainerrors.ErrDuplicateReference
		}
	}
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	cloned := *payment
	r.payments = append(r.payments, &cloned)

	return nil
}

func (r *fakePaymentRepo) ListByStudentID(_ context.Context, studentID uuid.UUID) ([]*entity.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Payment
	for _, p := range r.payments {
		if p.StudentID == studentID {
			cloned := *p
			matched = append(matched, &cloned)
		}
	}

	return matched, nil
}

func (r *fakePaymentRepo) ListRecent(_ context.Context, limit int) ([]*entity.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	payments := make([]*entity.Payment, 0, len(r.payments))
	for i := len(r.payments) - 1; i >= 0 && len(payments) < limit; i-- {
		cloned := *r.payments[i]
		payments = append(payments, &cloned)
	}

	return payments, nil
}

func (r *fakePaymentRepo) SumByStudentID(_ context.Context, studentID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total int64
	for _, p := range r.payments {
		if p.StudentID == studentID {
			total += p.Amount
		}
	}

	return total, nil
}

func (r *fakePaymentRepo) TotalCollected(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total int64
	for _, p := range r.payments {
		total += p.Amount
	}

	return total, nil
}

func (r *fakePaymentRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.payments)), nil
}

// --- transaction manager ---

type fakeRepositoryFactory struct {
	accountRepo repository.AccountRepository
	studentRepo repository.StudentRepository
	paymentRepo repository.PaymentRepository
}

func (f *fakeRepositoryFactory) AccountRepo() repository.AccountRepository { return f.accountRepo }
func (f *fakeRepositoryFactory) StudentRepo() repository.StudentRepository { return f.studentRepo }
func (f *fakeRepositoryFactory) PaymentRepo() repository.PaymentRepository { return f.paymentRepo }

// fakeTxManager runs the callback directly; the in-memory repositories apply
// writes immediately, so there is nothing to commit or roll back.
type fakeTxManager struct {
	factory  *fakeRepositoryFactory
	beginErr error
}

func (tm *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if tm.beginErr != nil {
		return tm.beginErr
	}

	return fn(tm.factory)
}

// --- token service ---

type fakeTokenService struct {
	mu          sync.Mutex
	issued      map[string]*service.Claims
	validateErr error
	generateErr error
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{issued: make(map[string]*service.Claims)}
}

func (s *fakeTokenService) GenerateToken(accountID uuid.UUID, username string, role string) (string, error) {
	if s.generateErr != nil {
		return "", s.generateErr
	}
	token := "token-" + uuid.New().String()
	s.mu.Lock()
	s.issued[token] = &service.Claims{AccountID: accountID, Username: username, Role: role}
	s.mu.Unlock()

	return token, nil
}

func (s *fakeTokenService) ValidateToken(token string) (*service.Claims, error) {
	if s.validateErr != nil {
		return nil, s.validateErr
	}
	s.mu.Lock()
	claims, ok := s.issued[token]
	s.mu.Unlock()
	if !ok {
		return nil, service.ErrTokenInvalid
	}

	return claims, nil
}

func (s *fakeTokenService) AccessTokenDuration() time.Duration {
	return 24 * time.Hour
}
