package impl

import (
	"context"
	"log/slog"

	"compssa/internal/domain/repository"
	"compssa/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	studentRepo repository.StudentRepository
	paymentRepo repository.PaymentRepository
	logger      *slog.Logger
}

// DashboardServiceParams holds dependencies for dashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	StudentRepo repository.StudentRepository
	PaymentRepo repository.PaymentRepository
	Logger      *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		studentRepo: params.StudentRepo,
		paymentRepo: params.PaymentRepo,
		logger:      params.Logger,
	}
}

// GetSummary computes the current membership and collection aggregates. The
// figures come from separate queries, so a summary read concurrent with a
// write may be off by one payment; the dashboard tolerates that.
func (srv *dashboardService) GetSummary(ctx context.Context) (*usecase.DashboardSummary, error) {
	totalStudents, err := srv.studentRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count students")
	}

	totalPayments, err := srv.paymentRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count payments")
	}

	totalFeesDue, err := srv.studentRepo.TotalFeesDue(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum fees due")
	}

	totalCollected, err := srv.paymentRepo.TotalCollected(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum collected payments")
	}

	byProgramme, err := srv.studentRepo.CountByProgramme(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to break down by programme")
	}

	byLevel, err := srv.studentRepo.CountByLevel(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to break down by level")
	}

	outstanding := totalFeesDue - totalCollected
	if outstanding < 0 {
		outstanding = 0
	}

	return &usecase.DashboardSummary{
		TotalStudents:      totalStudents,
		TotalPayments:      totalPayments,
		TotalFeesDue:       totalFeesDue,
		TotalCollected:     totalCollected,
		OutstandingBalance: outstanding,
		ByProgramme:        byProgramme,
		ByLevel:            byLevel,
	}, nil
}
