package usecase

import (
	"context"

	"compssa/internal/domain/repository"
)

// DashboardSummary aggregates the association's membership and collection
// position. All monetary figures are in pesewas.
type DashboardSummary struct {
	TotalStudents      int64
	TotalPayments      int64
	TotalFeesDue       int64
	TotalCollected     int64
	OutstandingBalance int64
	ByProgramme        []repository.ProgrammeCount
	ByLevel            []repository.LevelCount
}

// DashboardUsecase defines the interface for the reporting dashboard.
type DashboardUsecase interface {
	// GetSummary computes the current membership and collection aggregates.
	GetSummary(ctx context.Context) (*DashboardSummary, error)
}
