package handler

import (
	"log/slog"
	"net/http"

	"compssa/internal/delivery/http/response"
	"compssa/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler holds dependencies for the reporting dashboard.
type DashboardHandler struct {
	uc     usecase.DashboardUsecase
	logger *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		uc:     uc,
		logger: logger,
	}
}

type programmeBreakdownView struct {
	Programme string `json:"programme"`
	Count     int64  `json:"count"`
}

type levelBreakdownView struct {
	Level int   `json:"level"`
	Count int64 `json:"count"`
}

type summaryView struct {
	TotalStudents      int64                    `json:"total_students"`
	TotalPayments      int64                    `json:"total_payments"`
	TotalFeesDue       int64                    `json:"total_fees_due"`
	TotalCollected     int64                    `json:"total_collected"`
	OutstandingBalance int64                    `json:"outstanding_balance"`
	ByProgramme        []programmeBreakdownView `json:"by_programme"`
	ByLevel            []levelBreakdownView     `json:"by_level"`
}

// Summary returns the current membership and collection aggregates.
func (h *DashboardHandler) Summary(c echo.Context) error {
	summary, err := h.uc.GetSummary(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	view := summaryView{
		TotalStudents:      summary.TotalStudents,
		TotalPayments:      summary.TotalPayments,
		TotalFeesDue:       summary.TotalFeesDue,
		TotalCollected:     summary.TotalCollected,
		OutstandingBalance: summary.OutstandingBalance,
		ByProgramme:        make([]programmeBreakdownView, 0, len(summary.ByProgramme)),
		ByLevel:            make([]levelBreakdownView, 0, len(summary.ByLevel)),
	}
	for _, p := range summary.ByProgramme {
		view.ByProgramme = append(view.ByProgramme, programmeBreakdownView{Programme: p.Programme, Count: p.Count})
	}
	for _, l := range summary.ByLevel {
		view.ByLevel = append(view.ByLevel, levelBreakdownView{Level: l.Level, Count: l.Count})
	}

	return response.Success(c, http.StatusOK, view, "")
}
