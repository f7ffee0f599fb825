package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"compssa/internal/delivery/http/middleware"
	"compssa/internal/delivery/http/response"
	domainerrors "compssa/internal/domain/errors"
	"compssa/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StudentHandler holds dependencies for student-related handlers.
type StudentHandler struct {
	uc     usecase.StudentUsecase
	logger *slog.Logger
}

// NewStudentHandler is the constructor for StudentHandler, injected by Fx.
func NewStudentHandler(uc usecase.StudentUsecase, logger *slog.Logger) *StudentHandler {
	return &StudentHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerStudentRequest struct {
	IndexNumber string `json:"index_number" validate:"required"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
	Programme   string `json:"programme" validate:"required"`
	Level       int    `json:"level" validate:"required"`
	FeeDue      int64  `json:"fee_due" validate:"gte=0"`
}

// Register handles the student registration request.
func (h *StudentHandler) Register(c echo.Context) error {
	account := middleware.AccountFromContext(c)
	if account == nil {
		return domainerrors.ErrTokenMissing
	}

	var req registerStudentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid student input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Index number, names, programme and level are required")
	}

	student, err := h.uc.RegisterStudent(c.Request().Context(), usecase.RegisterStudentInput{
		IndexNumber:  req.IndexNumber,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Programme:    req.Programme,
		Level:        req.Level,
		FeeDue:       req.FeeDue,
		RegisteredBy: account.ID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toStudentView(student), "Student registered successfully")
}

// Get returns one student with their payment position.
func (h *StudentHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid student id")
	}

	detail, err := h.uc.GetStudent(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStudentDetailView(detail), "")
}

type updateStudentRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
	Programme string `json:"programme" validate:"required"`
	Level     int    `json:"level" validate:"required"`
	FeeDue    int64  `json:"fee_due" validate:"gte=0"`
}

// Update modifies a student's mutable fields.
func (h *StudentHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid student id")
	}

	var req updateStudentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid student input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Names, programme and level are required")
	}

	student, err := h.uc.UpdateStudent(c.Request().Context(), id, usecase.UpdateStudentInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Programme: req.Programme,
		Level:     req.Level,
		FeeDue:    req.FeeDue,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStudentView(student), "Student updated successfully")
}

// Delete removes a student record.
func (h *StudentHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid student id")
	}

	if err := h.uc.DeleteStudent(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Student deleted successfully")
}

// List returns a filtered, paginated student listing.
func (h *StudentHandler) List(c echo.Context) error {
	level, _ := strconv.Atoi(c.QueryParam("level"))
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))

	out, err := h.uc.ListStudents(c.Request().Context(), usecase.ListStudentsInput{
		Programme: c.QueryParam("programme"),
		Level:     level,
		Search:    c.QueryParam("search"),
		Page:      page,
		PerPage:   perPage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"students": toStudentViews(out.Students),
		"total":    out.Total,
		"page":     out.Page,
		"per_page": out.PerPage,
	}, "")
}
