package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"compssa/internal/delivery/http/middleware"
	"compssa/internal/delivery/http/response"
	"compssa/internal/domain/entity"
	domainerrors "compssa/internal/domain/errors"
	"compssa/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment-related handlers.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

type recordPaymentRequest struct {
	Amount    int64      `json:"amount" validate:"required,gt=0"`
	Method    string     `json:"method" validate:"required,oneof=cash momo bank"`
	Reference string     `json:"reference" validate:"required"`
	PaidAt    *time.Time `json:"paid_at"`
}

// Record handles the payment recording request for one student.
func (h *PaymentHandler) Record(c echo.Context) error {
	account := middleware.AccountFromContext(c)
	if account == nil {
		return domainerrors.ErrTokenMissing
	}

	studentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid student id")
	}

	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "A positive amount, valid method and reference are required")
	}

	payment, err := h.uc.RecordPayment(c.Request().Context(), usecase.RecordPaymentInput{
		StudentID:  studentID,
		Amount:     req.Amount,
		Method:     entity.PaymentMethod(req.Method),
		Reference:  req.Reference,
		RecordedBy: account.ID,
		PaidAt:     req.PaidAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPaymentView(payment), "Payment recorded successfully")
}

// ListByStudent returns all payments for one student.
func (h *PaymentHandler) ListByStudent(c echo.Context) error {
	studentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid student id")
	}

	payments, err := h.uc.ListStudentPayments(c.Request().Context(), studentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPaymentViews(payments), "")
}

// ListRecent returns the most recently recorded payments.
func (h *PaymentHandler) ListRecent(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	payments, err := h.uc.ListRecentPayments(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPaymentViews(payments), "")
}

// ReceiptQR streams the PNG verification code for a payment receipt.
func (h *PaymentHandler) ReceiptQR(c echo.Context) error {
	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment id")
	}

	png, err := h.uc.GetReceiptQR(c.Request().Context(), paymentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
