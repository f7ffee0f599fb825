// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"compssa/internal/domain/entity"
	"compssa/internal/usecase"
)

// accountView is the API shape of an account. The password hash never leaves
// the server.
type accountView struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	FullName    string     `json:"full_name"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toAccountView(account *entity.Account) *accountView {
	if account == nil {
		return nil
	}

	return &accountView{
		ID:          account.ID.String(),
		Username:    account.Username,
		FullName:    account.FullName,
		Role:        account.Role.String(),
		IsActive:    account.IsActive,
		LastLoginAt: account.LastLoginAt,
		CreatedAt:   account.CreatedAt,
	}
}

func toAccountViews(accounts []*entity.Account) []*accountView {
	views := make([]*accountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, toAccountView(account))
	}

	return views
}

// studentView is the API shape of a student. Fee amounts are in pesewas.
type studentView struct {
	ID          string    `json:"id"`
	IndexNumber string    `json:"index_number"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Programme   string    `json:"programme"`
	Level       int       `json:"level"`
	FeeDue      int64     `json:"fee_due"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toStudentView(student *entity.Student) *studentView {
	if student == nil {
		return nil
	}

	return &studentView{
		ID:          student.ID.String(),
		IndexNumber: student.IndexNumber,
		FirstName:   student.FirstName,
		LastName:    student.LastName,
		Email:       student.Email,
		Phone:       student.Phone,
		Programme:   student.Programme,
		Level:       student.Level,
		FeeDue:      student.FeeDue,
		CreatedAt:   student.CreatedAt,
		UpdatedAt:   student.UpdatedAt,
	}
}

func toStudentViews(students []*entity.Student) []*studentView {
	views := make([]*studentView, 0, len(students))
	for _, student := range students {
		views = append(views, toStudentView(student))
	}

	return views
}

// studentDetailView adds the payment position to the student shape.
type studentDetailView struct {
	*studentView
	AmountPaid int64 `json:"amount_paid"`
	Balance    int64 `json:"balance"`
}

func toStudentDetailView(detail *usecase.StudentDetail) *studentDetailView {
	return &studentDetailView{
		studentView: toStudentView(detail.Student),
		AmountPaid:  detail.AmountPaid,
		Balance:     detail.Balance,
	}
}

// paymentView is the API shape of a payment. Amounts are in pesewas.
type paymentView struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"`
	Amount    int64     `json:"amount"`
	Method    string    `json:"method"`
	Reference string    `json:"reference"`
	PaidAt    time.Time `json:"paid_at"`
	CreatedAt time.Time `json:"created_at"`
}

func toPaymentView(payment *entity.Payment) *paymentView {
	if payment == nil {
		return nil
	}

	return &paymentView{
		ID:        payment.ID.String(),
		StudentID: payment.StudentID.String(),
		Amount:    payment.Amount,
		Method:    payment.Method.String(),
		Reference: payment.Reference,
		PaidAt:    payment.PaidAt,
		CreatedAt: payment.CreatedAt,
	}
}

func toPaymentViews(payments []*entity.Payment) []*paymentView {
	views := make([]*paymentView, 0, len(payments))
	for _, payment := range payments {
		views = append(views, toPaymentView(payment))
	}

	return views
}
