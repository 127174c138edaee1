package query

import (
	"context"

	"github.com/finworks/payment-portal/internal/payment/domain"
)

// GetPaymentQuery fetches one payment by id
type GetPaymentQuery struct {
	ID string
}

// GetPaymentHandler handles get payment queries
type GetPaymentHandler struct {
	repo domain.PaymentRepository
}

// NewGetPaymentHandler creates a new get payment handler
func NewGetPaymentHandler(repo domain.PaymentRepository) *GetPaymentHandler {
	return &GetPaymentHandler{repo: repo}
}

// Handle executes the get payment query
func (h *GetPaymentHandler) Handle(ctx context.Context, q GetPaymentQuery) (*domain.Payment, error) {
	if q.ID == "" {
		return nil, domain.ErrNotFound
	}
	return h.repo.FindByID(ctx, q.ID)
}
