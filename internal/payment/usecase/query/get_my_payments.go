package query

import (
	"context"
	"fmt"

	"github.com/finworks/payment-portal/internal/payment/domain"
)

// GetMyPaymentsQuery lists a single customer's own payments
type GetMyPaymentsQuery struct {
	OwnerID string
	Page    int
	Limit   int
}

// GetMyPaymentsHandler handles the customer listing
type GetMyPaymentsHandler struct {
	repo domain.PaymentRepository
}

// NewGetMyPaymentsHandler creates a new get my payments handler
func NewGetMyPaymentsHandler(repo domain.PaymentRepository) *GetMyPaymentsHandler {
	return &GetMyPaymentsHandler{repo: repo}
}

// Handle executes the query, scoped strictly to the owner
func (h *GetMyPaymentsHandler) Handle(ctx context.Context, q GetMyPaymentsQuery) ([]domain.Payment, int64, error) {
	if q.OwnerID == "" {
		return nil, 0, domain.ErrForbidden
	}

	filter := domain.Filter{
		OwnerID: q.OwnerID,
		Page:    q.Page,
		Limit:   q.Limit,
	}
	filter.Normalize()

	payments, total, err := h.repo.Find(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get own payments: %w", err)
	}

	return payments, total, nil
}
