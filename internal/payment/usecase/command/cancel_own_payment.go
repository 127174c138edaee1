package command

import (
	"context"
	"fmt"

	"github.com/finworks/payment-portal/internal/payment/domain"
)

// CancelOwnPaymentCommand cancels a customer's own pending payment. No reason
// code is required on this path.
type CancelOwnPaymentCommand struct {
	Owner     domain.Actor
	PaymentID string
}

// CancelOwnPaymentHandler handles owner-initiated cancellation
type CancelOwnPaymentHandler struct {
	repo domain.PaymentRepository
}

// NewCancelOwnPaymentHandler creates a new handler
func NewCancelOwnPaymentHandler(repo domain.PaymentRepository) *CancelOwnPaymentHandler {
	return &CancelOwnPaymentHandler{repo: repo}
}

// Handle cancels the payment if it belongs to the caller and is still pending
func (h *CancelOwnPaymentHandler) Handle(ctx context.Context, cmd CancelOwnPaymentCommand) (*domain.Payment, error) {
	payment, err := h.repo.FindByID(ctx, cmd.PaymentID)
	if err != nil {
		return nil, err
	}

	// Another customer's payment surfaces as not-found, never as data
	if payment.UserID != cmd.Owner.ID {
		return nil, domain.ErrNotFound
	}

	if err := payment.CancelByOwner(cmd.Owner); err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to cancel payment: %w", err)
	}

	return payment, nil
}
