package command

import (
	"context"
	"fmt"

	"github.com/finworks/payment-portal/internal/payment/domain"
)

// RestorePaymentCommand clears the soft-delete markers; status is unchanged
type RestorePaymentCommand struct {
	Actor     domain.Actor
	PaymentID string
}

// RestorePaymentHandler handles restoration from the trash
type RestorePaymentHandler struct {
	repo domain.PaymentRepository
}

// NewRestorePaymentHandler creates a new handler
func NewRestorePaymentHandler(repo domain.PaymentRepository) *RestorePaymentHandler {
	return &RestorePaymentHandler{repo: repo}
}

// Handle restores the payment
func (h *RestorePaymentHandler) Handle(ctx context.Context, cmd RestorePaymentCommand) (*domain.Payment, error) {
	payment, err := h.repo.FindByID(ctx, cmd.PaymentID)
	if err != nil {
		return nil, err
	}

	if err := payment.Restore(cmd.Actor); err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to restore payment: %w", err)
	}

	return payment, nil
}
