package command

import (
	"context"
	"fmt"

	"github.com/finworks/payment-portal/internal/payment/domain"
)

// ValidatePaymentCommand marks a payment as completed
type ValidatePaymentCommand struct {
	Actor     domain.Actor
	PaymentID string
}

// ValidatePaymentHandler handles employee validation
type ValidatePaymentHandler struct {
	repo domain.PaymentRepository
}

// NewValidatePaymentHandler creates a new handler
func NewValidatePaymentHandler(repo domain.PaymentRepository) *ValidatePaymentHandler {
	return &ValidatePaymentHandler{repo: repo}
}

// Handle completes a pending or processing payment
func (h *ValidatePaymentHandler) Handle(ctx context.Context, cmd ValidatePaymentCommand) (*domain.Payment, error) {
	payment, err := h.repo.FindByID(ctx, cmd.PaymentID)
	if err != nil {
		return nil, err
	}

	if err := payment.MarkCompleted(cmd.Actor); err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to validate payment: %w", err)
	}

	return payment, nil
}
