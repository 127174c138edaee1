package command

import (
	"context"
	"fmt"

	"github.com/finworks/payment-portal/internal/payment/domain"
)

// CancelPaymentCommand cancels a payment on behalf of an employee. Unlike the
// owner path, processing payments qualify and a reason code is mandatory.
type CancelPaymentCommand struct {
	Actor      domain.Actor
	PaymentID  string
	ReasonCode string
	Reason     string
}

// CancelPaymentHandler handles employee cancellation
type CancelPaymentHandler struct {
	repo domain.PaymentRepository
}

// NewCancelPaymentHandler creates a new handler
func NewCancelPaymentHandler(repo domain.PaymentRepository) *CancelPaymentHandler {
	return &CancelPaymentHandler{repo: repo}
}

// Handle cancels a pending or processing payment
func (h *CancelPaymentHandler) Handle(ctx context.Context, cmd CancelPaymentCommand) (*domain.Payment, error) {
	payment, err := h.repo.FindByID(ctx, cmd.PaymentID)
	if err != nil {
		return nil, err
	}

	if err := payment.MarkCancelled(cmd.Actor, cmd.ReasonCode, cmd.Reason); err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to cancel payment: %w", err)
	}

	return payment, nil
}
