package command

import (
	"context"
	"fmt"

	"github.com/finworks/payment-portal/internal/payment/domain"
)

// TrashPaymentCommand soft-deletes a terminal payment. Confirmed carries the
// caller's step-up confirmation; without it the command refuses to run.
type TrashPaymentCommand struct {
	Actor     domain.Actor
	PaymentID string
	Confirmed bool
}

// TrashPaymentHandler handles soft deletion
type TrashPaymentHandler struct {
	repo domain.PaymentRepository
}

// NewTrashPaymentHandler creates a new handler
func NewTrashPaymentHandler(repo domain.PaymentRepository) *TrashPaymentHandler {
	return &TrashPaymentHandler{repo: repo}
}

// Handle moves the payment to the trash
func (h *TrashPaymentHandler) Handle(ctx context.Context, cmd TrashPaymentCommand) (*domain.Payment, error) {
	if !cmd.Confirmed {
		return nil, domain.ErrConfirmationRequired
	}

	payment, err := h.repo.FindByID(ctx, cmd.PaymentID)
	if err != nil {
		return nil, err
	}

	if err := payment.Trash(cmd.Actor); err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to trash payment: %w", err)
	}

	return payment, nil
}
