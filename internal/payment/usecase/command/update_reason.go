package command

import (
	"context"
	"fmt"

	"github.com/finworks/payment-portal/internal/payment/domain"
)

// UpdateReasonCommand amends the failure reason of a cancelled or failed
// payment; the reason code is updated only when provided
type UpdateReasonCommand struct {
	Actor      domain.Actor
	PaymentID  string
	Reason     string
	ReasonCode string
}

// UpdateReasonHandler handles failure reason updates
type UpdateReasonHandler struct {
	repo domain.PaymentRepository
}

// NewUpdateReasonHandler creates a new handler
func NewUpdateReasonHandler(repo domain.PaymentRepository) *UpdateReasonHandler {
	return &UpdateReasonHandler{repo: repo}
}

// Handle updates the failure metadata
func (h *UpdateReasonHandler) Handle(ctx context.Context, cmd UpdateReasonCommand) (*domain.Payment, error) {
	payment, err := h.repo.FindByID(ctx, cmd.PaymentID)
	if err != nil {
		return nil, err
	}

	if err := payment.UpdateFailure(cmd.Actor, cmd.Reason, cmd.ReasonCode); err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to update reason: %w", err)
	}

	return payment, nil
}
