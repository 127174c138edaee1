package command

import (
	"context"
	"fmt"

	"github.com/finworks/payment-portal/internal/payment/domain"
)

// EscalatePaymentCommand flags a payment for heightened review attention
type EscalatePaymentCommand struct {
	Actor     domain.Actor
	PaymentID string
	Notes     string
}

// EscalatePaymentHandler handles escalation
type EscalatePaymentHandler struct {
	repo domain.PaymentRepository
}

// NewEscalatePaymentHandler creates a new handler
func NewEscalatePaymentHandler(repo domain.PaymentRepository) *EscalatePaymentHandler {
	return &EscalatePaymentHandler{repo: repo}
}

// Handle escalates the payment
func (h *EscalatePaymentHandler) Handle(ctx context.Context, cmd EscalatePaymentCommand) (*domain.Payment, error) {
	payment, err := h.repo.FindByID(ctx, cmd.PaymentID)
	if err != nil {
		return nil, err
	}

	if err := payment.Escalate(cmd.Actor, cmd.Notes); err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to escalate payment: %w", err)
	}

	return payment, nil
}

// DeescalatePaymentCommand clears the escalation flag
type DeescalatePaymentCommand struct {
	Actor     domain.Actor
	PaymentID string
}

// DeescalatePaymentHandler handles de-escalation
type DeescalatePaymentHandler struct {
	repo domain.PaymentRepository
}

// NewDeescalatePaymentHandler creates a new handler
func NewDeescalatePaymentHandler(repo domain.PaymentRepository) *DeescalatePaymentHandler {
	return &DeescalatePaymentHandler{repo: repo}
}

// Handle clears the escalation
func (h *DeescalatePaymentHandler) Handle(ctx context.Context, cmd DeescalatePaymentCommand) (*domain.Payment, error) {
	payment, err := h.repo.FindByID(ctx, cmd.PaymentID)
	if err != nil {
		return nil, err
	}

	if err := payment.Deescalate(cmd.Actor); err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to deescalate payment: %w", err)
	}

	return payment, nil
}
