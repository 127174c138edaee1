package command

import (
	"context"
	"fmt"

	"github.com/finworks/payment-portal/internal/payment/domain"
)

// AssignPaymentCommand sets the reviewing employee
type AssignPaymentCommand struct {
	Actor     domain.Actor
	PaymentID string
	Assignee  domain.Actor
}

// AssignPaymentHandler handles review assignment
type AssignPaymentHandler struct {
	repo domain.PaymentRepository
}

// NewAssignPaymentHandler creates a new handler
func NewAssignPaymentHandler(repo domain.PaymentRepository) *AssignPaymentHandler {
	return &AssignPaymentHandler{repo: repo}
}

// Handle assigns the payment
func (h *AssignPaymentHandler) Handle(ctx context.Context, cmd AssignPaymentCommand) (*domain.Payment, error) {
	if cmd.Assignee.ID == "" {
		return nil, fmt.Errorf("assignee is required")
	}

	payment, err := h.repo.FindByID(ctx, cmd.PaymentID)
	if err != nil {
		return nil, err
	}

	payment.Assign(cmd.Actor, cmd.Assignee)

	if err := h.repo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to assign payment: %w", err)
	}

	return payment, nil
}

// UnassignPaymentCommand clears the reviewing employee
type UnassignPaymentCommand struct {
	Actor     domain.Actor
	PaymentID string
}

// UnassignPaymentHandler handles assignment clearing
type UnassignPaymentHandler struct {
	repo domain.PaymentRepository
}

// NewUnassignPaymentHandler creates a new handler
func NewUnassignPaymentHandler(repo domain.PaymentRepository) *UnassignPaymentHandler {
	return &UnassignPaymentHandler{repo: repo}
}

// Handle clears the assignment
func (h *UnassignPaymentHandler) Handle(ctx context.Context, cmd UnassignPaymentCommand) (*domain.Payment, error) {
	payment, err := h.repo.FindByID(ctx, cmd.PaymentID)
	if err != nil {
		return nil, err
	}

	payment.Unassign(cmd.Actor)

	if err := h.repo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to unassign payment: %w", err)
	}

	return payment, nil
}
