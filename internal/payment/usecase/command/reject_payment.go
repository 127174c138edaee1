package command

import (
	"context"
	"fmt"

	"github.com/finworks/payment-portal/internal/payment/domain"
)

// RejectPaymentCommand fails a payment with a registry reason code
type RejectPaymentCommand struct {
	Actor      domain.Actor
	PaymentID  string
	ReasonCode string
	Reason     string
}

// RejectPaymentHandler handles employee rejection
type RejectPaymentHandler struct {
	repo domain.PaymentRepository
}

// NewRejectPaymentHandler creates a new handler
func NewRejectPaymentHandler(repo domain.PaymentRepository) *RejectPaymentHandler {
	return &RejectPaymentHandler{repo: repo}
}

// Handle rejects the payment; disallowed once completed
func (h *RejectPaymentHandler) Handle(ctx context.Context, cmd RejectPaymentCommand) (*domain.Payment, error) {
	payment, err := h.repo.FindByID(ctx, cmd.PaymentID)
	if err != nil {
		return nil, err
	}

	if err := payment.MarkFailed(cmd.Actor, cmd.ReasonCode, cmd.Reason); err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to reject payment: %w", err)
	}

	return payment, nil
}
