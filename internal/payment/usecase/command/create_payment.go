package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finworks/payment-portal/internal/payment/domain"
	"github.com/finworks/payment-portal/internal/validation"
	"github.com/finworks/payment-portal/pkg/logger"
)

// CreatePaymentCommand represents a customer payment submission
type CreatePaymentCommand struct {
	Owner domain.Actor

	RecipientName  string
	RecipientEmail string
	IBAN           string
	SWIFT          string
	Address        string
	City           string
	Country        string

	Amount   string
	Currency string

	Reference string
	Purpose   string
}

// MaxReferenceLength bounds the free-text reference
const MaxReferenceLength = 140

// CreatePaymentHandler handles create payment commands
type CreatePaymentHandler struct {
	repo domain.PaymentRepository
}

// NewCreatePaymentHandler creates a new create payment handler
func NewCreatePaymentHandler(repo domain.PaymentRepository) *CreatePaymentHandler {
	return &CreatePaymentHandler{repo: repo}
}

// Handle validates every field, collecting all failures, and persists the
// payment at status pending
func (h *CreatePaymentHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) (*domain.Payment, error) {
	vErr := &domain.ValidationError{}

	if cmd.RecipientName == "" {
		vErr.Add("recipient_name", "recipient name is required")
	}
	if cmd.RecipientEmail != "" && !validation.Email(cmd.RecipientEmail) {
		vErr.Add("recipient_email", "invalid email address")
	}
	if !validation.IBAN(cmd.IBAN) {
		vErr.Add("iban", "invalid IBAN")
	}
	if !validation.SWIFT(cmd.SWIFT) {
		vErr.Add("swift", "invalid SWIFT/BIC code")
	}
	if !validation.Currency(cmd.Currency) {
		vErr.Add("currency", "unsupported currency")
	}

	amount, ok := validation.Amount(cmd.Amount)
	if !ok {
		vErr.Add("amount", fmt.Sprintf("amount must be positive, at most %d, with at most 2 decimal places", validation.MaxAmount))
	}

	if len(cmd.Reference) > MaxReferenceLength {
		vErr.Add("reference", fmt.Sprintf("reference must be at most %d characters", MaxReferenceLength))
	}

	if vErr.HasErrors() {
		return nil, vErr
	}

	payment := &domain.Payment{
		ID:     uuid.New().String(),
		UserID: cmd.Owner.ID,

		RecipientName:  cmd.RecipientName,
		RecipientEmail: cmd.RecipientEmail,
		IBAN:           validation.Normalize(cmd.IBAN),
		SWIFT:          validation.Normalize(cmd.SWIFT),
		Address:        cmd.Address,
		City:           cmd.City,
		Country:        validation.Normalize(cmd.Country),

		Amount:   amount,
		Currency: validation.Normalize(cmd.Currency),

		Reference: cmd.Reference,
		Purpose:   cmd.Purpose,

		Status: domain.StatusPending,
	}
	payment.RecordCreation(cmd.Owner)

	if err := h.repo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	logger.Info(ctx).
		Str("payment_id", payment.ID).
		Str("user_id", payment.UserID).
		Str("iban", validation.MaskIBAN(payment.IBAN)).
		Float64("amount", payment.Amount).
		Str("currency", payment.Currency).
		Msg("Payment created")

	return payment, nil
}
