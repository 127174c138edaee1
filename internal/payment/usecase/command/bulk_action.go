package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/finworks/payment-portal/internal/payment/domain"
	"github.com/finworks/payment-portal/pkg/logger"
)

// Bulk actions
const (
	BulkValidate = "validate"
	BulkReject   = "reject"
	BulkCancel   = "cancel"
	BulkTrash    = "trash"
	BulkRestore  = "restore"
)

// BulkActionCommand applies one action to a list of payments. Each id is
// processed independently; a failure never aborts the rest of the batch.
type BulkActionCommand struct {
	Actor      domain.Actor
	Action     string
	PaymentIDs []string
	Reason     string
	ReasonCode string
	Confirmed  bool
}

// BulkResult reports the outcome for one payment id
type BulkResult struct {
	ID    string `json:"id"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// BulkActionHandler handles best-effort batch mutations
type BulkActionHandler struct {
	repo domain.PaymentRepository
}

// NewBulkActionHandler creates a new handler
func NewBulkActionHandler(repo domain.PaymentRepository) *BulkActionHandler {
	return &BulkActionHandler{repo: repo}
}

// Handle runs the batch sequentially and returns per-id results
func (h *BulkActionHandler) Handle(ctx context.Context, cmd BulkActionCommand) ([]BulkResult, error) {
	if !cmd.Confirmed {
		return nil, domain.ErrConfirmationRequired
	}
	if len(cmd.PaymentIDs) == 0 {
		return nil, fmt.Errorf("no payment ids provided")
	}

	switch cmd.Action {
	case BulkValidate, BulkReject, BulkCancel, BulkTrash, BulkRestore:
	default:
		return nil, fmt.Errorf("unknown bulk action: %s", cmd.Action)
	}

	results := make([]BulkResult, 0, len(cmd.PaymentIDs))
	for _, id := range cmd.PaymentIDs {
		if err := h.applyOne(ctx, cmd, id); err != nil {
			results = append(results, BulkResult{ID: id, OK: false, Error: errorTag(err)})
			continue
		}
		results = append(results, BulkResult{ID: id, OK: true})
	}

	logger.Info(ctx).
		Str("action", cmd.Action).
		Str("actor_id", cmd.Actor.ID).
		Int("total", len(results)).
		Msg("Bulk action processed")

	return results, nil
}

func (h *BulkActionHandler) applyOne(ctx context.Context, cmd BulkActionCommand, id string) error {
	payment, err := h.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	switch cmd.Action {
	case BulkValidate:
		err = payment.MarkCompleted(cmd.Actor)
	case BulkReject:
		err = payment.MarkFailed(cmd.Actor, cmd.ReasonCode, cmd.Reason)
	case BulkCancel:
		err = payment.MarkCancelled(cmd.Actor, cmd.ReasonCode, cmd.Reason)
	case BulkTrash:
		err = payment.Trash(cmd.Actor)
	case BulkRestore:
		err = payment.Restore(cmd.Actor)
	}
	if err != nil {
		return err
	}

	return h.repo.Update(ctx, payment)
}

// errorTag maps taxonomy errors to stable, machine-readable tags for the
// per-id results
func errorTag(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, domain.ErrInvalidReasonCode):
		return "invalid_reason_code"
	default:
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return "validation_failed"
		}
		return "internal_error"
	}
}
