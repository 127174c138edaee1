package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finworks/payment-portal/internal/payment/domain"
	"github.com/finworks/payment-portal/internal/redaction"
)

// AddNoteCommand appends a collaboration note to a payment
type AddNoteCommand struct {
	Actor     domain.Actor
	PaymentID string
	Text      string
	Mentions  []string
}

// AddNoteHandler handles note creation. Note text is passed through the
// redactor before storage so pasted recipient data never lands in a field
// that gets exported or broadly displayed.
type AddNoteHandler struct {
	repo     domain.PaymentRepository
	redactor redaction.Redactor
}

// NewAddNoteHandler creates a new handler
func NewAddNoteHandler(repo domain.PaymentRepository, redactor redaction.Redactor) *AddNoteHandler {
	return &AddNoteHandler{repo: repo, redactor: redactor}
}

// Handle redacts and appends the note
func (h *AddNoteHandler) Handle(ctx context.Context, cmd AddNoteCommand) (*domain.Payment, error) {
	if cmd.Text == "" {
		return nil, fmt.Errorf("note text is required")
	}

	payment, err := h.repo.FindByID(ctx, cmd.PaymentID)
	if err != nil {
		return nil, err
	}

	note := domain.Note{
		ID:         uuid.New().String(),
		Text:       h.redactor.Redact(cmd.Text),
		AuthorID:   cmd.Actor.ID,
		AuthorName: cmd.Actor.Name,
		Mentions:   cmd.Mentions,
		CreatedAt:  time.Now().UTC(),
	}
	payment.AddNote(note, cmd.Actor)

	if err := h.repo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to add note: %w", err)
	}

	return payment, nil
}
