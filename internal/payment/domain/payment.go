package domain

import (
	"fmt"
	"time"
)

// Payment statuses
const (
	StatusPending    = "pending"
	StatusProcessing = "processing" // reserved for a future settlement worker
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
	StatusCancelled  = "cancelled"
)

// Audit actions
const (
	ActionCreate       = "create"
	ActionValidate     = "validate"
	ActionReject       = "reject"
	ActionCancel       = "cancel"
	ActionUpdateReason = "update_reason"
	ActionTrash        = "trash"
	ActionRestore      = "restore"
	ActionAssign       = "assign"
	ActionUnassign     = "unassign"
	ActionEscalate     = "escalate"
	ActionDeescalate   = "deescalate"
	ActionNote         = "note"
)

// Actor identifies who performed an operation
type Actor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Note is a collaboration note attached to a payment
type Note struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Mentions   []string  `json:"mentions,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// AuditEntry records one state-changing action on a payment
type AuditEntry struct {
	ActorID   string    `json:"actor_id"`
	ActorName string    `json:"actor_name"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Payment represents an international payment request
type Payment struct {
	ID     string `json:"id" gorm:"primaryKey;size:36"`
	UserID string `json:"user_id" gorm:"not null;index;size:36"`

	RecipientName  string `json:"recipient_name" gorm:"not null"`
	RecipientEmail string `json:"recipient_email"`
	IBAN           string `json:"iban" gorm:"not null"`
	SWIFT          string `json:"swift" gorm:"not null"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Country        string `json:"country" gorm:"size:2"`

	Amount   float64 `json:"amount" gorm:"not null"`
	Currency string  `json:"currency" gorm:"not null;size:3"`

	Reference string `json:"reference"`
	Purpose   string `json:"purpose"`

	Status string `json:"status" gorm:"not null;default:'pending';index"`
	// PreviousStatus holds the pre-transition status for the current
	// in-memory mutation. Not persisted.
	PreviousStatus string `json:"-" gorm:"-"`


	CreatedAt   time.Time  `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`

	FailureReason string `json:"failure_reason,omitempty" gorm:"size:500"`
	ReasonCode    string `json:"reason_code,omitempty" gorm:"index"`

	// Soft delete is an explicit axis, independent of status. Records are
	// never physically removed.
	DeletedAt     *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	DeletedByID   string     `json:"deleted_by_id,omitempty"`
	DeletedByName string     `json:"deleted_by_name,omitempty"`

	AssignedToID   string `json:"assigned_to_id,omitempty" gorm:"index"`
	AssignedToName string `json:"assigned_to_name,omitempty"`

	Escalated       bool       `json:"escalated" gorm:"index"`
	EscalatedAt     *time.Time `json:"escalated_at,omitempty"`
	EscalationNotes string     `json:"escalation_notes,omitempty"`

	Notes    []Note       `json:"notes" gorm:"type:jsonb;serializer:json"`
	AuditLog []AuditEntry `json:"audit_log" gorm:"type:jsonb;serializer:json"`
}

// TableName specifies the table name
func (Payment) TableName() string {
	return "payments"
}

// IsDeleted reports whether the payment is in the trash
func (p *Payment) IsDeleted() bool {
	return p.DeletedAt != nil
}

// IsReviewable reports whether employee review transitions may still run
func (p *Payment) IsReviewable() bool {
	return p.Status == StatusPending || p.Status == StatusProcessing
}

// IsTerminal reports whether the status admits no further transitions
func (p *Payment) IsTerminal() bool {
	switch p.Status {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

func (p *Payment) appendAudit(actor Actor, action, details string) {
	p.AuditLog = append(p.AuditLog, AuditEntry{
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Action:    action,
		Details:   details,
		Timestamp: time.Now().UTC(),
	})
}

// RecordCreation appends the initial audit entry
func (p *Payment) RecordCreation(actor Actor) {
	p.appendAudit(actor, ActionCreate, "payment submitted")
}

// MarkCompleted transitions a pending or processing payment to completed
func (p *Payment) MarkCompleted(actor Actor) error {
	if !p.IsReviewable() {
		return fmt.Errorf("%w: cannot validate a %s payment", ErrInvalidTransition, p.Status)
	}

	now := time.Now().UTC()
	p.PreviousStatus = p.Status
	p.Status = StatusCompleted
	p.ProcessedAt = &now
	p.FailureReason = ""
	p.appendAudit(actor, ActionValidate, "payment validated")
	return nil
}

// MarkFailed rejects a payment with a registry reason code and a free-text
// reason. Rejection is disallowed once a payment has completed.
func (p *Payment) MarkFailed(actor Actor, reasonCode, reason string) error {
	if p.Status == StatusCompleted {
		return fmt.Errorf("%w: cannot reject a completed payment", ErrInvalidTransition)
	}
	if !IsValidReasonCode(reasonCode) {
		return fmt.Errorf("%w: %q", ErrInvalidReasonCode, reasonCode)
	}
	if len(reason) < MinReasonLength {
		return newFieldError("reason", fmt.Sprintf("reason must be at least %d characters", MinReasonLength))
	}

	now := time.Now().UTC()
	p.PreviousStatus = p.Status
	p.Status = StatusFailed
	p.FailureReason = truncateReason(reason)
	p.ReasonCode = reasonCode
	p.ProcessedAt = &now
	p.appendAudit(actor, ActionReject, "rejected: "+reasonCode)
	return nil
}

// MarkCancelled cancels a pending or processing payment on behalf of an
// employee. A registry reason code is required; the free-text reason is
// optional.
func (p *Payment) MarkCancelled(actor Actor, reasonCode, reason string) error {
	if !p.IsReviewable() {
		return fmt.Errorf("%w: cannot cancel a %s payment", ErrInvalidTransition, p.Status)
	}
	if !IsValidReasonCode(reasonCode) {
		return fmt.Errorf("%w: %q", ErrInvalidReasonCode, reasonCode)
	}

	now := time.Now().UTC()
	p.PreviousStatus = p.Status
	p.Status = StatusCancelled
	p.ReasonCode = reasonCode
	p.FailureReason = truncateReason(reason)
	p.ProcessedAt = &now
	p.appendAudit(actor, ActionCancel, "cancelled: "+reasonCode)
	return nil
}

// CancelByOwner cancels a payment on behalf of the owning customer. Stricter
// than the employee path: only pending payments qualify, and no reason code
// is required. The asymmetry is intentional policy.
func (p *Payment) CancelByOwner(actor Actor) error {
	if p.Status != StatusPending {
		return fmt.Errorf("%w: only pending payments can be cancelled by their owner", ErrInvalidTransition)
	}

	now := time.Now().UTC()
	p.PreviousStatus = p.Status
	p.Status = StatusCancelled
	p.ProcessedAt = &now
	p.appendAudit(actor, ActionCancel, "cancelled by owner")
	return nil
}

// UpdateFailure amends the failure reason, and optionally the reason code, of
// a cancelled or failed payment
func (p *Payment) UpdateFailure(actor Actor, reason, reasonCode string) error {
	if p.Status != StatusCancelled && p.Status != StatusFailed {
		return fmt.Errorf("%w: reason can only be updated on cancelled or failed payments", ErrInvalidTransition)
	}
	if len(reason) < MinReasonLength {
		return newFieldError("reason", fmt.Sprintf("reason must be at least %d characters", MinReasonLength))
	}
	if reasonCode != "" && !IsValidReasonCode(reasonCode) {
		return fmt.Errorf("%w: %q", ErrInvalidReasonCode, reasonCode)
	}

	p.FailureReason = truncateReason(reason)
	if reasonCode != "" {
		p.ReasonCode = reasonCode
	}
	p.appendAudit(actor, ActionUpdateReason, "failure reason updated")
	return nil
}

// Trash soft-deletes a terminal payment
func (p *Payment) Trash(actor Actor) error {
	if p.IsDeleted() {
		return fmt.Errorf("%w: payment is already in the trash", ErrInvalidTransition)
	}
	if !p.IsTerminal() {
		return fmt.Errorf("%w: only completed, cancelled or failed payments can be moved to trash", ErrInvalidTransition)
	}

	now := time.Now().UTC()
	p.DeletedAt = &now
	p.DeletedByID = actor.ID
	p.DeletedByName = actor.Name
	p.appendAudit(actor, ActionTrash, "moved to trash")
	return nil
}

// Restore clears the soft-delete markers; status is unchanged
func (p *Payment) Restore(actor Actor) error {
	if !p.IsDeleted() {
		return fmt.Errorf("%w: payment is not in the trash", ErrInvalidTransition)
	}

	p.DeletedAt = nil
	p.DeletedByID = ""
	p.DeletedByName = ""
	p.appendAudit(actor, ActionRestore, "restored from trash")
	return nil
}

// Assign sets the reviewing employee
func (p *Payment) Assign(actor Actor, assignee Actor) {
	p.AssignedToID = assignee.ID
	p.AssignedToName = assignee.Name
	p.appendAudit(actor, ActionAssign, "assigned to "+assignee.Name)
}

// Unassign clears the reviewing employee
func (p *Payment) Unassign(actor Actor) {
	p.AssignedToID = ""
	p.AssignedToName = ""
	p.appendAudit(actor, ActionUnassign, "assignment cleared")
}

// Escalate flags the payment for heightened review attention
func (p *Payment) Escalate(actor Actor, notes string) error {
	if p.Escalated {
		return fmt.Errorf("%w: payment is already escalated", ErrInvalidTransition)
	}

	now := time.Now().UTC()
	p.Escalated = true
	p.EscalatedAt = &now
	p.EscalationNotes = notes
	p.appendAudit(actor, ActionEscalate, "escalated")
	return nil
}

// Deescalate clears the escalation flag
func (p *Payment) Deescalate(actor Actor) error {
	if !p.Escalated {
		return fmt.Errorf("%w: payment is not escalated", ErrInvalidTransition)
	}

	p.Escalated = false
	p.EscalatedAt = nil
	p.EscalationNotes = ""
	p.appendAudit(actor, ActionDeescalate, "escalation cleared")
	return nil
}

// AddNote appends a collaboration note. Callers are expected to redact the
// text before handing it over.
func (p *Payment) AddNote(note Note, actor Actor) {
	p.Notes = append(p.Notes, note)
	p.appendAudit(actor, ActionNote, "note added")
}

// MinReasonLength is the minimum length of a free-text failure reason
const MinReasonLength = 3

// MaxReasonLength bounds the stored failure reason
const MaxReasonLength = 500

func truncateReason(reason string) string {
	if len(reason) > MaxReasonLength {
		return reason[:MaxReasonLength]
	}
	return reason
}
