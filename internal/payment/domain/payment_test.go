package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	reviewer = Actor{ID: "emp-1", Name: "Dana Reviewer"}
	owner    = Actor{ID: "cust-1", Name: "Alice Customer"}
)

func newTestPayment(status string) *Payment {
	return &Payment{
		ID:            "pay-1",
		UserID:        owner.ID,
		RecipientName: "Bob Recipient",
		IBAN:          "GB29NWBK60161331926819",
		SWIFT:         "NWBKGB2L",
		Amount:        1250.50,
		Currency:      "EUR",
		Status:        status,
		CreatedAt:     time.Now().UTC(),
	}
}

func lastAudit(t *testing.T, p *Payment) AuditEntry {
	t.Helper()
	require.NotEmpty(t, p.AuditLog)
	return p.AuditLog[len(p.AuditLog)-1]
}

func TestMarkCompleted(t *testing.T) {
	p := newTestPayment(StatusPending)

	err := p.MarkCompleted(reviewer)

	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, p.Status)
	require.NotNil(t, p.ProcessedAt)
	assert.Equal(t, ActionValidate, lastAudit(t, p).Action)
	assert.Equal(t, reviewer.ID, lastAudit(t, p).ActorID)
}

func TestMarkCompleted_FromProcessing(t *testing.T) {
	p := newTestPayment(StatusProcessing)
	assert.NoError(t, p.MarkCompleted(reviewer))
}

func TestTransitionsRecordPreviousStatus(t *testing.T) {
	p := newTestPayment(StatusProcessing)
	require.NoError(t, p.MarkCompleted(reviewer))
	assert.Equal(t, StatusProcessing, p.PreviousStatus)

	p = newTestPayment(StatusProcessing)
	require.NoError(t, p.MarkFailed(reviewer, ReasonRiskReview, "manual review failed"))
	assert.Equal(t, StatusProcessing, p.PreviousStatus)

	p = newTestPayment(StatusProcessing)
	require.NoError(t, p.MarkCancelled(reviewer, ReasonDuplicatePayment, ""))
	assert.Equal(t, StatusProcessing, p.PreviousStatus)

	p = newTestPayment(StatusPending)
	require.NoError(t, p.CancelByOwner(owner))
	assert.Equal(t, StatusPending, p.PreviousStatus)
}

func TestMarkCompleted_TerminalStatuses(t *testing.T) {
	for _, status := range []string{StatusCompleted, StatusFailed, StatusCancelled} {
		p := newTestPayment(status)
		err := p.MarkCompleted(reviewer)
		assert.ErrorIs(t, err, ErrInvalidTransition, "status %s", status)
		assert.Empty(t, p.AuditLog, "no audit entry on a refused transition")
	}
}

func TestMarkFailed(t *testing.T) {
	p := newTestPayment(StatusPending)

	err := p.MarkFailed(reviewer, ReasonInsufficientDocs, "missing invoice copy")

	require.NoError(t, err)
	assert.Equal(t, StatusFailed, p.Status)
	assert.Equal(t, ReasonInsufficientDocs, p.ReasonCode)
	assert.Equal(t, "missing invoice copy", p.FailureReason)
	require.NotNil(t, p.ProcessedAt)
	assert.Equal(t, ActionReject, lastAudit(t, p).Action)
}

func TestMarkFailed_AllowedFromFailedAndCancelled(t *testing.T) {
	// Re-rejecting with a different code is permitted; only completed blocks it
	for _, status := range []string{StatusFailed, StatusCancelled} {
		p := newTestPayment(status)
		assert.NoError(t, p.MarkFailed(reviewer, ReasonAMLFlag, "flagged on rescreen"), "status %s", status)
	}

	p := newTestPayment(StatusCompleted)
	assert.ErrorIs(t, p.MarkFailed(reviewer, ReasonAMLFlag, "flagged"), ErrInvalidTransition)
}

func TestMarkFailed_UnknownReasonCode(t *testing.T) {
	p := newTestPayment(StatusPending)
	err := p.MarkFailed(reviewer, "made_up_code", "some reason")
	assert.ErrorIs(t, err, ErrInvalidReasonCode)
	assert.Equal(t, StatusPending, p.Status)
}

func TestMarkFailed_ReasonTooShort(t *testing.T) {
	p := newTestPayment(StatusPending)

	var verr *ValidationError
	err := p.MarkFailed(reviewer, ReasonInsufficientDocs, "no")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, StatusPending, p.Status)
}

func TestMarkFailed_ReasonTruncated(t *testing.T) {
	p := newTestPayment(StatusPending)
	long := strings.Repeat("x", MaxReasonLength+100)

	require.NoError(t, p.MarkFailed(reviewer, ReasonRiskReview, long))
	assert.Len(t, p.FailureReason, MaxReasonLength)
}

func TestMarkCancelled(t *testing.T) {
	p := newTestPayment(StatusPending)

	err := p.MarkCancelled(reviewer, ReasonDuplicatePayment, "")

	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, p.Status)
	assert.Equal(t, ReasonDuplicatePayment, p.ReasonCode)
}

func TestMarkCancelled_RequiresReviewableStatus(t *testing.T) {
	p := newTestPayment(StatusCompleted)
	assert.ErrorIs(t, p.MarkCancelled(reviewer, ReasonDuplicatePayment, ""), ErrInvalidTransition)
}

func TestMarkCancelled_RequiresRegistryCode(t *testing.T) {
	p := newTestPayment(StatusPending)
	assert.ErrorIs(t, p.MarkCancelled(reviewer, "", ""), ErrInvalidReasonCode)
}

func TestCancelByOwner(t *testing.T) {
	p := newTestPayment(StatusPending)

	require.NoError(t, p.CancelByOwner(owner))
	assert.Equal(t, StatusCancelled, p.Status)
	assert.Empty(t, p.ReasonCode, "owner cancellation needs no reason code")
	assert.Equal(t, ActionCancel, lastAudit(t, p).Action)
}

func TestCancelByOwner_OnlyPending(t *testing.T) {
	// Unlike the employee path, even processing payments are off limits
	for _, status := range []string{StatusProcessing, StatusCompleted, StatusFailed, StatusCancelled} {
		p := newTestPayment(status)
		assert.ErrorIs(t, p.CancelByOwner(owner), ErrInvalidTransition, "status %s", status)
	}
}

func TestUpdateFailure(t *testing.T) {
	p := newTestPayment(StatusPending)
	require.NoError(t, p.MarkFailed(reviewer, ReasonInsufficientDocs, "missing invoice"))

	err := p.UpdateFailure(reviewer, "missing invoice and proof of address", ReasonComplianceHold)

	require.NoError(t, err)
	assert.Equal(t, "missing invoice and proof of address", p.FailureReason)
	assert.Equal(t, ReasonComplianceHold, p.ReasonCode)
	assert.Equal(t, StatusFailed, p.Status, "status is untouched")
}

func TestUpdateFailure_KeepsCodeWhenOmitted(t *testing.T) {
	p := newTestPayment(StatusPending)
	require.NoError(t, p.MarkFailed(reviewer, ReasonInsufficientDocs, "missing invoice"))

	require.NoError(t, p.UpdateFailure(reviewer, "still waiting on documents", ""))
	assert.Equal(t, ReasonInsufficientDocs, p.ReasonCode)
}

func TestUpdateFailure_OnlyCancelledOrFailed(t *testing.T) {
	for _, status := range []string{StatusPending, StatusProcessing, StatusCompleted} {
		p := newTestPayment(status)
		assert.ErrorIs(t, p.UpdateFailure(reviewer, "new reason", ""), ErrInvalidTransition, "status %s", status)
	}
}

func TestTrash(t *testing.T) {
	p := newTestPayment(StatusPending)
	require.NoError(t, p.MarkCancelled(reviewer, ReasonDuplicatePayment, ""))

	err := p.Trash(reviewer)

	require.NoError(t, err)
	assert.True(t, p.IsDeleted())
	assert.Equal(t, reviewer.ID, p.DeletedByID)
	assert.Equal(t, StatusCancelled, p.Status, "deletion does not touch status")
}

func TestTrash_NonTerminalRefused(t *testing.T) {
	for _, status := range []string{StatusPending, StatusProcessing} {
		p := newTestPayment(status)
		assert.ErrorIs(t, p.Trash(reviewer), ErrInvalidTransition, "status %s", status)
		assert.False(t, p.IsDeleted())
	}
}

func TestTrash_AlreadyDeleted(t *testing.T) {
	p := newTestPayment(StatusFailed)
	now := time.Now().UTC()
	p.DeletedAt = &now

	assert.ErrorIs(t, p.Trash(reviewer), ErrInvalidTransition)
}

func TestRestore(t *testing.T) {
	p := newTestPayment(StatusFailed)
	require.NoError(t, p.Trash(reviewer))

	err := p.Restore(reviewer)

	require.NoError(t, err)
	assert.False(t, p.IsDeleted())
	assert.Empty(t, p.DeletedByID)
	assert.Equal(t, StatusFailed, p.Status)
	assert.Equal(t, ActionRestore, lastAudit(t, p).Action)
}

func TestRestore_NotDeleted(t *testing.T) {
	p := newTestPayment(StatusFailed)
	audits := len(p.AuditLog)

	err := p.Restore(reviewer)

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Len(t, p.AuditLog, audits, "no audit entry on a refused restore")
}

func TestAssignUnassign(t *testing.T) {
	p := newTestPayment(StatusPending)
	assignee := Actor{ID: "emp-2", Name: "Eve Analyst"}

	p.Assign(reviewer, assignee)
	assert.Equal(t, assignee.ID, p.AssignedToID)
	assert.Equal(t, assignee.Name, p.AssignedToName)

	// Reassignment just overwrites
	p.Assign(reviewer, reviewer)
	assert.Equal(t, reviewer.ID, p.AssignedToID)

	p.Unassign(reviewer)
	assert.Empty(t, p.AssignedToID)
	assert.Empty(t, p.AssignedToName)
}

func TestEscalate(t *testing.T) {
	p := newTestPayment(StatusPending)

	require.NoError(t, p.Escalate(reviewer, "amount near reporting threshold"))
	assert.True(t, p.Escalated)
	require.NotNil(t, p.EscalatedAt)
	assert.Equal(t, "amount near reporting threshold", p.EscalationNotes)

	assert.ErrorIs(t, p.Escalate(reviewer, "again"), ErrInvalidTransition)
}

func TestDeescalate(t *testing.T) {
	p := newTestPayment(StatusPending)

	assert.ErrorIs(t, p.Deescalate(reviewer), ErrInvalidTransition)

	require.NoError(t, p.Escalate(reviewer, "check"))
	require.NoError(t, p.Deescalate(reviewer))
	assert.False(t, p.Escalated)
	assert.Nil(t, p.EscalatedAt)
	assert.Empty(t, p.EscalationNotes)
}

func TestAuditTrailAccumulates(t *testing.T) {
	p := newTestPayment(StatusPending)
	p.RecordCreation(owner)
	require.NoError(t, p.Escalate(reviewer, "check"))
	require.NoError(t, p.MarkFailed(reviewer, ReasonRiskReview, "manual risk review failed"))
	require.NoError(t, p.Trash(reviewer))
	require.NoError(t, p.Restore(reviewer))

	actions := make([]string, 0, len(p.AuditLog))
	for _, entry := range p.AuditLog {
		actions = append(actions, entry.Action)
	}
	assert.Equal(t, []string{ActionCreate, ActionEscalate, ActionReject, ActionTrash, ActionRestore}, actions)
}

func TestReasonCodeRegistry(t *testing.T) {
	for _, code := range []string{
		ReasonInsufficientDocs, ReasonAMLFlag, ReasonInvalidRecipientDetails,
		ReasonComplianceHold, ReasonRiskReview, ReasonDuplicatePayment, ReasonFundingIssue,
	} {
		assert.True(t, IsValidReasonCode(code), "code %s", code)
		assert.NotEmpty(t, ReasonCodeLabel(code), "label for %s", code)
	}
	assert.False(t, IsValidReasonCode("other"))
	assert.Len(t, ReasonCodes(), 7)
}

func TestFilterNormalize(t *testing.T) {
	f := Filter{}
	f.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, DefaultLimit, f.Limit)

	f = Filter{Page: 5000, Limit: 900}
	f.Normalize()
	assert.Equal(t, MaxPage, f.Page)
	assert.Equal(t, MaxLimit, f.Limit)

	f = Filter{Page: 3, Limit: 25}
	f.Normalize()
	assert.Equal(t, 50, f.Offset())
}
