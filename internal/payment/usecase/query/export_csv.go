package query

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/finworks/payment-portal/internal/payment/domain"
)

// ExportCSVQuery renders every payment matching the filter as CSV. Same
// filter contract as listing, but unpaginated.
type ExportCSVQuery struct {
	Filter domain.Filter
}

// csvHeader is the fixed export column set
var csvHeader = []string{
	"id", "recipient_name", "amount", "currency", "reference", "status",
	"created_at", "processed_at", "failure_reason", "reason_code",
	"deleted_at", "deleted_by",
}

// ExportCSVHandler handles CSV export
type ExportCSVHandler struct {
	repo domain.PaymentRepository
}

// NewExportCSVHandler creates a new export handler
func NewExportCSVHandler(repo domain.PaymentRepository) *ExportCSVHandler {
	return &ExportCSVHandler{repo: repo}
}

// Handle streams the export to w. Embedded quotes are escaped by doubling,
// per RFC 4180.
func (h *ExportCSVHandler) Handle(ctx context.Context, q ExportCSVQuery, w io.Writer) error {
	payments, err := h.repo.FindAll(ctx, q.Filter)
	if err != nil {
		return fmt.Errorf("failed to load payments for export: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for i := range payments {
		p := &payments[i]
		record := []string{
			p.ID,
			p.RecipientName,
			strconv.FormatFloat(p.Amount, 'f', 2, 64),
			p.Currency,
			p.Reference,
			p.Status,
			p.CreatedAt.UTC().Format(time.RFC3339),
			formatTime(p.ProcessedAt),
			p.FailureReason,
			p.ReasonCode,
			formatTime(p.DeletedAt),
			p.DeletedByName,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
