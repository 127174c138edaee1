package query

import (
	"context"
	"fmt"

	"github.com/finworks/payment-portal/internal/payment/domain"
)

// GlobalStatsQuery aggregates the whole non-deleted payment population
type GlobalStatsQuery struct{}

// GlobalStats is the aggregate view employees see on the review dashboard
type GlobalStats struct {
	ByStatus     []domain.StatusBucket `json:"by_status"`
	AgeHistogram []domain.AgeBucket    `json:"age_histogram"`
}

// GlobalStatsHandler handles the stats query
type GlobalStatsHandler struct {
	repo domain.PaymentRepository
}

// NewGlobalStatsHandler creates a new global stats handler
func NewGlobalStatsHandler(repo domain.PaymentRepository) *GlobalStatsHandler {
	return &GlobalStatsHandler{repo: repo}
}

// Handle executes the stats query
func (h *GlobalStatsHandler) Handle(ctx context.Context, _ GlobalStatsQuery) (*GlobalStats, error) {
	byStatus, err := h.repo.StatusBreakdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by status: %w", err)
	}

	histogram, err := h.repo.AgeHistogram(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build age histogram: %w", err)
	}

	return &GlobalStats{
		ByStatus:     byStatus,
		AgeHistogram: histogram,
	}, nil
}
