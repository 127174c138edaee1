package query

import (
	"context"
	"fmt"

	"github.com/finworks/payment-portal/internal/payment/domain"
)

// DailyTrendsQuery builds the trend view over recent days
type DailyTrendsQuery struct {
	Days int
}

// DefaultTrendDays is the window used when the caller does not specify one
const DefaultTrendDays = 30

// TopReasonCount caps the reason-code leaderboard
const TopReasonCount = 5

// DailyTrends combines per-day volumes, status distribution and the most
// frequent reason codes
type DailyTrends struct {
	Daily      []domain.DailyBucket  `json:"daily"`
	ByStatus   []domain.StatusBucket `json:"by_status"`
	TopReasons []domain.ReasonCount  `json:"top_reasons"`
}

// DailyTrendsHandler handles the trends query
type DailyTrendsHandler struct {
	repo domain.PaymentRepository
}

// NewDailyTrendsHandler creates a new daily trends handler
func NewDailyTrendsHandler(repo domain.PaymentRepository) *DailyTrendsHandler {
	return &DailyTrendsHandler{repo: repo}
}

// Handle executes the trends query
func (h *DailyTrendsHandler) Handle(ctx context.Context, q DailyTrendsQuery) (*DailyTrends, error) {
	if q.Days <= 0 {
		q.Days = DefaultTrendDays
	}

	daily, err := h.repo.DailyCounts(ctx, q.Days)
	if err != nil {
		return nil, fmt.Errorf("failed to count daily payments: %w", err)
	}

	byStatus, err := h.repo.StatusBreakdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by status: %w", err)
	}

	topReasons, err := h.repo.TopReasonCodes(ctx, TopReasonCount)
	if err != nil {
		return nil, fmt.Errorf("failed to rank reason codes: %w", err)
	}

	return &DailyTrends{
		Daily:      daily,
		ByStatus:   byStatus,
		TopReasons: topReasons,
	}, nil
}
