package query

import (
	"context"
	"fmt"
	"time"

	"github.com/finworks/payment-portal/internal/payment/domain"
)

// SLA thresholds for the review queue
const (
	AtRiskThreshold = 24 * time.Hour
	StaleThreshold  = 48 * time.Hour
)

// QueueHealthQuery reports the SLA early-warning counters
type QueueHealthQuery struct{}

// QueueHealthHandler handles the queue health query
type QueueHealthHandler struct {
	repo domain.PaymentRepository
}

// NewQueueHealthHandler creates a new queue health handler
func NewQueueHealthHandler(repo domain.PaymentRepository) *QueueHealthHandler {
	return &QueueHealthHandler{repo: repo}
}

// Handle executes the queue health query
func (h *QueueHealthHandler) Handle(ctx context.Context, _ QueueHealthQuery) (*domain.QueueHealth, error) {
	health, err := h.repo.QueueHealth(ctx, AtRiskThreshold, StaleThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to check queue health: %w", err)
	}
	return health, nil
}
