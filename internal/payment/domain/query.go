package domain

import (
	"context"
	"time"
)

// Pagination bounds
const (
	DefaultLimit = 20
	MaxLimit     = 100
	MaxPage      = 1000
)

// Filter is the query contract shared by listing, export and the customer
// view. Zero values mean "not filtered".
type Filter struct {
	OwnerID        string
	Status         string
	Keyword        string
	From           *time.Time
	To             *time.Time
	MinAmount      *float64
	MaxAmount      *float64
	IncludeDeleted bool
	AssignedToID   string
	Escalated      *bool

	Page  int
	Limit int
}

// Normalize clamps pagination to sane maxima
func (f *Filter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Page > MaxPage {
		f.Page = MaxPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
}

// Offset returns the row offset for the current page
func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// StatusBucket aggregates payments sharing a status
type StatusBucket struct {
	Status               string  `json:"status"`
	Count                int64   `json:"count"`
	TotalAmount          float64 `json:"total_amount"`
	AvgProcessingSeconds float64 `json:"avg_processing_seconds"`
}

// AgeBucket is one bar of the age histogram over non-deleted payments
type AgeBucket struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// DailyBucket counts payments created on one day
type DailyBucket struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// ReasonCount counts payments carrying one reason code
type ReasonCount struct {
	ReasonCode string `json:"reason_code"`
	Count      int64  `json:"count"`
}

// QueueHealth is the SLA early-warning signal over the review queue
type QueueHealth struct {
	Stale  int64 `json:"stale"`   // pending/processing older than the stale threshold
	AtRisk int64 `json:"at_risk"` // pending/processing between the thresholds
}

// PaymentRepository defines the contract for payment data access
type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	FindByID(ctx context.Context, id string) (*Payment, error)
	Find(ctx context.Context, filter Filter) ([]Payment, int64, error)
	FindAll(ctx context.Context, filter Filter) ([]Payment, error)
	Update(ctx context.Context, payment *Payment) error

	StatusBreakdown(ctx context.Context) ([]StatusBucket, error)
	AgeHistogram(ctx context.Context) ([]AgeBucket, error)
	DailyCounts(ctx context.Context, days int) ([]DailyBucket, error)
	TopReasonCodes(ctx context.Context, limit int) ([]ReasonCount, error)
	QueueHealth(ctx context.Context, atRisk, stale time.Duration) (*QueueHealth, error)
}
