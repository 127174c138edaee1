package query_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/finworks/payment-portal/internal/payment/domain"
	"github.com/finworks/payment-portal/internal/payment/mocks"
	"github.com/finworks/payment-portal/internal/payment/usecase/query"
)

func TestGetMyPayments_ScopesToOwner(t *testing.T) {
	repo := new(mocks.PaymentRepository)
	h := query.NewGetMyPaymentsHandler(repo)

	repo.On("Find", mock.Anything, mock.MatchedBy(func(f domain.Filter) bool {
		return f.OwnerID == "cust-1"
	})).Return([]domain.Payment{{ID: "pay-1", UserID: "cust-1"}}, int64(1), nil).Once()

	payments, total, err := h.Handle(context.Background(), query.GetMyPaymentsQuery{OwnerID: "cust-1"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, payments, 1)
	repo.AssertExpectations(t)
}

func TestGetMyPayments_EmptyOwnerForbidden(t *testing.T) {
	repo := new(mocks.PaymentRepository)
	h := query.NewGetMyPaymentsHandler(repo)

	_, _, err := h.Handle(context.Background(), query.GetMyPaymentsQuery{})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	repo.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestListPayments_NormalizesPagination(t *testing.T) {
	repo := new(mocks.PaymentRepository)
	h := query.NewListPaymentsHandler(repo)

	repo.On("Find", mock.Anything, mock.MatchedBy(func(f domain.Filter) bool {
		return f.Page == 1 && f.Limit == domain.DefaultLimit
	})).Return([]domain.Payment{}, int64(0), nil).Once()

	_, _, err := h.Handle(context.Background(), query.ListPaymentsQuery{})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDailyTrends_DefaultWindow(t *testing.T) {
	repo := new(mocks.PaymentRepository)
	h := query.NewDailyTrendsHandler(repo)

	repo.On("DailyCounts", mock.Anything, query.DefaultTrendDays).
		Return([]domain.DailyBucket{{Day: "2026-08-27", Count: 4}}, nil).Once()
	repo.On("StatusBreakdown", mock.Anything).
		Return([]domain.StatusBucket{{Status: domain.StatusPending, Count: 4}}, nil).Once()
	repo.On("TopReasonCodes", mock.Anything, query.TopReasonCount).
		Return([]domain.ReasonCount{{ReasonCode: domain.ReasonAMLFlag, Count: 2}}, nil).Once()

	trends, err := h.Handle(context.Background(), query.DailyTrendsQuery{})

	require.NoError(t, err)
	assert.Len(t, trends.Daily, 1)
	assert.Len(t, trends.ByStatus, 1)
	assert.Len(t, trends.TopReasons, 1)
	repo.AssertExpectations(t)
}

func TestQueueHealth_UsesThresholds(t *testing.T) {
	repo := new(mocks.PaymentRepository)
	h := query.NewQueueHealthHandler(repo)

	repo.On("QueueHealth", mock.Anything, query.AtRiskThreshold, query.StaleThreshold).
		Return(&domain.QueueHealth{Stale: 2, AtRisk: 5}, nil).Once()

	health, err := h.Handle(context.Background(), query.QueueHealthQuery{})

	require.NoError(t, err)
	assert.Equal(t, int64(2), health.Stale)
	assert.Equal(t, int64(5), health.AtRisk)
	repo.AssertExpectations(t)
}

func TestExportCSV(t *testing.T) {
	repo := new(mocks.PaymentRepository)
	h := query.NewExportCSVHandler(repo)

	created := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)
	processed := created.Add(2 * time.Hour)
	repo.On("FindAll", mock.Anything, mock.AnythingOfType("domain.Filter")).Return([]domain.Payment{
		{
			ID:            "pay-1",
			RecipientName: `Acme "Global" Ltd, London`,
			Amount:        1250.5,
			Currency:      "EUR",
			Reference:     "invoice 42",
			Status:        domain.StatusCompleted,
			CreatedAt:     created,
			ProcessedAt:   &processed,
		},
		{
			ID:            "pay-2",
			RecipientName: "Bob Recipient",
			Amount:        99,
			Currency:      "USD",
			Status:        domain.StatusFailed,
			FailureReason: "missing invoice",
			ReasonCode:    domain.ReasonInsufficientDocs,
			CreatedAt:     created,
		},
	}, nil).Once()

	var buf bytes.Buffer
	err := h.Handle(context.Background(), query.ExportCSVQuery{}, &buf)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "id,recipient_name,amount,currency,reference,status,created_at,processed_at,failure_reason,reason_code,deleted_at,deleted_by", lines[0])

	// Embedded quotes doubled, field quoted because of the comma
	assert.Contains(t, lines[1], `"Acme ""Global"" Ltd, London"`)
	assert.Contains(t, lines[1], "1250.50")
	assert.Contains(t, lines[1], "2026-08-01T12:30:00Z")

	assert.Contains(t, lines[2], "99.00")
	assert.Contains(t, lines[2], "missing invoice")
	assert.Contains(t, lines[2], domain.ReasonInsufficientDocs)
}

func TestExportCSV_EmptyStillWritesHeader(t *testing.T) {
	repo := new(mocks.PaymentRepository)
	h := query.NewExportCSVHandler(repo)

	repo.On("FindAll", mock.Anything, mock.AnythingOfType("domain.Filter")).
		Return([]domain.Payment{}, nil).Once()

	var buf bytes.Buffer
	require.NoError(t, h.Handle(context.Background(), query.ExportCSVQuery{}, &buf))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}
