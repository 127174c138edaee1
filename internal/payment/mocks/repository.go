// Package mocks provides testify mocks for the payment repository.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/finworks/payment-portal/internal/payment/domain"
)

// PaymentRepository is a mock implementation of domain.PaymentRepository
type PaymentRepository struct {
	mock.Mock
}

func (m *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *PaymentRepository) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *PaymentRepository) Find(ctx context.Context, filter domain.Filter) ([]domain.Payment, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Payment), args.Get(1).(int64), args.Error(2)
}

func (m *PaymentRepository) FindAll(ctx context.Context, filter domain.Filter) ([]domain.Payment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *PaymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *PaymentRepository) StatusBreakdown(ctx context.Context) ([]domain.StatusBucket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusBucket), args.Error(1)
}

func (m *PaymentRepository) AgeHistogram(ctx context.Context) ([]domain.AgeBucket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AgeBucket), args.Error(1)
}

func (m *PaymentRepository) DailyCounts(ctx context.Context, days int) ([]domain.DailyBucket, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyBucket), args.Error(1)
}

func (m *PaymentRepository) TopReasonCodes(ctx context.Context, limit int) ([]domain.ReasonCount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReasonCount), args.Error(1)
}

func (m *PaymentRepository) QueueHealth(ctx context.Context, atRisk, stale time.Duration) (*domain.QueueHealth, error) {
	args := m.Called(ctx, atRisk, stale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QueueHealth), args.Error(1)
}
