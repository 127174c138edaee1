package repository

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/finworks/payment-portal/internal/payment/domain"
)

var tracer = otel.Tracer("payment-repository")

// TracingPaymentRepository wraps GormPaymentRepository with tracing
type TracingPaymentRepository struct {
	*GormPaymentRepository
}

// NewTracingPaymentRepository creates a repository with per-call spans
func NewTracingPaymentRepository(db *gorm.DB) *TracingPaymentRepository {
	return &TracingPaymentRepository{
		GormPaymentRepository: NewGormPaymentRepository(db),
	}
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (r *TracingPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("payment.id", payment.ID),
			attribute.String("payment.currency", payment.Currency),
		),
	)
	err := r.GormPaymentRepository.Create(ctx, payment)
	finish(span, err)
	return err
}

func (r *TracingPaymentRepository) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.String("payment.id", id)),
	)
	payment, err := r.GormPaymentRepository.FindByID(ctx, id)
	finish(span, err)
	return payment, err
}

func (r *TracingPaymentRepository) Find(ctx context.Context, filter domain.Filter) ([]domain.Payment, int64, error) {
	ctx, span := tracer.Start(ctx, "repository.Find",
		trace.WithAttributes(
			attribute.String("query.status", filter.Status),
			attribute.Int("query.page", filter.Page),
			attribute.Int("query.limit", filter.Limit),
		),
	)
	payments, total, err := r.GormPaymentRepository.Find(ctx, filter)
	if err == nil {
		span.SetAttributes(attribute.Int64("query.total", total))
	}
	finish(span, err)
	return payments, total, err
}

func (r *TracingPaymentRepository) FindAll(ctx context.Context, filter domain.Filter) ([]domain.Payment, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll")
	payments, err := r.GormPaymentRepository.FindAll(ctx, filter)
	if err == nil {
		span.SetAttributes(attribute.Int("query.rows", len(payments)))
	}
	finish(span, err)
	return payments, err
}

func (r *TracingPaymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	ctx, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.String("payment.id", payment.ID),
			attribute.String("payment.status", payment.Status),
		),
	)
	err := r.GormPaymentRepository.Update(ctx, payment)
	finish(span, err)
	return err
}

func (r *TracingPaymentRepository) StatusBreakdown(ctx context.Context) ([]domain.StatusBucket, error) {
	ctx, span := tracer.Start(ctx, "repository.StatusBreakdown")
	buckets, err := r.GormPaymentRepository.StatusBreakdown(ctx)
	finish(span, err)
	return buckets, err
}

func (r *TracingPaymentRepository) AgeHistogram(ctx context.Context) ([]domain.AgeBucket, error) {
	ctx, span := tracer.Start(ctx, "repository.AgeHistogram")
	buckets, err := r.GormPaymentRepository.AgeHistogram(ctx)
	finish(span, err)
	return buckets, err
}

func (r *TracingPaymentRepository) DailyCounts(ctx context.Context, days int) ([]domain.DailyBucket, error) {
	ctx, span := tracer.Start(ctx, "repository.DailyCounts",
		trace.WithAttributes(attribute.Int("query.days", days)),
	)
	buckets, err := r.GormPaymentRepository.DailyCounts(ctx, days)
	finish(span, err)
	return buckets, err
}

func (r *TracingPaymentRepository) TopReasonCodes(ctx context.Context, limit int) ([]domain.ReasonCount, error) {
	ctx, span := tracer.Start(ctx, "repository.TopReasonCodes")
	counts, err := r.GormPaymentRepository.TopReasonCodes(ctx, limit)
	finish(span, err)
	return counts, err
}

func (r *TracingPaymentRepository) QueueHealth(ctx context.Context, atRisk, stale time.Duration) (*domain.QueueHealth, error) {
	ctx, span := tracer.Start(ctx, "repository.QueueHealth")
	health, err := r.GormPaymentRepository.QueueHealth(ctx, atRisk, stale)
	finish(span, err)
	return health, err
}
