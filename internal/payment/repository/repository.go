package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/finworks/payment-portal/internal/payment/domain"
)

// GormPaymentRepository persists payments in PostgreSQL
type GormPaymentRepository struct {
	db *gorm.DB
}

func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

func (r *GormPaymentRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Payment{})
}

func (r *GormPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *GormPaymentRepository) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	var payment domain.Payment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// likeEscaper neutralizes LIKE wildcards in user-supplied keywords
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *GormPaymentRepository) filtered(ctx context.Context, filter domain.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.Payment{})

	if !filter.IncludeDeleted {
		q = q.Where("deleted_at IS NULL")
	}
	if filter.OwnerID != "" {
		q = q.Where("user_id = ?", filter.OwnerID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Keyword != "" {
		pattern := "%" + likeEscaper.Replace(filter.Keyword) + "%"
		q = q.Where(`(recipient_name ILIKE ? ESCAPE '\' OR reference ILIKE ? ESCAPE '\')`, pattern, pattern)
	}
	if filter.From != nil {
		q = q.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at <= ?", *filter.To)
	}
	if filter.MinAmount != nil {
		q = q.Where("amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		q = q.Where("amount <= ?", *filter.MaxAmount)
	}
	if filter.AssignedToID != "" {
		q = q.Where("assigned_to_id = ?", filter.AssignedToID)
	}
	if filter.Escalated != nil {
		q = q.Where("escalated = ?", *filter.Escalated)
	}

	return q
}

// Find returns one page of matching payments plus the total match count.
// Sort order is createdAt descending with id as a tie-breaker to keep
// pagination stable.
func (r *GormPaymentRepository) Find(ctx context.Context, filter domain.Filter) ([]domain.Payment, int64, error) {
	filter.Normalize()

	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []domain.Payment
	err := r.filtered(ctx, filter).
		Order("created_at DESC, id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset()).
		Find(&payments).Error
	if err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

// FindAll returns every matching payment, unpaginated. Used by CSV export.
func (r *GormPaymentRepository) FindAll(ctx context.Context, filter domain.Filter) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.filtered(ctx, filter).
		Order("created_at DESC, id DESC").
		Find(&payments).Error
	return payments, err
}

func (r *GormPaymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// StatusBreakdown aggregates count, total amount and average processing time
// per status over non-deleted payments
func (r *GormPaymentRepository) StatusBreakdown(ctx context.Context) ([]domain.StatusBucket, error) {
	var buckets []domain.StatusBucket
	err := r.db.WithContext(ctx).Model(&domain.Payment{}).
		Select(`status,
			COUNT(*) AS count,
			COALESCE(SUM(amount), 0) AS total_amount,
			COALESCE(AVG(EXTRACT(EPOCH FROM (processed_at - created_at))), 0) AS avg_processing_seconds`).
		Where("deleted_at IS NULL").
		Group("status").
		Scan(&buckets).Error
	return buckets, err
}

// ageBucketOrder fixes the histogram bar order; buckets with no rows are
// zero-filled
var ageBucketOrder = []string{"0-24h", "24-48h", "48-72h", "72h-7d", "7d-14d", "14d+"}

func (r *GormPaymentRepository) AgeHistogram(ctx context.Context) ([]domain.AgeBucket, error) {
	var rows []domain.AgeBucket
	err := r.db.WithContext(ctx).Raw(`
		SELECT CASE
			WHEN created_at > now() - interval '24 hours' THEN '0-24h'
			WHEN created_at > now() - interval '48 hours' THEN '24-48h'
			WHEN created_at > now() - interval '72 hours' THEN '48-72h'
			WHEN created_at > now() - interval '7 days'   THEN '72h-7d'
			WHEN created_at > now() - interval '14 days'  THEN '7d-14d'
			ELSE '14d+'
		END AS label, COUNT(*) AS count
		FROM payments
		WHERE deleted_at IS NULL
		GROUP BY label`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Label] = row.Count
	}

	buckets := make([]domain.AgeBucket, 0, len(ageBucketOrder))
	for _, label := range ageBucketOrder {
		buckets = append(buckets, domain.AgeBucket{Label: label, Count: counts[label]})
	}
	return buckets, nil
}

func (r *GormPaymentRepository) DailyCounts(ctx context.Context, days int) ([]domain.DailyBucket, error) {
	var buckets []domain.DailyBucket
	err := r.db.WithContext(ctx).Raw(`
		SELECT to_char(created_at, 'YYYY-MM-DD') AS day, COUNT(*) AS count
		FROM payments
		WHERE deleted_at IS NULL AND created_at > now() - make_interval(days => ?)
		GROUP BY day
		ORDER BY day`, days).Scan(&buckets).Error
	return buckets, err
}

func (r *GormPaymentRepository) TopReasonCodes(ctx context.Context, limit int) ([]domain.ReasonCount, error) {
	var counts []domain.ReasonCount
	err := r.db.WithContext(ctx).Model(&domain.Payment{}).
		Select("reason_code, COUNT(*) AS count").
		Where("deleted_at IS NULL AND reason_code <> ''").
		Group("reason_code").
		Order("count DESC").
		Limit(limit).
		Scan(&counts).Error
	return counts, err
}

// QueueHealth counts pending/processing payments past the at-risk and stale
// age thresholds
func (r *GormPaymentRepository) QueueHealth(ctx context.Context, atRisk, stale time.Duration) (*domain.QueueHealth, error) {
	var health domain.QueueHealth
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE created_at < now() - make_interval(secs => ?)) AS stale,
			COUNT(*) FILTER (WHERE created_at < now() - make_interval(secs => ?)
				AND created_at >= now() - make_interval(secs => ?)) AS at_risk
		FROM payments
		WHERE deleted_at IS NULL AND status IN (?, ?)`,
		stale.Seconds(), atRisk.Seconds(), stale.Seconds(),
		domain.StatusPending, domain.StatusProcessing).
		Scan(&health).Error
	if err != nil {
		return nil, err
	}
	return &health, nil
}
