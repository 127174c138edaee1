package payment

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/finworks/payment-portal/internal/payment/domain"
	"github.com/finworks/payment-portal/internal/payment/repository"
	"github.com/finworks/payment-portal/internal/redaction"
)

// ProvidePaymentRepository provides the traced payment repository
func ProvidePaymentRepository(db *gorm.DB) domain.PaymentRepository {
	return repository.NewTracingPaymentRepository(db)
}

// ProvideRedactor provides the note redactor
func ProvideRedactor() redaction.Redactor {
	return redaction.NewPatternRedactor()
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvidePaymentRepository,
)

var RedactionSet = wire.NewSet(
	ProvideRedactor,
)
