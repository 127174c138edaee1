//go:build wireinject
// +build wireinject

package payment

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/finworks/payment-portal/internal/payment/handler"
	"github.com/finworks/payment-portal/kafka"
)

// InitializeHandler initializes the payment handler with all dependencies
func InitializeHandler(db *gorm.DB, publisher *kafka.Publisher, limiters *handler.RateLimiters) (*handler.PaymentHandler, error) {
	wire.Build(
		RepositorySet,
		RedactionSet,
		handler.NewPaymentHandler,
	)
	return nil, nil
}
