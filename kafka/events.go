package kafka

import "time"

// PaymentCreatedEvent announces a newly submitted payment
type PaymentCreatedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	PaymentID string    `json:"payment_id"`
	UserID    string    `json:"user_id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Timestamp time.Time `json:"timestamp"`
}

// PaymentStatusChangedEvent announces a lifecycle transition
type PaymentStatusChangedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	PaymentID  string    `json:"payment_id"`
	UserID     string    `json:"user_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	ReasonCode string    `json:"reason_code,omitempty"`
	ActorID    string    `json:"actor_id"`
	Timestamp  time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypePaymentCreated       = "payment.created"
	EventTypePaymentStatusChanged = "payment.status_changed"
)

// Kafka topics
const (
	TopicPaymentCreated       = "payment-created"
	TopicPaymentStatusChanged = "payment-status-changed"
)
