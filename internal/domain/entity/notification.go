package entity

import "time"

// Notification types produced by the checkout and delivery workflows.
const (
	NotificationGeneral           = "general"
	NotificationPaymentSuccess    = "payment_success"
	NotificationDeliveryAccepted  = "delivery_accepted"
	NotificationDeliveryDeclined  = "delivery_declined"
	NotificationDeliveryCompleted = "delivery_completed"
)

// Notification is one row of the append-only per-customer message log.
// The customer-facing views mark rows read on fetch.
type Notification struct {
	NotificationID int64
	CustomerID     string
	Message        string
	Type           string
	IsRead         bool
	CreatedAt      time.Time
}
