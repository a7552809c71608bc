package models

import "time"

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type Payment struct {
	ID          string        `json:"id"`
	UserID      string        `json:"userId"`
	Amount      float64       `json:"amount"`
	Description string        `json:"description"`
	Date        time.Time     `json:"date"`
	Status      PaymentStatus `json:"status"`
}

// Subscription is the purchase record returned by the billing endpoint;
// the plan/expiry pair itself lives on the User.
type Subscription struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Plan      SubscriptionPlan `json:"plan"`
	StartDate time.Time        `json:"startDate"`
	EndDate   time.Time        `json:"endDate"`
}
