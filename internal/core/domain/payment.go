package domain

import "time"

// Payment is a rent payment recorded against a lease.
type Payment struct {
	ID          string    `json:"id"`
	LeaseID     string    `json:"lease_id"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	PaymentDate time.Time `json:"payment_date"`
	CreatedAt   time.Time `json:"created_at"`
}
