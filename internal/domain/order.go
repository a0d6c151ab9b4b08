package domain

import (
	"math"
	"time"
)

type Order struct {
	ID           uint
	CustomerName string
	Phone        string
	Address      string
	Pincode      string
	Item         string
	Quantity     int
	TotalAmount  float64
	PaidAmount   float64
	Status       string
	CreatedAt    time.Time
}

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

// ValidStatus reports whether s is one of the two fulfillment states.
func ValidStatus(s string) bool {
	return s == OrderStatusPending || s == OrderStatusCompleted
}

// PendingAmount is derived on read and never persisted, so edits to
// TotalAmount or PaidAmount change it immediately. Rounded to 2 decimals.
func (o Order) PendingAmount() float64 {
	return math.Round((o.TotalAmount-o.PaidAmount)*100) / 100
}
