package dto

import (
	"time"

	"orderdesk/internal/domain"
)

type OrderView struct {
	ID            uint      `json:"id"`
	CustomerName  string    `json:"customer_name"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Pincode       string    `json:"pincode"`
	Item          string    `json:"item"`
	Quantity      int       `json:"quantity"`
	TotalAmount   float64   `json:"total_amount"`
	PaidAmount    float64   `json:"paid_amount"`
	PendingAmount float64   `json:"pending_amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewOrderView(o domain.Order) OrderView {
	return OrderView{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		Phone:         o.Phone,
		Address:       o.Address,
		Pincode:       o.Pincode,
		Item:          o.Item,
		Quantity:      o.Quantity,
		TotalAmount:   o.TotalAmount,
		PaidAmount:    o.PaidAmount,
		PendingAmount: o.PendingAmount(),
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
	}
}

func NewOrderViews(orders []domain.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o))
	}
	return views
}

// InvoiceView is the payload behind GET /orders/{id}/invoice.
type InvoiceView struct {
	Order        OrderView `json:"order"`
	BusinessName string    `json:"business_name"`
}
