package dto

// OrderForm carries the raw form fields exactly as posted. Numeric
// fields stay strings here; the order service coerces them with the
// declared fallbacks (quantity 1, amounts 0) before anything touches
// the repository.
type OrderForm struct {
	CustomerName string
	Phone        string
	Address      string
	Pincode      string
	Item         string
	Quantity     string
	TotalAmount  string
	PaidAmount   string
	Status       string
}
