package domain

// Payment settles an order. A payment references exactly one order; split
// payments are represented as multiple rows.
type Payment struct {
	PaymentID     int64   `json:"PaymentID"`
	OrderID       int64   `json:"OrderID"`
	PaymentDate   string  `json:"PaymentDate"`
	Amount        float64 `json:"Amount"`
	PaymentMethod string  `json:"PaymentMethod"`
}
