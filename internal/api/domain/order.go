package domain

// Order is a single placed order. OrderDate is kept as the stored text
// representation rather than parsed into time.Time; the API forwards rows
// as-is.
type Order struct {
	OrderID     int64   `json:"OrderID"`
	CustomerID  int64   `json:"CustomerID"`
	OrderDate   string  `json:"OrderDate"`
	TotalAmount float64 `json:"TotalAmount"`
}

// CustomerOrder is one row of the Customers x Orders join used by the
// per-customer order listing.
type CustomerOrder struct {
	FirstName   string  `json:"FirstName"`
	LastName    string  `json:"LastName"`
	OrderDate   string  `json:"OrderDate"`
	TotalAmount float64 `json:"TotalAmount"`
}
