package domain

// Customer is a restaurant patron. Field names mirror the Customers table
// columns and are serialized verbatim on the wire.
type Customer struct {
	CustomerID       int64  `json:"CustomerID"`
	FirstName        string `json:"FirstName"`
	LastName         string `json:"LastName"`
	PhoneNumber      string `json:"PhoneNumber"`
	Email            string `json:"Email"`
	MembershipStatus string `json:"MembershipStatus"`
}
