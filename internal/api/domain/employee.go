package domain

// Employee is a staff member.
type Employee struct {
	EmployeeID int64   `json:"EmployeeID"`
	FirstName  string  `json:"FirstName"`
	LastName   string  `json:"LastName"`
	Position   string  `json:"Position"`
	Salary     float64 `json:"Salary"`
}
