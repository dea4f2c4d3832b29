package domain

// MenuItem is a single entry on the menu.
type MenuItem struct {
	MenuItemID int64   `json:"MenuItemID"`
	Name       string  `json:"Name"`
	Category   string  `json:"Category"`
	Price      float64 `json:"Price"`
}
