package entity

// Review is free-form customer feedback shown on the admin dashboard.
type Review struct {
	ReviewID     int64
	CustomerID   string
	CustomerName string // Joined for the admin view.
	Text         string
}
