package entity

import "time"

// RequestStatus is the admin triage decision on a medicine request.
type RequestStatus string

const (
	// RequestPending is the status of every newly submitted request.
	RequestPending RequestStatus = "Pending"
	// RequestAccepted means the admin will stock the medicine.
	RequestAccepted RequestStatus = "Accepted"
	// RequestDeclined means the admin will not stock the medicine.
	RequestDeclined RequestStatus = "Declined"
)

// String returns the string representation of the status.
func (s RequestStatus) String() string {
	return string(s)
}

// CustomerRequest is a customer's ask for a medicine the catalog lacks.
// Status transitions are owned exclusively by admins and may be overwritten.
type CustomerRequest struct {
	RequestID    int64
	CustomerID   string
	MedicineName string
	CustomerName string // Joined for the admin triage view.
	ExpectedDate time.Time
	Status       RequestStatus
}
