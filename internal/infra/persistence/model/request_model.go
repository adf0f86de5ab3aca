package model

import "time"

// CustomerRequestModel mirrors the 'customer_requests' table. Admin triage
// addresses rows by the (customer_id, medicine_name) pair.
type CustomerRequestModel struct {
	RequestID    int64     `gorm:"primaryKey;autoIncrement"`
	CustomerID   string    `gorm:"type:varchar(10);not null;index:idx_request_customer_name"`
	MedicineName string    `gorm:"type:varchar(100);not null;index:idx_request_customer_name"`
	ExpectedDate time.Time `gorm:"type:date"`
	Status       string    `gorm:"type:varchar(20);not null;default:Pending"`
	CreatedAt    time.Time

	Customer *UserModel `gorm:"foreignKey:CustomerID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerRequestModel) TableName() string {
	return "customer_requests"
}
