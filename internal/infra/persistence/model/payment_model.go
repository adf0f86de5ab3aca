package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentModel mirrors the 'payments' table. payment_id is the business key
// ("PAY" plus random digits) generated at checkout.
type PaymentModel struct {
	PaymentID       string          `gorm:"type:varchar(12);primaryKey"`
	CustomerID      string          `gorm:"type:varchar(10);not null;index"`
	Amount          decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	PaymentType     string          `gorm:"type:varchar(20);not null"`
	DeliveryStaffID *string         `gorm:"type:varchar(10);index"`
	Status          string          `gorm:"type:varchar(30);not null"`
	DeliveryDate    *time.Time
	CreatedAt       time.Time

	Customer      *UserModel `gorm:"foreignKey:CustomerID;references:ID"`
	DeliveryStaff *UserModel `gorm:"foreignKey:DeliveryStaffID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
