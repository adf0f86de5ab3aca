package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItemModel mirrors the 'cart_items' table. The unique index on
// (customer_id, med_code) keeps one line per medicine per customer.
type CartItemModel struct {
	CartID       int64           `gorm:"primaryKey;autoIncrement"`
	CustomerID   string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_cart_customer_med"`
	MedicineCode string          `gorm:"column:med_code;type:varchar(10);not null;uniqueIndex:idx_cart_customer_med"`
	Quantity     int             `gorm:"not null"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	TotalPrice   decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	AddedAt      time.Time       `gorm:"autoCreateTime"`

	Medicine *MedicineModel `gorm:"foreignKey:MedicineCode;references:Code"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
