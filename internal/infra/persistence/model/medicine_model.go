package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MedicineModel mirrors the 'medicines' table.
type MedicineModel struct {
	Code        string          `gorm:"type:varchar(10);primaryKey"`
	Name        string          `gorm:"type:varchar(100);not null"`
	GenericName string          `gorm:"type:varchar(100)"`
	Category    string          `gorm:"type:varchar(50)"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MedicineModel) TableName() string {
	return "medicines"
}
