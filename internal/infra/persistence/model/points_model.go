package model

import "time"

// PointsEntryModel mirrors the append-only 'points_history' table.
type PointsEntryModel struct {
	HistoryID       int64  `gorm:"primaryKey;autoIncrement"`
	CustomerID      string `gorm:"type:varchar(10);not null;index"`
	PointsEarned    int    `gorm:"not null"`
	TransactionType string `gorm:"type:varchar(20);not null"`
	PaymentID       string `gorm:"type:varchar(12)"`
	Description     string `gorm:"type:text"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (PointsEntryModel) TableName() string {
	return "points_history"
}
