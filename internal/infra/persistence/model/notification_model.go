package model

import "time"

// NotificationModel mirrors the append-only 'notifications' table.
type NotificationModel struct {
	NotificationID int64  `gorm:"primaryKey;autoIncrement"`
	CustomerID     string `gorm:"type:varchar(10);not null;index"`
	Message        string `gorm:"type:text;not null"`
	Type           string `gorm:"type:varchar(30);not null;default:general"`
	IsRead         bool   `gorm:"not null;default:false"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
