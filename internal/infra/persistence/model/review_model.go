package model

import "time"

// ReviewModel mirrors the 'customer_reviews' table.
type ReviewModel struct {
	ReviewID   int64  `gorm:"primaryKey;autoIncrement"`
	CustomerID string `gorm:"type:varchar(10);not null;index"`
	Text       string `gorm:"column:review_text;type:text;not null"`
	CreatedAt  time.Time

	Customer *UserModel `gorm:"foreignKey:CustomerID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "customer_reviews"
}
