// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table. IDs are role-prefixed business
// identifiers (CM001, AD001, DM001) assigned by the application.
type UserModel struct {
	ID           string `gorm:"type:varchar(10);primaryKey"`
	FirstName    string `gorm:"type:varchar(100);not null"`
	LastName     string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Address      string `gorm:"type:text"`
	Phone        string `gorm:"type:varchar(30)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	CustomerProfile *CustomerProfileModel `gorm:"foreignKey:CustomerID"`
	AdminProfile    *AdminProfileModel    `gorm:"foreignKey:AdminID"`
	DeliveryProfile *DeliveryProfileModel `gorm:"foreignKey:StaffID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// CustomerProfileModel mirrors the 'customers' table. CustomerID references users.id.
type CustomerProfileModel struct {
	CustomerID string `gorm:"type:varchar(10);primaryKey"`
	Points     int    `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerProfileModel) TableName() string {
	return "customers"
}

// AdminProfileModel mirrors the 'admins' table. AdminID references users.id.
type AdminProfileModel struct {
	AdminID   string `gorm:"type:varchar(10);primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminProfileModel) TableName() string {
	return "admins"
}

// DeliveryProfileModel mirrors the 'delivery_staff' table. StaffID references users.id.
type DeliveryProfileModel struct {
	StaffID   string `gorm:"type:varchar(10);primaryKey"`
	Area      string `gorm:"type:varchar(100)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryProfileModel) TableName() string {
	return "delivery_staff"
}
