// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the shared identity row for all three roles. The ID carries the
// role-specific prefix assigned at creation time (CM001, AD001, DM001).
type User struct {
	ID              string           // Prefixed, zero-padded business identifier.
	FirstName       string           // The user's given name.
	LastName        string           // The user's family name.
	Email           string           // Unique login identifier.
	PasswordHash    string           // bcrypt hash; never the plaintext password.
	Address         string           // Postal address used for deliveries.
	Phone           string           // Contact phone number.
	CustomerProfile *CustomerProfile // Non-nil when the user holds the customer role.
	AdminProfile    *AdminProfile    // Non-nil when the user holds the admin role.
	DeliveryProfile *DeliveryProfile // Non-nil when the user holds the delivery role.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FullName returns the display name used in notifications and admin views.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Roles lists every role the user holds, derived from attached profiles.
func (u *User) Roles() Roles {
	roles := make(Roles, 0, 3)
	if u.CustomerProfile != nil {
		roles = append(roles, RoleCustomer)
	}
	if u.AdminProfile != nil {
		roles = append(roles, RoleAdmin)
	}
	if u.DeliveryProfile != nil {
		roles = append(roles, RoleDelivery)
	}

	return roles
}

// CustomerProfile holds data specific to the customer role.
// Points is adjusted only through atomic increments logged in the points ledger.
type CustomerProfile struct {
	CustomerID string // Foreign key to the core User.
	Points     int    // Current loyalty point balance, never negative.
	UpdatedAt  time.Time
}

// AdminProfile marks a user as an administrator.
type AdminProfile struct {
	AdminID string
}

// DeliveryProfile holds data specific to delivery personnel.
type DeliveryProfile struct {
	StaffID string // Foreign key to the core User.
	Area    string // Coverage area used by admins when assigning orders.
}
