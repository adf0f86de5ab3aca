// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleCustomer indicates a pharmacy customer.
	RoleCustomer Role = "customer"
	// RoleAdmin indicates a pharmacy administrator.
	RoleAdmin Role = "admin"
	// RoleDelivery indicates delivery personnel.
	RoleDelivery Role = "delivery"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleDelivery:
		return true
	default:
		return false
	}
}

// IDPrefix returns the user-ID prefix used for this role ("CM001", "AD001", "DM001").
func (r Role) IDPrefix() string {
	switch r {
	case RoleCustomer:
		return "CM"
	case RoleAdmin:
		return "AD"
	case RoleDelivery:
		return "DM"
	default:
		return ""
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
