package model

import "fmt"

// Roles and statuses for system users.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
	RoleStaff    = "staff"

	StatusActive   = "active"
	StatusInactive = "inactive"
)

// MainAdminID identifies the one user exempt from delete/deactivate.
// It always exists, always has role admin.
const MainAdminID int64 = 1

// User is a record in the "users" collection. Username, email and phone are
// unique across the collection (username/email compared case-insensitively).
type User struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
	Status       string `json:"status"`
}

func (u *User) Key() int64      { return u.ID }
func (u *User) SetKey(id int64) { u.ID = id }

func (u *User) Clone() *User {
	cp := *u
	return &cp
}

func (u *User) ApplyField(field, raw string) error {
	switch field {
	case "first_name":
		u.FirstName = raw
	case "last_name":
		u.LastName = raw
	case "username":
		u.Username = raw
	case "email":
		u.Email = raw
	case "phone":
		u.Phone = raw
	case "role":
		u.Role = raw
	case "status":
		u.Status = raw
	default:
		return fmt.Errorf("user: %q: %w", field, ErrUnknownField)
	}
	return nil
}

// IsMainAdmin reports whether this is the protected admin record.
func (u *User) IsMainAdmin() bool { return u.ID == MainAdminID }
