package dto

import "github.com/Jose-11-2001/Mechanic-sub000/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateUserRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=80"`
	LastName  string `json:"last_name"  validate:"required,min=1,max=80"`
	Username  string `json:"username"   validate:"required,min=3,max=40"`
	Email     string `json:"email"      validate:"required,email"`
	Phone     string `json:"phone"      validate:"required,min=7,max=20"`
	Password  string `json:"password"   validate:"required,min=6"`
	Role      string `json:"role"       validate:"required,oneof=admin customer staff"`
}

type UpdateUserRequest struct {
	FirstName string `json:"first_name" validate:"omitempty,min=1,max=80"`
	LastName  string `json:"last_name"  validate:"omitempty,min=1,max=80"`
	Username  string `json:"username"   validate:"omitempty,min=3,max=40"`
	Email     string `json:"email"      validate:"omitempty,email"`
	Phone     string `json:"phone"      validate:"omitempty,min=7,max=20"`
	Password  string `json:"password"   validate:"omitempty,min=6"`
	Role      string `json:"role"       validate:"omitempty,oneof=admin customer staff"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Status    string `json:"status"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		Status:    u.Status,
	}
}
