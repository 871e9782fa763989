package dto

import (
	"time"

	"github.com/trf-online/trf-backend/internal/core/domain"
)

// CreateUserRequest creates a login account. EmployeeID is required for
// EMPLOYEE accounts; Department is required for roles that act on behalf
// of a department.
type CreateUserRequest struct {
	Username   string      `json:"username" binding:"required,min=3"`
	Email      string      `json:"email" binding:"required,email"`
	Name       string      `json:"name" binding:"required"`
	Password   string      `json:"password" binding:"required,min=8"`
	Role       domain.Role `json:"role" binding:"required,trfrole"`
	EmployeeID *string     `json:"employeeId,omitempty"`
	Department *string     `json:"department,omitempty"`
}

// UserResponse is the API representation of a user account.
type UserResponse struct {
	UserID     string      `json:"userId"`
	Username   string      `json:"username"`
	Email      string      `json:"email"`
	Name       string      `json:"name"`
	Role       domain.Role `json:"role"`
	EmployeeID *string     `json:"employeeId,omitempty"`
	Department *string     `json:"department,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// ToUserResponse maps a domain user to its API shape.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:     u.UserID,
		Username:   u.Username,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		EmployeeID: u.EmployeeID,
		Department: u.Department,
		CreatedAt:  u.CreatedAt,
	}
}
