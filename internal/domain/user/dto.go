package user

import "time"

// UserResponse represents user data in API responses
type UserResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	EmployeeID *string `json:"employee_id"`
	Department *string `json:"department"`
	CreatedAt  string  `json:"created_at"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		EmployeeID: u.EmployeeID,
		Department: u.Department,
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
	}
}
