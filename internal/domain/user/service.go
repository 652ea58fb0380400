package user

import "context"

type UserService interface {
	GetProfile(ctx context.Context, userID string) (UserResponse, error)
	ListEmployees(ctx context.Context) ([]UserResponse, error)
}
