package user

import (
	"context"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	// Create returns ErrUserEmailExists or ErrEmployeeIDExists on a uniqueness conflict
	Create(ctx context.Context, newUser User) (User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
	CountByRole(ctx context.Context, role Role) (int64, error)
}
