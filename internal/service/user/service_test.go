package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	user.UserRepository
	users []user.User
	err   error
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) ListByRole(_ context.Context, role user.Role) ([]user.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []user.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func TestGetProfile(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	repo := &fakeUserRepo{users: []user.User{
		{ID: "u1", Name: "Jane", Email: "jane@example.com", PasswordHash: "secret", Role: user.RoleManager, CreatedAt: created},
	}}
	svc := NewUserService(repo)

	resp, err := svc.GetProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Jane", resp.Name)
	assert.Equal(t, "manager", resp.Role)
	assert.Equal(t, "2024-01-02T03:04:05Z", resp.CreatedAt)

	_, err = svc.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestListEmployees(t *testing.T) {
	repo := &fakeUserRepo{users: []user.User{
		{ID: "u1", Name: "Jane", Role: user.RoleEmployee},
		{ID: "u2", Name: "Max", Role: user.RoleManager},
		{ID: "u3", Name: "Bob", Role: user.RoleEmployee},
	}}
	svc := NewUserService(repo)

	resp, err := svc.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "u1", resp[0].ID)
	assert.Equal(t, "u3", resp[1].ID)

	empty, err := NewUserService(&fakeUserRepo{}).ListEmployees(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = NewUserService(&fakeUserRepo{err: errors.New("boom")}).ListEmployees(context.Background())
	assert.Error(t, err)
}
