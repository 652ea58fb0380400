package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database/dbtest"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRepository_RefreshTokenLifecycle(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := postgresql.NewJWTRepository(db)
	u := createTestUser(t, db, "Jane", "jane@example.com", user.RoleEmployee, nil)

	session := auth.SessionTrackingRequest{IPAddress: "127.0.0.1", UserAgent: "Mozilla/5.0"}
	require.NoError(t, repo.CreateRefreshToken(ctx, u.ID, "live-token", time.Now().Add(time.Hour).Unix(), session))
	require.NoError(t, repo.CreateRefreshToken(ctx, u.ID, "stale-token", time.Now().Add(-time.Hour).Unix(), session))

	userID, revoked, err := repo.IsRefreshTokenRevoked(ctx, "live-token")
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.Equal(t, u.ID, userID)

	_, revoked, err = repo.IsRefreshTokenRevoked(ctx, "stale-token")
	require.NoError(t, err)
	assert.True(t, revoked, "expired tokens count as revoked")

	_, revoked, err = repo.IsRefreshTokenRevoked(ctx, "never-issued")
	require.NoError(t, err)
	assert.True(t, revoked, "unknown tokens count as revoked")

	require.NoError(t, repo.RevokeRefreshToken(ctx, "live-token"))
	_, revoked, err = repo.IsRefreshTokenRevoked(ctx, "live-token")
	require.NoError(t, err)
	assert.True(t, revoked)

	// revoking twice is harmless
	require.NoError(t, repo.RevokeRefreshToken(ctx, "live-token"))
}

func TestJWTRepository_DeleteExpiredRefreshTokens(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := postgresql.NewJWTRepository(db)
	u := createTestUser(t, db, "Jane", "jane@example.com", user.RoleEmployee, nil)

	session := auth.SessionTrackingRequest{IPAddress: "127.0.0.1", UserAgent: "Mozilla/5.0"}
	now := time.Now()
	require.NoError(t, repo.CreateRefreshToken(ctx, u.ID, "old", now.Add(-48*time.Hour).Unix(), session))
	require.NoError(t, repo.CreateRefreshToken(ctx, u.ID, "recent", now.Add(-time.Hour).Unix(), session))
	require.NoError(t, repo.CreateRefreshToken(ctx, u.ID, "live", now.Add(time.Hour).Unix(), session))

	deleted, err := repo.DeleteExpiredRefreshTokens(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	userID, revoked, err := repo.IsRefreshTokenRevoked(ctx, "live")
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.Equal(t, u.ID, userID)
}
