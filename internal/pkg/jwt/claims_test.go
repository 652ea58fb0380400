package jwt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimsFromContext_RoundTrip(t *testing.T) {
	employeeID := "EMP-7"
	ctx, err := ContextWithClaims(context.Background(), Claims{
		UserID:     "user-7",
		Email:      "seven@example.com",
		Role:       "manager",
		EmployeeID: &employeeID,
	})
	require.NoError(t, err)

	claims, err := ClaimsFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-7", claims.UserID)
	assert.Equal(t, "seven@example.com", claims.Email)
	assert.Equal(t, "manager", claims.Role)
	require.NotNil(t, claims.EmployeeID)
	assert.Equal(t, "EMP-7", *claims.EmployeeID)
}

func TestClaimsFromContext_Missing(t *testing.T) {
	_, err := ClaimsFromContext(context.Background())
	assert.Error(t, err)

	ctx, err := ContextWithClaims(context.Background(), Claims{Role: "employee"})
	require.NoError(t, err)
	_, err = ClaimsFromContext(ctx)
	assert.ErrorIs(t, err, ErrMissingClaims)
}
