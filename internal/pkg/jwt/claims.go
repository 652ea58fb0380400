package jwt

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var ErrMissingClaims = errors.New("missing or invalid token claims")

// Claims is the identity carried by an access token.
type Claims struct {
	UserID     string
	Email      string
	Role       string
	EmployeeID *string
}

// ClaimsFromContext extracts the verified access token claims placed in ctx
// by jwtauth.Verifier.
func ClaimsFromContext(ctx context.Context) (Claims, error) {
	_, raw, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := raw["user_id"].(string)
	if !ok || userID == "" {
		return Claims{}, ErrMissingClaims
	}

	claims := Claims{UserID: userID}
	claims.Email, _ = raw["email"].(string)
	claims.Role, _ = raw["role"].(string)
	if employeeID, ok := raw["employee_id"].(string); ok && employeeID != "" {
		claims.EmployeeID = &employeeID
	}
	return claims, nil
}

// ContextWithClaims stores claims in ctx the same way jwtauth.Verifier does.
func ContextWithClaims(ctx context.Context, claims Claims) (context.Context, error) {
	token := jwt.New()
	if err := token.Set("user_id", claims.UserID); err != nil {
		return nil, err
	}
	if err := token.Set("email", claims.Email); err != nil {
		return nil, err
	}
	if err := token.Set("role", claims.Role); err != nil {
		return nil, err
	}
	if err := token.Set("type", TokenTypeAccess); err != nil {
		return nil, err
	}
	if claims.EmployeeID != nil {
		if err := token.Set("employee_id", *claims.EmployeeID); err != nil {
			return nil, err
		}
	}
	return jwtauth.NewContext(ctx, token, nil), nil
}
