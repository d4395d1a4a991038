//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"lift-reservation/internal/domain/user"
	"lift-reservation/internal/pkg/jwt"
	"lift-reservation/internal/usecase"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "validator-secret"

func signed(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	if claims.ExpiresAt == nil {
		claims.ExpiresAt = gojwt.NewNumericDate(time.Now().Add(time.Hour))
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestTokenValidator_ValidateToken(t *testing.T) {
	validator := usecase.NewTokenValidator(jwt.NewService(secret, time.Hour))
	userID := uuid.New()

	testCases := []struct {
		name     string
		claims   jwt.Claims
		wantRole user.Role
		wantErr  error
	}{
		{name: "staff role", claims: jwt.Claims{UserID: userID, Role: "staff"}, wantRole: user.RoleStaff},
		{name: "no role means skier", claims: jwt.Claims{UserID: userID}, wantRole: user.RoleSkier},
		{name: "unknown role", claims: jwt.Claims{UserID: userID, Role: "root"}, wantErr: user.ErrInvalidRole},
		{name: "no user", claims: jwt.Claims{Role: "skier"}, wantErr: jwt.ErrInvalidToken},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, role, err := validator.ValidateToken(signed(t, tc.claims))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, uuid.Nil, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, id)
			assert.Equal(t, tc.wantRole, role)
		})
	}
}
