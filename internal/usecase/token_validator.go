package usecase

import (
	"lift-reservation/internal/domain/user"
	"lift-reservation/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator turns an identity-provider token into (user id, role).
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

// Tokens without a role claim are ordinary skiers. An unknown role is rejected
// rather than downgraded.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	if claims.Role == "" {
		return claims.UserID, user.RoleSkier, nil
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}

	return claims.UserID, role, nil
}
