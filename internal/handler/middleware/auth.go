package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"lift-reservation/internal/domain/user"
	"lift-reservation/internal/handler/httperr"
	"lift-reservation/internal/pkg/cookie"
	"lift-reservation/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
	ctxClaimsKey   = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.Abort(c, http.StatusUnauthorized, "Access token required", httperr.CodeUnauthorized)
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Abort(c, http.StatusUnauthorized, "Invalid or expired token", httperr.CodeUnauthorized)
			return
		}

		setIdentity(c, userID, role)
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.Abort(c, http.StatusInternalServerError, "Internal server error", httperr.CodeInternal)
			return
		}

		if !role.AtLeast(minRole) {
			httperr.Abort(c, http.StatusForbidden, "Insufficient permissions", httperr.CodeForbidden)
			return
		}

		c.Next()
	}
}

// bearer header wins over the identity provider cookie
func extractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		if token := strings.TrimSpace(authHeader[len("Bearer "):]); token != "" {
			return token
		}
	}
	return cookie.GetAccessToken(c)
}

func setIdentity(c *gin.Context, userID uuid.UUID, role user.Role) {
	c.Set(ctxUserIDKey, userID)
	c.Set(ctxUserRoleKey, role)
	c.Set(ctxClaimsKey, map[string]any{
		"user_id": userID.String(),
		"role":    role.String(),
	})
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
