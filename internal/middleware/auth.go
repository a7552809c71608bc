package middleware

import (
	"strings"

	"inflo_backend/internal/auth"
	"inflo_backend/internal/logger"
	"inflo_backend/internal/models"
	"inflo_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the Bearer token and stores its claims in the
// gin context. Tokens issued at OTP verification carry only a phone; routes
// behind this middleware require a full user token (UserID set).
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortWithError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr, secret)
		if err != nil {
			abortWithError(c, apperrors.ErrInvalidToken)
			return
		}
		if claims.UserID == "" {
			abortWithError(c, apperrors.NewUnauthorizedError("Token is not bound to a user"))
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RoleMiddleware restricts a route to a single role.
func RoleMiddleware(requiredRole models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			abortWithError(c, apperrors.NewForbiddenError("Access denied: no role"))
			return
		}

		roleStr, ok := roleVal.(string)
		if !ok {
			abortWithError(c, apperrors.NewForbiddenError("Access denied: invalid role type"))
			return
		}

		if models.UserRole(roleStr) != requiredRole {
			abortWithError(c, apperrors.NewForbiddenError("Access denied: insufficient permissions"))
			return
		}

		c.Next()
	}
}

func abortWithError(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPCode, apperrors.ErrorResponse{Error: appErr})
}

// GetUserID extracts the authenticated user ID from the context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}
