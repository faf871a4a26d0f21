package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/soukly/api/internal/errors"
	"github.com/soukly/api/internal/model"
	"github.com/soukly/api/internal/service"
	"github.com/soukly/api/pkg/logger"
)

// ContextUserKey is where RequireAuth stores the authenticated user.
const ContextUserKey = "currentUser"

type JWTMiddleware struct {
	jwt  *service.JWTService
	auth *service.AuthService
}

func NewJWTMiddleware(jwt *service.JWTService, auth *service.AuthService) *JWTMiddleware {
	return &JWTMiddleware{jwt: jwt, auth: auth}
}

// RequireAuth validates the bearer token, resolves its user and rejects
// tokens issued before the user's last password change.
func (m *JWTMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			abortWith(c, apperrors.ErrUnauthorized)
			return
		}

		userID, issuedAt, err := m.jwt.ValidateToken(tokenString)
		if err != nil {
			logger.GetLogger().Warn("Invalid or expired token",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			abortWith(c, apperrors.ErrInvalidToken)
			return
		}

		user, err := m.auth.CurrentUser(c.Request.Context(), userID, issuedAt)
		if err != nil {
			abortWith(c, err)
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CheckActivation rejects deactivated accounts. Applied after RequireAuth
// everywhere except the activation route itself.
func (m *JWTMiddleware) CheckActivation() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortWith(c, apperrors.ErrUnauthorized)
			return
		}
		if !user.Active {
			abortWith(c, apperrors.ErrAccountDeactivated)
			return
		}
		c.Next()
	}
}

// AllowedTo gates a route to the given roles.
func (m *JWTMiddleware) AllowedTo(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortWith(c, apperrors.ErrUnauthorized)
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		logger.GetLogger().Warn("Role not allowed",
			zap.Uint("user_id", user.ID),
			zap.String("role", user.Role),
			zap.String("path", c.Request.URL.Path),
		)
		abortWith(c, apperrors.ErrForbidden)
	}
}

// CurrentUser returns the authenticated user set by RequireAuth.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

func abortWith(c *gin.Context, err error) {
	status := apperrors.ToHTTPStatus(err)
	c.AbortWithStatusJSON(status, map[string]any{
		"status":  "fail",
		"message": apperrors.GetErrorMessage(err),
	})
}
