package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/sekolahku/akademik-api/internal/models"
	"github.com/sekolahku/akademik-api/internal/service"
	appErrors "github.com/sekolahku/akademik-api/pkg/errors"
	"github.com/sekolahku/akademik-api/pkg/response"
)

// ContextSessionKey is the gin context key storing the scoped session.
const ContextSessionKey = "scopedSession"

// RequireScope resolves and validates the caller's role-scoped session for
// the route. It is the one place role checks happen; handlers downstream
// read the session from the context and trust its scope.
func RequireScope(sessions *service.SessionService, scope models.RoleScope) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsValue, exists := c.Get(ContextUserKey)
		if !exists {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		claims, ok := claimsValue.(*models.JWTClaims)
		if !ok {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		session, err := sessions.Validate(c.Request.Context(), claims, scope)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextSessionKey, session)
		c.Next()
	}
}
