package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sekolahku/akademik-api/internal/middleware"
	"github.com/sekolahku/akademik-api/internal/models"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}

func sessionFromContext(c *gin.Context) *models.ScopedSession {
	value, exists := c.Get(middleware.ContextSessionKey)
	if !exists {
		return nil
	}
	session, ok := value.(*models.ScopedSession)
	if !ok {
		return nil
	}
	return session
}
