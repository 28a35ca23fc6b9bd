package httpapi

import (
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"jadwal/internal/domain"
	"jadwal/internal/ports/output"
)

const (
	localeKey = "locale"
	claimsKey = "claims"
)

func (s *Server) localeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(localeKey, s.localizer.Match(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func locale(c *gin.Context) string {
	return c.GetString(localeKey)
}

// authMiddleware requires a valid bearer token and stores its claims.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			s.fail(c, domain.ErrUnauthorized)
			return
		}
		claims, err := s.auth.Authenticate(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			s.fail(c, err)
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

func (s *Server) requireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := claimsFrom(c)
		if claims == nil || !slices.Contains(roles, claims.Role) {
			s.fail(c, domain.ErrForbidden)
			return
		}
		c.Next()
	}
}

func claimsFrom(c *gin.Context) *output.TokenClaims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*output.TokenClaims)
	return claims
}
