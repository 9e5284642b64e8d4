package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jdelacruz/campusrecords/internal/app/models/dto"
	"github.com/jdelacruz/campusrecords/internal/pkg/apperrors"
	"github.com/jdelacruz/campusrecords/internal/pkg/auth"
)

// Context keys for the identity resolved by the session gate.
const (
	ContextStudentID     = "studentID"
	ContextStudentNumber = "studentNumber"
	ContextRole          = "role"
)

// AuthMiddleware is the session gate: it resolves a caller identity from
// the bearer token on every request and fails closed when it cannot.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// RequireSession validates the bearer token and stores the resolved
// identity in the request context. Identity is resolved per request and
// never carried over: a missing or invalid token aborts before any
// handler, and therefore before any store query, runs.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthenticated(c, "Authorization header missing")
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			abortUnauthenticated(c, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			if errors.Is(err, apperrors.ErrTokenExpired) {
				errorDetail := dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Session expired")
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
				return
			}
			abortUnauthenticated(c, "Invalid session token")
			return
		}

		c.Set(ContextStudentID, claims.ProfileID)
		c.Set(ContextStudentNumber, claims.StudentID)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// StudentIDFromContext returns the session-resolved profile id. Handlers
// must use this, never a client-supplied id, for self-service lookups.
func StudentIDFromContext(c *gin.Context) (int64, bool) {
	value, exists := c.Get(ContextStudentID)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

func abortUnauthenticated(c *gin.Context, details string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
	errorDetail = errorDetail.WithDetails(details)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}
