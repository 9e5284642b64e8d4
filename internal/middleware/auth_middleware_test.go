package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelacruz/campusrecords/internal/pkg/auth"
)

func newGateRouter(t *testing.T, jwtService *auth.JWTService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	authMiddleware := NewAuthMiddleware(jwtService)
	router.GET("/protected", authMiddleware.RequireSession(), func(c *gin.Context) {
		id, ok := StudentIDFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"studentID": id})
	})
	return router
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "campusrecords.test",
	})
}

func TestRequireSession_ValidToken(t *testing.T) {
	jwtService := newTestJWTService()
	router := newGateRouter(t, jwtService)

	token, err := jwtService.GenerateToken(7, "2021-00412", "student")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"studentID":7`)
}

func TestRequireSession_FailsClosed(t *testing.T) {
	jwtService := newTestJWTService()
	router := newGateRouter(t, jwtService)

	expiredService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "campusrecords.test",
	})
	expiredToken, err := expiredService.GenerateToken(7, "2021-00412", "student")
	require.NoError(t, err)

	foreignService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "someone-elses-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "campusrecords.test",
	})
	foreignToken, err := foreignService.GenerateToken(7, "2021-00412", "student")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "not a bearer header", header: "Basic dXNlcjpwYXNz"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
		{name: "expired token", header: "Bearer " + expiredToken},
		{name: "wrong signing key", header: "Bearer " + foreignToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}

func TestRequireSession_IdentityResolvedPerRequest(t *testing.T) {
	jwtService := newTestJWTService()
	router := newGateRouter(t, jwtService)

	token, err := jwtService.GenerateToken(7, "2021-00412", "student")
	require.NoError(t, err)

	// An authenticated request must not leave identity behind for the
	// unauthenticated one that follows.
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	bareReq := httptest.NewRequest(http.MethodGet, "/protected", nil)
	bareRecorder := httptest.NewRecorder()
	router.ServeHTTP(bareRecorder, bareReq)
	assert.Equal(t, http.StatusUnauthorized, bareRecorder.Code)
}
