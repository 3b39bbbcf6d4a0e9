package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/culinacart/recipes-api/internal/types"
)

type stubValidator struct {
	claims *types.TokenClaims
	err    error
}

func (v *stubValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.claims, nil
}

func setupAuthTest(validator TokenValidator) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)
	reached := false

	router := gin.New()
	router.GET("/protected", AuthMiddleware(validator), func(c *gin.Context) {
		reached = true
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.MustGet("user_id"),
			"username": c.MustGet("username"),
		})
	})

	return router, &reached
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	router, reached := setupAuthTest(&stubValidator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestAuthMiddlewareBadFormat(t *testing.T) {
	tests := []string{
		"missing-scheme",
		"Basic dXNlcjpwYXNz",
		"Bearer",
		"Bearer too many parts",
	}

	for _, header := range tests {
		router, reached := setupAuthTest(&stubValidator{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.False(t, *reached)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	router, reached := setupAuthTest(&stubValidator{err: errors.New("bad token")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	userID := uuid.New()
	router, reached := setupAuthTest(&stubValidator{
		claims: &types.TokenClaims{UserID: userID, Username: "admin"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), "admin")
}
