package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/culinacart/recipes-api/internal/logger"
	"github.com/culinacart/recipes-api/internal/middleware"
	"github.com/culinacart/recipes-api/internal/models"
	"github.com/culinacart/recipes-api/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestDB opens an in-memory SQLite database unique to the test, so
// parallel tests never share state.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Recipe{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupTestRouter wires the full route table against a fresh test database.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *service.AuthService) {
	t.Helper()

	db := setupTestDB(t)
	log := logger.Nop()
	authService := service.NewAuthService(db, "test-secret", time.Hour)
	recipeService := service.NewRecipeService(db)

	router := gin.New()
	router.Use(gin.Recovery())

	router.POST("/login", NewAuthHandler(authService, log).Login)
	router.GET("/health", NewHealthHandler(db).Check)

	recipeHandler := NewRecipeHandler(recipeService, log)
	recipes := router.Group("/recipes")
	recipes.GET("", recipeHandler.List)
	recipes.GET("/:id", recipeHandler.Get)

	protected := recipes.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	protected.POST("", recipeHandler.Create)
	protected.PATCH("/:id", recipeHandler.Update)
	protected.DELETE("/:id", recipeHandler.Delete)

	return router, db, authService
}

// createTestUser seeds a user with a bcrypt-hashed password.
func createTestUser(t *testing.T, db *gorm.DB, username, password string) *models.User {
	t.Helper()

	hash, err := service.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{Username: username, PasswordHash: hash}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return &user
}

// loginToken seeds a user and returns a token obtained through POST /login.
func loginToken(t *testing.T, router *gin.Engine, db *gorm.DB) string {
	t.Helper()

	createTestUser(t, db, "admin", "okay")
	w := performRequest(router, http.MethodPost, "/login", map[string]string{
		"username": "admin",
		"password": "okay",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	token, _ := resp["accessToken"].(string)
	if token == "" {
		t.Fatal("login response has no accessToken")
	}
	return token
}

// performRequest issues a request against the router, JSON-encoding body
// when present and attaching the bearer token when non-empty.
func performRequest(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeResponse unmarshals an envelope body into a generic map.
func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return resp
}
