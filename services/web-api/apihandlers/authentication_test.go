package apihandlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/aidbridge/aidbridge-backend/pkg/db"
	userDB "github.com/aidbridge/aidbridge-backend/pkg/db/user"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// Needs a running MongoDB instance, skipped otherwise.
func setupAuthTest(t *testing.T) (*gin.Engine, *userDB.UserDBService) {
	t.Helper()

	connStr := os.Getenv("TEST_DB_CONNECTION_STR")
	if connStr == "" {
		t.Skip("TEST_DB_CONNECTION_STR not set")
	}

	dbService, err := userDB.NewUserDBService(db.DBConfig{
		URI:              "mongodb://" + connStr,
		Timeout:          30,
		IdleConnTimeout:  45,
		MaxPoolSize:      4,
		DBNamePrefix:     "test_",
		RunIndexCreation: true,
	})
	if err != nil {
		t.Fatalf("failed to connect to test DB: %v", err)
	}

	t.Cleanup(func() {
		_, err := dbService.DBClient.Database("test_users").Collection("users").DeleteMany(context.Background(), bson.M{})
		if err != nil {
			t.Errorf("failed to clean up users: %v", err)
		}
	})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHTTPHandler(testSignKey, time.Hour, dbService, nil, nil, "")
	v1 := router.Group("/v1")
	h.AddAuthAPI(v1)
	return router, dbService
}

func postJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginUniformResponses(t *testing.T) {
	router, _ := setupAuthTest(t)

	w := postJSON(router, "/v1/auth/register", gin.H{
		"email":    "member@example.com",
		"password": "Str0ngEnough!",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to register user: %d %s", w.Code, w.Body.String())
	}

	unknownEmail := postJSON(router, "/v1/auth/login", gin.H{
		"email":    "nobody@example.com",
		"password": "Str0ngEnough!",
	})
	wrongPassword := postJSON(router, "/v1/auth/login", gin.H{
		"email":    "member@example.com",
		"password": "WrongPassw0rd!",
	})

	t.Run("both rejections are unauthorized", func(t *testing.T) {
		if unknownEmail.Code != http.StatusUnauthorized {
			t.Errorf("unexpected status for unknown email: %d", unknownEmail.Code)
		}
		if wrongPassword.Code != http.StatusUnauthorized {
			t.Errorf("unexpected status for wrong password: %d", wrongPassword.Code)
		}
	})

	t.Run("response bodies are identical", func(t *testing.T) {
		if unknownEmail.Body.String() != wrongPassword.Body.String() {
			t.Errorf("responses differ: %q vs %q", unknownEmail.Body.String(), wrongPassword.Body.String())
		}
	})

	t.Run("correct credentials log in", func(t *testing.T) {
		w := postJSON(router, "/v1/auth/login", gin.H{
			"email":    "member@example.com",
			"password": "Str0ngEnough!",
		})
		if w.Code != http.StatusOK {
			t.Errorf("unexpected status: %d %s", w.Code, w.Body.String())
		}
	})
}

func TestResetPasswordCodeSingleUse(t *testing.T) {
	router, dbService := setupAuthTest(t)

	w := postJSON(router, "/v1/auth/register", gin.H{
		"email":    "reset@example.com",
		"password": "Str0ngEnough!",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to register user: %d %s", w.Code, w.Body.String())
	}
	user, err := dbService.GetUserByEmail("reset@example.com")
	if err != nil {
		t.Fatalf("failed to fetch user: %v", err)
	}

	if err := dbService.SetPasswordResetCode(user.ID.Hex(), "654321", time.Now().Add(10*time.Minute)); err != nil {
		t.Fatalf("failed to set reset code: %v", err)
	}

	resetReq := gin.H{
		"email":       "reset@example.com",
		"code":        "654321",
		"newPassword": "An0therStrong!",
	}

	t.Run("first use succeeds", func(t *testing.T) {
		w := postJSON(router, "/v1/auth/reset-password", resetReq)
		if w.Code != http.StatusOK {
			t.Errorf("unexpected status: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("second use is rejected", func(t *testing.T) {
		w := postJSON(router, "/v1/auth/reset-password", resetReq)
		if w.Code != http.StatusBadRequest {
			t.Errorf("unexpected status: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("new password works after reset", func(t *testing.T) {
		w := postJSON(router, "/v1/auth/login", gin.H{
			"email":    "reset@example.com",
			"password": "An0therStrong!",
		})
		if w.Code != http.StatusOK {
			t.Errorf("unexpected status: %d %s", w.Code, w.Body.String())
		}
	})
}
