package apihandlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwthandling "github.com/aidbridge/aidbridge-backend/pkg/jwt-handling"
	userTypes "github.com/aidbridge/aidbridge-backend/pkg/user-management/types"
	"github.com/gin-gonic/gin"
)

const testSignKey = "handler-test-key"

func setupUserManagementRouter(h *HttpEndpoints) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	v1 := router.Group("/v1")
	h.AddUserManagementAPI(v1)
	return router
}

func TestDemoteSelfGuard(t *testing.T) {
	// The guard rejects before any storage access, so no DB connection is
	// needed for these cases.
	h := NewHTTPHandler(testSignKey, time.Hour, nil, nil, nil, "")
	router := setupUserManagementRouter(h)

	adminID := "64b8f0a2e1d3c45678901234"
	token, err := jwthandling.GenerateNewUserToken(time.Hour, adminID, userTypes.ROLE_ADMIN, true, testSignKey)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	t.Run("admin cannot demote themselves", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/v1/users/demote/"+adminID, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("unexpected status: %d", w.Code)
		}
	})

	t.Run("member cannot reach demote route", func(t *testing.T) {
		memberToken, err := jwthandling.GenerateNewUserToken(time.Hour, "someoneelse", userTypes.ROLE_MEMBER, false, testSignKey)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}
		req := httptest.NewRequest(http.MethodPut, "/v1/users/demote/"+adminID, nil)
		req.Header.Set("Authorization", "Bearer "+memberToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Errorf("unexpected status: %d", w.Code)
		}
	})

	t.Run("without token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/v1/users/demote/"+adminID, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("unexpected status: %d", w.Code)
		}
	})
}
