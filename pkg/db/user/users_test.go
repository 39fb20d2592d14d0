package user

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/aidbridge/aidbridge-backend/pkg/db"
	userTypes "github.com/aidbridge/aidbridge-backend/pkg/user-management/types"
	"go.mongodb.org/mongo-driver/bson"
)

// Needs a running MongoDB instance, skipped otherwise.
func setupTestDBService(t *testing.T) *UserDBService {
	t.Helper()

	connStr := os.Getenv("TEST_DB_CONNECTION_STR")
	if connStr == "" {
		t.Skip("TEST_DB_CONNECTION_STR not set")
	}

	dbService, err := NewUserDBService(db.DBConfig{
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
		_, err := dbService.collectionUsers().DeleteMany(context.Background(), bson.M{})
		if err != nil {
			t.Errorf("failed to clean up users: %v", err)
		}
	})
	return dbService
}

func TestPasswordResetCodeSingleUse(t *testing.T) {
	dbService := setupTestDBService(t)

	user, err := dbService.CreateUser(userTypes.User{
		Email:    "reset-flow@example.com",
		Password: "old-hash",
		Role:     userTypes.ROLE_MEMBER,
	})
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	expiresAt := time.Now().Add(10 * time.Minute)
	if err := dbService.SetPasswordResetCode(user.ID.Hex(), "123456", expiresAt); err != nil {
		t.Fatalf("failed to set reset code: %v", err)
	}

	t.Run("code is stored on the account", func(t *testing.T) {
		stored, err := dbService.GetUserByEmail("reset-flow@example.com")
		if err != nil {
			t.Fatalf("failed to fetch user: %v", err)
		}
		if stored.ResetCode.Code != "123456" {
			t.Errorf("unexpected code: %q", stored.ResetCode.Code)
		}
	})

	if err := dbService.UpdatePasswordAndClearResetCode(user.ID.Hex(), "new-hash"); err != nil {
		t.Fatalf("failed to update password: %v", err)
	}

	t.Run("one write replaces the hash and removes the code", func(t *testing.T) {
		stored, err := dbService.GetUserByEmail("reset-flow@example.com")
		if err != nil {
			t.Fatalf("failed to fetch user: %v", err)
		}
		if stored.Password != "new-hash" {
			t.Errorf("password not updated: %q", stored.Password)
		}
		if stored.ResetCode.Code != "" || !stored.ResetCode.ExpiresAt.IsZero() {
			t.Errorf("reset code not cleared: %+v", stored.ResetCode)
		}
	})
}

func TestCreateUserEmailUnique(t *testing.T) {
	dbService := setupTestDBService(t)

	if _, err := dbService.CreateUser(userTypes.User{
		Email:    "unique@example.com",
		Password: "hash",
		Role:     userTypes.ROLE_MEMBER,
	}); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	if _, err := dbService.CreateUser(userTypes.User{
		Email:    "unique@example.com",
		Password: "other-hash",
		Role:     userTypes.ROLE_MEMBER,
	}); err == nil {
		t.Error("expected duplicate key error for same email")
	}
}
