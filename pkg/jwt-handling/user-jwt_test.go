package jwthandling

import (
	"testing"
	"time"
)

const testSignKey = "test-sign-key"

func TestUserTokenRoundTrip(t *testing.T) {
	t.Run("encodes identity and role", func(t *testing.T) {
		token, err := GenerateNewUserToken(time.Minute, "user-id-1", "admin", true, testSignKey)
		if err != nil {
			t.Fatal(err)
		}

		claims, valid, err := ValidateUserToken(token, testSignKey)
		if err != nil {
			t.Fatal(err)
		}
		if !valid {
			t.Fatal("token should be valid")
		}
		if claims.Subject != "user-id-1" {
			t.Errorf("unexpected subject: %s", claims.Subject)
		}
		if claims.Role != "admin" || !claims.IsAdmin {
			t.Errorf("unexpected role claims: %s %t", claims.Role, claims.IsAdmin)
		}
	})

	t.Run("with expired token", func(t *testing.T) {
		token, err := GenerateNewUserToken(-time.Second, "user-id-1", "member", false, testSignKey)
		if err != nil {
			t.Fatal(err)
		}

		_, valid, err := ValidateUserToken(token, testSignKey)
		if valid {
			t.Error("expired token should not be valid")
		}
		if err == nil {
			t.Error("should return error for expired token")
		}
	})

	t.Run("with wrong sign key", func(t *testing.T) {
		token, err := GenerateNewUserToken(time.Minute, "user-id-1", "member", false, testSignKey)
		if err != nil {
			t.Fatal(err)
		}

		_, valid, _ := ValidateUserToken(token, "other-key")
		if valid {
			t.Error("token signed with different key should not be valid")
		}
	})

	t.Run("with malformed token", func(t *testing.T) {
		_, valid, err := ValidateUserToken("not.a.token", testSignKey)
		if valid {
			t.Error("malformed token should not be valid")
		}
		if err == nil {
			t.Error("should return error for malformed token")
		}
	})
}
