package pwhash

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	t.Run("hash does not contain the password", func(t *testing.T) {
		hash, err := HashPassword("superSecret123!")
		if err != nil {
			t.Fatal(err)
		}
		if hash == "superSecret123!" || strings.Contains(hash, "superSecret123!") {
			t.Error("hash should not contain the plain password")
		}
		if !strings.HasPrefix(hash, "$argon2id$") {
			t.Errorf("unexpected hash format: %s", hash)
		}
	})

	t.Run("same password yields different hashes", func(t *testing.T) {
		h1, err := HashPassword("superSecret123!")
		if err != nil {
			t.Fatal(err)
		}
		h2, err := HashPassword("superSecret123!")
		if err != nil {
			t.Fatal(err)
		}
		if h1 == h2 {
			t.Error("two hash calls should produce different salts")
		}

		for _, h := range []string{h1, h2} {
			match, err := ComparePasswordWithHash(h, "superSecret123!")
			if err != nil {
				t.Fatal(err)
			}
			if !match {
				t.Error("password should match its own hash")
			}
		}
	})
}

func TestComparePasswordWithHash(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("with wrong password", func(t *testing.T) {
		match, err := ComparePasswordWithHash(hash, "wrong horse")
		if err != nil {
			t.Fatal(err)
		}
		if match {
			t.Error("wrong password should not match")
		}
	})

	t.Run("with malformed hash", func(t *testing.T) {
		if _, err := ComparePasswordWithHash("not-a-hash", "anything"); err == nil {
			t.Error("should return error")
		}
	})
}
