package utils

import (
	"testing"
	"time"
)

func TestParseDurationString(t *testing.T) {
	t.Run("with valid durations", func(t *testing.T) {
		d, err := ParseDurationString("24h")
		if err != nil {
			t.Fatal(err)
		}
		if d != 24*time.Hour {
			t.Errorf("unexpected duration: %v", d)
		}

		d, err = ParseDurationString("10m")
		if err != nil {
			t.Fatal(err)
		}
		if d != 10*time.Minute {
			t.Errorf("unexpected duration: %v", d)
		}
	})

	t.Run("with invalid duration", func(t *testing.T) {
		if _, err := ParseDurationString("one day"); err == nil {
			t.Error("should return error")
		}
	})
}
