package usermanagement

import (
	"testing"
	"time"

	userTypes "github.com/aidbridge/aidbridge-backend/pkg/user-management/types"
)

func TestIsMembershipActive(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("with no plan selected", func(t *testing.T) {
		m := userTypes.Membership{PaymentStatus: userTypes.PAYMENT_STATUS_COMPLETED}
		if IsMembershipActive(m, now) {
			t.Error("should be inactive")
		}
	})

	t.Run("with pending payment", func(t *testing.T) {
		m := userTypes.Membership{
			Plan:          userTypes.PLAN_TYPE_6_MONTH,
			PaymentStatus: userTypes.PAYMENT_STATUS_PENDING,
			StartedAt:     now,
			ExpiresAt:     now.AddDate(0, 6, 0),
		}
		if IsMembershipActive(m, now) {
			t.Error("should be inactive")
		}
	})

	t.Run("with completed payment before expiry", func(t *testing.T) {
		m := userTypes.Membership{
			Plan:          userTypes.PLAN_TYPE_6_MONTH,
			PaymentStatus: userTypes.PAYMENT_STATUS_COMPLETED,
			StartedAt:     now,
			ExpiresAt:     now.AddDate(0, 6, 0),
		}
		if !IsMembershipActive(m, now) {
			t.Error("should be active")
		}
		if !IsMembershipActive(m, m.ExpiresAt) {
			t.Error("should still be active exactly at expiry")
		}
	})

	t.Run("after expiry without any write", func(t *testing.T) {
		m := userTypes.Membership{
			Plan:          userTypes.PLAN_TYPE_6_MONTH,
			PaymentStatus: userTypes.PAYMENT_STATUS_COMPLETED,
			StartedAt:     now,
			ExpiresAt:     now.AddDate(0, 6, 0),
		}
		sevenMonthsLater := now.AddDate(0, 7, 0)
		if IsMembershipActive(m, sevenMonthsLater) {
			t.Error("should be inactive after expiry")
		}
	})

	t.Run("with missing dates on dated plan", func(t *testing.T) {
		m := userTypes.Membership{
			Plan:          userTypes.PLAN_TYPE_1_YEAR,
			PaymentStatus: userTypes.PAYMENT_STATUS_COMPLETED,
		}
		if IsMembershipActive(m, now) {
			t.Error("should be inactive")
		}
	})

	t.Run("lifetime plan ignores elapsed time", func(t *testing.T) {
		m := userTypes.Membership{
			Plan:          userTypes.PLAN_TYPE_LIFETIME,
			PaymentStatus: userTypes.PAYMENT_STATUS_COMPLETED,
			StartedAt:     now,
		}
		if !IsMembershipActive(m, now.AddDate(50, 0, 0)) {
			t.Error("should be active")
		}
	})

	t.Run("lifetime plan with failed payment", func(t *testing.T) {
		m := userTypes.Membership{
			Plan:          userTypes.PLAN_TYPE_LIFETIME,
			PaymentStatus: userTypes.PAYMENT_STATUS_FAILED,
		}
		if IsMembershipActive(m, now) {
			t.Error("should be inactive")
		}
	})
}

func TestApplyMembershipChange(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("completed payment on dated plan sets dates", func(t *testing.T) {
		m, err := ApplyMembershipChange(userTypes.Membership{}, userTypes.PLAN_TYPE_6_MONTH, userTypes.PAYMENT_STATUS_COMPLETED, 6000, now)
		if err != nil {
			t.Fatal(err)
		}
		if !m.StartedAt.Equal(now) {
			t.Errorf("unexpected start date: %v", m.StartedAt)
		}
		if !m.ExpiresAt.Equal(now.AddDate(0, 6, 0)) {
			t.Errorf("unexpected expiry: %v", m.ExpiresAt)
		}
		if !IsMembershipActive(m, now) {
			t.Error("should be active right away")
		}
	})

	t.Run("completed payment on lifetime plan clears expiry", func(t *testing.T) {
		prev := userTypes.Membership{
			Plan:      userTypes.PLAN_TYPE_6_MONTH,
			ExpiresAt: now.AddDate(0, 3, 0),
		}
		m, err := ApplyMembershipChange(prev, userTypes.PLAN_TYPE_LIFETIME, userTypes.PAYMENT_STATUS_COMPLETED, 110000, now)
		if err != nil {
			t.Fatal(err)
		}
		if !m.ExpiresAt.IsZero() {
			t.Errorf("expiry should be cleared, got %v", m.ExpiresAt)
		}
	})

	t.Run("non-completed status leaves dates untouched", func(t *testing.T) {
		prev := userTypes.Membership{
			Plan:          userTypes.PLAN_TYPE_1_YEAR,
			PaymentStatus: userTypes.PAYMENT_STATUS_COMPLETED,
			StartedAt:     now.AddDate(0, -1, 0),
			ExpiresAt:     now.AddDate(0, 11, 0),
		}
		m, err := ApplyMembershipChange(prev, userTypes.PLAN_TYPE_1_YEAR, userTypes.PAYMENT_STATUS_FAILED, 0, now)
		if err != nil {
			t.Fatal(err)
		}
		if !m.StartedAt.Equal(prev.StartedAt) || !m.ExpiresAt.Equal(prev.ExpiresAt) {
			t.Error("dates should not change on failed payment")
		}
		if IsMembershipActive(m, now) {
			t.Error("failed status should make it inactive")
		}
	})

	t.Run("with unknown plan type", func(t *testing.T) {
		_, err := ApplyMembershipChange(userTypes.Membership{}, "3-week", userTypes.PAYMENT_STATUS_COMPLETED, 100, now)
		if err == nil {
			t.Error("should return error")
		}
	})
}
