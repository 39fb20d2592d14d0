package usermanagement

import (
	"fmt"
	"time"

	userTypes "github.com/aidbridge/aidbridge-backend/pkg/user-management/types"
)

// IsMembershipActive computes whether the stored membership grants access at
// the given reference time. The stored fields are the only input, there is no
// cached flag involved: expiry can flip the result without any write.
func IsMembershipActive(m userTypes.Membership, now time.Time) bool {
	if m.Plan == "" {
		return false
	}
	if m.Plan == userTypes.PLAN_TYPE_LIFETIME {
		return m.PaymentStatus == userTypes.PAYMENT_STATUS_COMPLETED
	}
	if m.StartedAt.IsZero() || m.ExpiresAt.IsZero() {
		return false
	}
	return m.PaymentStatus == userTypes.PAYMENT_STATUS_COMPLETED && !now.After(m.ExpiresAt)
}

// PlanDurationMonths returns the subscription length for a dated plan type,
// 0 for lifetime.
func PlanDurationMonths(planType string) (int, error) {
	switch planType {
	case userTypes.PLAN_TYPE_6_MONTH:
		return 6, nil
	case userTypes.PLAN_TYPE_1_YEAR:
		return 12, nil
	case userTypes.PLAN_TYPE_LIFETIME:
		return 0, nil
	}
	return 0, fmt.Errorf("unknown plan type: %s", planType)
}

// ApplyMembershipChange overwrites plan, payment status and amount on the
// membership snapshot. Only a completed payment moves the start date and
// recomputes the expiry; any other status leaves previous dates untouched.
func ApplyMembershipChange(m userTypes.Membership, plan string, paymentStatus string, amount float64, now time.Time) (userTypes.Membership, error) {
	m.Plan = plan
	m.PaymentStatus = paymentStatus
	m.PaymentAmount = amount

	if paymentStatus == userTypes.PAYMENT_STATUS_COMPLETED {
		months, err := PlanDurationMonths(plan)
		if err != nil {
			return m, err
		}
		m.StartedAt = now
		if months == 0 {
			m.ExpiresAt = time.Time{}
		} else {
			m.ExpiresAt = now.AddDate(0, months, 0)
		}
	}
	return m, nil
}
