package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ROLE_MEMBER = "member"
	ROLE_ADMIN  = "admin"
)

const (
	PAYMENT_STATUS_PENDING   = "pending"
	PAYMENT_STATUS_COMPLETED = "completed"
	PAYMENT_STATUS_FAILED    = "failed"
)

const (
	PLAN_TYPE_6_MONTH  = "6-month"
	PLAN_TYPE_1_YEAR   = "1-year"
	PLAN_TYPE_LIFETIME = "lifetime"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Role     string             `bson:"role" json:"role"`

	Membership Membership    `bson:"membership" json:"membership"`
	ResetCode  PasswordReset `bson:"resetCode,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Membership holds the stored subscription state of an account. Whether the
// membership is currently active is never stored, always recomputed.
type Membership struct {
	Plan          string    `bson:"plan,omitempty" json:"plan,omitempty"`
	PaymentStatus string    `bson:"paymentStatus" json:"paymentStatus"`
	PaymentAmount float64   `bson:"paymentAmount" json:"paymentAmount"`
	StartedAt     time.Time `bson:"startedAt,omitempty" json:"startedAt,omitempty"`
	ExpiresAt     time.Time `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"`
}

type PasswordReset struct {
	Code      string    `bson:"code,omitempty" json:"-"`
	ExpiresAt time.Time `bson:"expiresAt,omitempty" json:"-"`
}

func (u User) IsAdmin() bool {
	return u.Role == ROLE_ADMIN
}

func IsValidRole(role string) bool {
	return role == ROLE_MEMBER || role == ROLE_ADMIN
}

func IsValidPlanType(planType string) bool {
	switch planType {
	case PLAN_TYPE_6_MONTH, PLAN_TYPE_1_YEAR, PLAN_TYPE_LIFETIME:
		return true
	}
	return false
}

func IsValidPaymentStatus(status string) bool {
	switch status {
	case PAYMENT_STATUS_PENDING, PAYMENT_STATUS_COMPLETED, PAYMENT_STATUS_FAILED:
		return true
	}
	return false
}
