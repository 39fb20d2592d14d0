package main

import (
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	membershipDB "github.com/aidbridge/aidbridge-backend/pkg/db/membership"
	"github.com/aidbridge/aidbridge-backend/pkg/user-management/pwhash"
	umTypes "github.com/aidbridge/aidbridge-backend/pkg/user-management/types"
	umUtils "github.com/aidbridge/aidbridge-backend/pkg/user-management/utils"
)

func main() {
	slog.Info("Starting bootstrap job")
	start := time.Now()

	seedPlans()
	ensureAdminAccount()

	slog.Info("Bootstrap job completed", slog.Duration("duration", time.Since(start)))
}

// defaultPlans is used when the config file does not define any plans.
func defaultPlans() []membershipDB.Plan {
	return []membershipDB.Plan{
		{
			PlanType: umTypes.PLAN_TYPE_6_MONTH,
			Name:     "6 Month Membership",
			Price:    6000,
			Duration: 6,
			Features: []string{"Member newsletter", "Event access"},
			IsActive: true,
		},
		{
			PlanType:  umTypes.PLAN_TYPE_1_YEAR,
			Name:      "1 Year Membership",
			Price:     11000,
			Duration:  12,
			Features:  []string{"Member newsletter", "Event access", "Voting rights"},
			IsPopular: true,
			IsActive:  true,
		},
		{
			PlanType: umTypes.PLAN_TYPE_LIFETIME,
			Name:     "Lifetime Membership",
			Price:    110000,
			Duration: 0,
			Features: []string{"Member newsletter", "Event access", "Voting rights", "Never expires"},
			IsActive: true,
		},
	}
}

func seedPlans() {
	plans := conf.Plans
	if len(plans) < 1 {
		plans = defaultPlans()
	}

	for _, plan := range plans {
		if !umTypes.IsValidPlanType(plan.PlanType) {
			slog.Error("Skipping plan with unknown plan type", slog.String("planType", plan.PlanType))
			continue
		}

		saved, err := membershipDBService.SavePlan(plan)
		if err != nil {
			slog.Error("Error saving plan", slog.String("planType", plan.PlanType), slog.String("error", err.Error()))
			continue
		}
		slog.Info("Plan saved", slog.String("planType", saved.PlanType), slog.String("name", saved.Name))
	}
}

func ensureAdminAccount() {
	email := umUtils.SanitizeEmail(conf.AdminAccount.Email)
	password := conf.AdminAccount.Password

	if email == "" || password == "" {
		slog.Info("No admin account configured, skipping")
		return
	}

	if !umUtils.CheckEmailFormat(email) {
		slog.Error("Admin email has invalid format", slog.String("email", umUtils.BlurEmailAddress(email)))
		panic("Admin email has invalid format")
	}
	if !umUtils.CheckPasswordFormat(password) {
		slog.Error("Admin password does not meet the format requirements")
		panic("Admin password does not meet the format requirements")
	}

	existing, err := userDBService.GetUserByEmail(email)
	if err == nil {
		if existing.Role != umTypes.ROLE_ADMIN {
			if err := userDBService.UpdateRole(existing.ID.Hex(), umTypes.ROLE_ADMIN); err != nil {
				slog.Error("Error promoting existing account", slog.String("error", err.Error()))
				panic(err)
			}
			slog.Info("Existing account promoted to admin", slog.String("email", umUtils.BlurEmailAddress(email)))
			return
		}
		slog.Info("Admin account already exists", slog.String("email", umUtils.BlurEmailAddress(email)))
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		slog.Error("Error looking up admin account", slog.String("error", err.Error()))
		panic(err)
	}

	hashedPassword, err := pwhash.HashPassword(password)
	if err != nil {
		slog.Error("Error hashing admin password", slog.String("error", err.Error()))
		panic(err)
	}

	user, err := userDBService.CreateUser(umTypes.User{
		Email:    email,
		Password: hashedPassword,
		Role:     umTypes.ROLE_ADMIN,
	})
	if err != nil {
		slog.Error("Error creating admin account", slog.String("error", err.Error()))
		panic(err)
	}

	slog.Info("Admin account created",
		slog.String("userID", user.ID.Hex()),
		slog.String("email", umUtils.BlurEmailAddress(email)))
}
