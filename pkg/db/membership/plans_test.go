package membership

import (
	"context"
	"os"
	"testing"

	"github.com/aidbridge/aidbridge-backend/pkg/db"
	userTypes "github.com/aidbridge/aidbridge-backend/pkg/user-management/types"
	"go.mongodb.org/mongo-driver/bson"
)

// Needs a running MongoDB instance, skipped otherwise.
func setupTestDBService(t *testing.T) *MembershipDBService {
	t.Helper()

	connStr := os.Getenv("TEST_DB_CONNECTION_STR")
	if connStr == "" {
		t.Skip("TEST_DB_CONNECTION_STR not set")
	}

	dbService, err := NewMembershipDBService(db.DBConfig{
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
		_, err := dbService.collectionPlans().DeleteMany(context.Background(), bson.M{})
		if err != nil {
			t.Errorf("failed to clean up plans: %v", err)
		}
	})
	return dbService
}

func TestSavePlanUpsert(t *testing.T) {
	dbService := setupTestDBService(t)

	first, err := dbService.SavePlan(Plan{
		PlanType: userTypes.PLAN_TYPE_6_MONTH,
		Name:     "6 Month Membership",
		Price:    6000,
		Duration: 6,
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("failed to save plan: %v", err)
	}
	if first.ID.IsZero() {
		t.Fatal("expected inserted plan to have an ID")
	}

	second, err := dbService.SavePlan(Plan{
		PlanType: userTypes.PLAN_TYPE_6_MONTH,
		Name:     "Half Year Membership",
		Price:    6500,
		Duration: 6,
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("failed to save plan again: %v", err)
	}

	t.Run("second save updates the same document", func(t *testing.T) {
		if second.ID != first.ID {
			t.Errorf("expected same document, got %s and %s", first.ID.Hex(), second.ID.Hex())
		}
		if second.Name != "Half Year Membership" || second.Price != 6500 {
			t.Errorf("fields not updated: %+v", second)
		}
		if !second.CreatedAt.Equal(first.CreatedAt) {
			t.Errorf("createdAt changed on update: %v vs %v", first.CreatedAt, second.CreatedAt)
		}
	})

	t.Run("no duplicate document exists", func(t *testing.T) {
		count, err := dbService.collectionPlans().CountDocuments(context.Background(), bson.M{"planType": userTypes.PLAN_TYPE_6_MONTH})
		if err != nil {
			t.Fatalf("failed to count plans: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 document, got %d", count)
		}
	})

	t.Run("lookup by plan type finds the updated entry", func(t *testing.T) {
		plan, err := dbService.GetPlanByType(userTypes.PLAN_TYPE_6_MONTH)
		if err != nil {
			t.Fatalf("failed to fetch plan: %v", err)
		}
		if plan.ID != first.ID || plan.Name != "Half Year Membership" {
			t.Errorf("unexpected plan: %+v", plan)
		}
	})
}
