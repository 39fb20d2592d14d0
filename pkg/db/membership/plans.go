package membership

import (
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (dbService *MembershipDBService) createIndexForPlansCollection() {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionPlans().Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "planType", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	)
	if err != nil {
		slog.Error("Error creating index for membership plans", slog.String("error", err.Error()))
	}
}

// SavePlan upserts the catalog entry keyed by planType. Calling it twice with
// the same planType updates the single existing document.
func (dbService *MembershipDBService) SavePlan(plan Plan) (Plan, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"name":      plan.Name,
			"price":     plan.Price,
			"duration":  plan.Duration,
			"features":  plan.Features,
			"isPopular": plan.IsPopular,
			"isActive":  plan.IsActive,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"planType":  plan.PlanType,
			"createdAt": now,
		},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var saved Plan
	err := dbService.collectionPlans().FindOneAndUpdate(ctx, bson.M{"planType": plan.PlanType}, update, opts).Decode(&saved)
	return saved, err
}

// GetActivePlans returns catalog entries with isActive set, cheapest first.
func (dbService *MembershipDBService) GetActivePlans() ([]Plan, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "price", Value: 1}})
	cursor, err := dbService.collectionPlans().Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, err
	}
	var plans []Plan
	if err = cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (dbService *MembershipDBService) GetPlanByType(planType string) (Plan, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var plan Plan
	err := dbService.collectionPlans().FindOne(ctx, bson.M{"planType": planType}).Decode(&plan)
	return plan, err
}
