package membership

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Plan is a catalog entry describing a purchasable membership tier.
type Plan struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PlanType  string             `bson:"planType" json:"planType"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Duration  int                `bson:"duration" json:"duration"` // in months, 0 for lifetime
	Features  []string           `bson:"features" json:"features"`
	IsPopular bool               `bson:"isPopular" json:"isPopular"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
