package content

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (dbService *ContentDBService) CreatePageContent(content PageContent) (PageContent, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	content.UpdatedAt = time.Now()
	res, err := dbService.collectionPageContent().InsertOne(ctx, content)
	if err != nil {
		return content, err
	}
	content.ID = res.InsertedID.(primitive.ObjectID)
	return content, nil
}

// GetLatestPageContent returns the most recently updated page copy entry.
func (dbService *ContentDBService) GetLatestPageContent() (PageContent, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var content PageContent
	opts := options.FindOne().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	err := dbService.collectionPageContent().FindOne(ctx, bson.M{}, opts).Decode(&content)
	return content, err
}

func (dbService *ContentDBService) UpdatePageContent(id string, intro string) (PageContent, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var content PageContent
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return content, err
	}

	update := bson.M{"$set": bson.M{"intro": intro, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = dbService.collectionPageContent().FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&content)
	return content, err
}
