package content

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("document not found")

func (dbService *ContentDBService) CreateMedia(media Media) (Media, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	media.UploadedAt = time.Now()
	res, err := dbService.collectionMedia().InsertOne(ctx, media)
	if err != nil {
		return media, err
	}
	media.ID = res.InsertedID.(primitive.ObjectID)
	return media, nil
}

// GetMediaList returns all media metadata, newest upload first.
func (dbService *ContentDBService) GetMediaList() ([]Media, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})
	cursor, err := dbService.collectionMedia().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var mediaList []Media
	if err = cursor.All(ctx, &mediaList); err != nil {
		return nil, err
	}
	return mediaList, nil
}

func (dbService *ContentDBService) GetMediaByID(id string) (Media, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var media Media
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return media, err
	}
	err = dbService.collectionMedia().FindOne(ctx, bson.M{"_id": objID}).Decode(&media)
	return media, err
}
