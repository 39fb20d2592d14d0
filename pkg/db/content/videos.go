package content

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (dbService *ContentDBService) CreateVideo(video Video) (Video, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	video.CreatedAt = time.Now()
	video.UpdatedAt = video.CreatedAt
	res, err := dbService.collectionVideos().InsertOne(ctx, video)
	if err != nil {
		return video, err
	}
	video.ID = res.InsertedID.(primitive.ObjectID)
	return video, nil
}

func (dbService *ContentDBService) GetVideos() ([]Video, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := dbService.collectionVideos().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var videos []Video
	if err = cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (dbService *ContentDBService) UpdateVideo(id string, title string, url string, description string) (Video, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var video Video
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return video, err
	}

	update := bson.M{"$set": bson.M{
		"title":       title,
		"url":         url,
		"description": description,
		"updatedAt":   time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = dbService.collectionVideos().FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&video)
	return video, err
}

func (dbService *ContentDBService) DeleteVideo(id string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	res, err := dbService.collectionVideos().DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount < 1 {
		return ErrNotFound
	}
	return nil
}
