package content

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (dbService *ContentDBService) CreateBlogPost(post BlogPost) (BlogPost, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	res, err := dbService.collectionBlogPosts().InsertOne(ctx, post)
	if err != nil {
		return post, err
	}
	post.ID = res.InsertedID.(primitive.ObjectID)
	return post, nil
}

// GetBlogPosts returns all posts, newest first.
func (dbService *ContentDBService) GetBlogPosts() ([]BlogPost, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := dbService.collectionBlogPosts().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var posts []BlogPost
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (dbService *ContentDBService) GetBlogPostByID(id string) (BlogPost, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var post BlogPost
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return post, err
	}
	err = dbService.collectionBlogPosts().FindOne(ctx, bson.M{"_id": objID}).Decode(&post)
	return post, err
}

func (dbService *ContentDBService) UpdateBlogPost(id string, update bson.M) (BlogPost, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var post BlogPost
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return post, err
	}

	update["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = dbService.collectionBlogPosts().FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": update}, opts).Decode(&post)
	return post, err
}

func (dbService *ContentDBService) DeleteBlogPost(id string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	res, err := dbService.collectionBlogPosts().DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount < 1 {
		return ErrNotFound
	}
	return nil
}
